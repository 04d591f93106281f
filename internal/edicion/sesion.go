// Package edicion implementa el buffer de edición en línea del modal de
// detalle: acumula cambios por campo y marcas de borrado por fila, y los
// confirma contra el transporte en un solo lote. El buffer vive lo que vive
// el modal; nunca se persiste a medias.
package edicion

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/looplab/fsm"

	"github.com/nedagosa-cod/admin-training/internal/models"
)

var (
	// ErrSinFila: el registro no tiene fila asignada todavía, no se puede
	// bufferear; los cambios de registros sin guardar se aplican directo al
	// estado local de quien los muestra.
	ErrSinFila = errors.New("edicion: registro sin fila, no bufferable")
	// ErrSesionCerrada: la sesión ya se descartó o confirmó y cerró.
	ErrSesionCerrada = errors.New("edicion: sesión cerrada")
	// ErrConfirmando: hay un envío en vuelo; no se aceptan más mutaciones
	// hasta que termine, para no perder ediciones contra la limpieza.
	ErrConfirmando = errors.New("edicion: confirmación en curso")
)

// Transporte es el colaborador externo que recibe el lote. Las filas que
// están a la vez en modificados y eliminados viajan en ambas listas; del
// lado del transporte el borrado gana.
type Transporte interface {
	ActualizarLote(ctx context.Context, modificados []models.RegistroFormacion, eliminados []int) error
}

// Sesion es el buffer de edición de un modal de campaña.
type Sesion struct {
	ID string

	mu          sync.Mutex
	maquina     *fsm.FSM
	grupo       models.EventoAgrupado
	modificados map[int]models.RegistroFormacion
	eliminados  map[int]bool
}

// NuevaSesion abre un buffer vacío sobre la vista agrupada de una campaña.
func NuevaSesion(id string, grupo models.EventoAgrupado) *Sesion {
	s := &Sesion{
		ID:          id,
		grupo:       grupo,
		modificados: make(map[int]models.RegistroFormacion),
		eliminados:  make(map[int]bool),
	}

	// Ciclo de vida del buffer: mientras se confirma no se acepta ninguna
	// mutación; un fallo de envío vuelve a "abierta" con el buffer intacto.
	s.maquina = fsm.NewFSM(
		"abierta",
		fsm.Events{
			{Name: "confirmar", Src: []string{"abierta"}, Dst: "confirmando"},
			{Name: "exito", Src: []string{"confirmando"}, Dst: "abierta"},
			{Name: "fallo", Src: []string{"confirmando"}, Dst: "abierta"},
			{Name: "cerrar", Src: []string{"abierta"}, Dst: "cerrada"},
		},
		fsm.Callbacks{},
	)

	return s
}

// Estado expone el estado actual de la máquina ("abierta", "confirmando",
// "cerrada").
func (s *Sesion) Estado() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maquina.Current()
}

func (s *Sesion) puedeMutar() error {
	switch s.maquina.Current() {
	case "abierta":
		return nil
	case "confirmando":
		return ErrConfirmando
	default:
		return ErrSesionCerrada
	}
}

// AplicarCampo registra un cambio de un campo sobre una fila. El snapshot
// nuevo se arma sobre el pendiente anterior si lo hay, no sobre el registro
// viejo, así varias ediciones a la misma fila se acumulan. También refleja
// el cambio en la vista agrupada para que el modal lo muestre al instante.
func (s *Sesion) AplicarCampo(registro models.RegistroFormacion, campo, valor string) (models.RegistroFormacion, error) {
	if !registro.Guardado() {
		return models.RegistroFormacion{}, ErrSinFila
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.puedeMutar(); err != nil {
		return models.RegistroFormacion{}, err
	}

	base, pendiente := s.modificados[registro.FilaIndice]
	if !pendiente {
		base = registro
	}
	actualizado := base.ConCampo(campo, valor)
	s.modificados[registro.FilaIndice] = actualizado

	s.reflejarEnGrupo(registro.FilaIndice, campo, valor)

	return actualizado, nil
}

// reflejarEnGrupo actualiza la vista optimista del modal. Solo los campos de
// desarrollo viven en el detalle; un cambio de cabecera queda en el buffer y
// se ve recién al recargar.
func (s *Sesion) reflejarEnGrupo(fila int, campo, valor string) {
	for i := range s.grupo.Desarrollos {
		if s.grupo.Desarrollos[i].FilaIndice != fila {
			continue
		}
		switch campo {
		case "desarrollo":
			s.grupo.Desarrollos[i].Desarrollo = valor
		case "nombre":
			s.grupo.Desarrollos[i].Nombre = valor
		case "segmento":
			s.grupo.Desarrollos[i].Segmento = valor
		case "cantidad":
			s.grupo.Desarrollos[i].Cantidad = valor
		case "estado":
			s.grupo.Desarrollos[i].Estado = valor
		case "observaciones":
			s.grupo.Desarrollos[i].Observaciones = valor
		}
	}
}

// AlternarEliminacion marca o desmarca una fila para borrar. No toca los
// cambios pendientes de esa fila: si también fue editada, ambas cosas viajan
// y el transporte resuelve (gana el borrado).
func (s *Sesion) AlternarEliminacion(registro models.RegistroFormacion) (bool, error) {
	if !registro.Guardado() {
		return false, ErrSinFila
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.puedeMutar(); err != nil {
		return false, err
	}

	if s.eliminados[registro.FilaIndice] {
		delete(s.eliminados, registro.FilaIndice)
		return false, nil
	}
	s.eliminados[registro.FilaIndice] = true
	return true, nil
}

// Grupo devuelve la vista agrupada con las ediciones optimistas aplicadas.
// Los desarrollos se copian: la vista interna solo se toca con el mutex
// tomado, vía AplicarCampo.
func (s *Sesion) Grupo() models.EventoAgrupado {
	s.mu.Lock()
	defer s.mu.Unlock()
	grupo := s.grupo
	grupo.Desarrollos = append([]models.DetalleDesarrollo(nil), s.grupo.Desarrollos...)
	return grupo
}

// Modificados devuelve los snapshots pendientes ordenados por fila.
func (s *Sesion) Modificados() []models.RegistroFormacion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modificadosOrdenados()
}

func (s *Sesion) modificadosOrdenados() []models.RegistroFormacion {
	filas := make([]int, 0, len(s.modificados))
	for fila := range s.modificados {
		filas = append(filas, fila)
	}
	sort.Ints(filas)

	registros := make([]models.RegistroFormacion, 0, len(filas))
	for _, fila := range filas {
		registros = append(registros, s.modificados[fila])
	}
	return registros
}

// Eliminados devuelve las filas marcadas, ordenadas.
func (s *Sesion) Eliminados() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eliminadosOrdenados()
}

func (s *Sesion) eliminadosOrdenados() []int {
	filas := make([]int, 0, len(s.eliminados))
	for fila := range s.eliminados {
		filas = append(filas, fila)
	}
	sort.Ints(filas)
	return filas
}

// Pendientes cuenta cambios y borrados sin confirmar.
func (s *Sesion) Pendientes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.modificados) + len(s.eliminados)
}

// Confirmar envía todo el buffer como un lote. Con el buffer vacío no hace
// nada. Solo un envío exitoso limpia las dos colecciones, y las limpia
// juntas; si el transporte falla, el buffer queda como estaba para
// reintentar sin re-tipear nada.
func (s *Sesion) Confirmar(ctx context.Context, transporte Transporte) error {
	s.mu.Lock()
	if len(s.modificados) == 0 && len(s.eliminados) == 0 {
		s.mu.Unlock()
		return nil
	}
	if err := s.puedeMutar(); err != nil {
		s.mu.Unlock()
		return err
	}
	_ = s.maquina.Event(ctx, "confirmar")
	modificados := s.modificadosOrdenados()
	eliminados := s.eliminadosOrdenados()
	s.mu.Unlock()

	err := transporte.ActualizarLote(ctx, modificados, eliminados)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		_ = s.maquina.Event(ctx, "fallo")
		return err
	}

	s.modificados = make(map[int]models.RegistroFormacion)
	s.eliminados = make(map[int]bool)
	_ = s.maquina.Event(ctx, "exito")
	return nil
}

// Descartar cierra la sesión tirando lo pendiente. Con un envío en vuelo no
// se puede cerrar.
func (s *Sesion) Descartar(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maquina.Current() == "confirmando" {
		return ErrConfirmando
	}
	if s.maquina.Current() == "cerrada" {
		return nil
	}

	s.modificados = make(map[int]models.RegistroFormacion)
	s.eliminados = make(map[int]bool)
	return s.maquina.Event(ctx, "cerrar")
}
