package calendario

import (
	"strings"
	"time"

	"github.com/nedagosa-cod/admin-training/internal/fechas"
	"github.com/nedagosa-cod/admin-training/internal/models"
)

// MaxEventosPorCarril limita cuántos grupos se pintan por carril en una
// celda; el resto se reporta como un único contador "+N más".
const MaxEventosPorCarril = 6

// EntradaEvento es un grupo listo para pintar dentro de un carril.
type EntradaEvento struct {
	Evento      models.EventoAgrupado `json:"evento"`
	Color       string                `json:"color"`
	EsInicio    bool                  `json:"esInicio"`
	EsFin       bool                  `json:"esFin"`
	Estado      string                `json:"estado"`
	ColorEstado string                `json:"colorEstado"`
}

// MarcaNovedad es el rombo de ausencia de un desarrollador en una celda.
type MarcaNovedad struct {
	Desarrollador string `json:"desarrollador"`
	Novedad       string `json:"novedad"`
	Color         string `json:"color"`
}

// Celda es un día del tablero con todo lo que se muestra en él. Si el día
// es festivo no se calculan eventos: el festivo suprime el render completo.
type Celda struct {
	Fecha      string `json:"fecha"` // ISO, para comparar selección
	Dia        int    `json:"dia"`
	DelMes     bool   `json:"delMes"`
	EsHoy      bool   `json:"esHoy"`
	EsFestivo  bool   `json:"esFestivo"`
	Festividad string `json:"festividad,omitempty"`

	Novedades []MarcaNovedad `json:"novedades,omitempty"`

	// Carriles disjuntos, en orden de precedencia: incumplimientos,
	// actualizaciones, base. Un grupo aparece en exactamente uno.
	Incumplimientos []EntradaEvento `json:"incumplimientos,omitempty"`
	Actualizaciones []EntradaEvento `json:"actualizaciones,omitempty"`
	Base            []EntradaEvento `json:"base,omitempty"`

	MasEventos int `json:"masEventos,omitempty"`
}

// DiasVisibles devuelve los días del tablero para el mes: semanas completas
// que arrancan en lunes cubriendo el mes, sin los domingos. La grilla es de
// seis días por regla de negocio (el domingo no es día operable), así que el
// resultado siempre es múltiplo de seis.
func DiasVisibles(mes time.Time) []time.Time {
	inicioMes := time.Date(mes.Year(), mes.Month(), 1, 0, 0, 0, 0, time.UTC)
	finMes := inicioMes.AddDate(0, 1, -1)

	// Retroceder al lunes de la semana del día 1
	inicio := inicioMes
	for inicio.Weekday() != time.Monday {
		inicio = inicio.AddDate(0, 0, -1)
	}
	// Avanzar al domingo de la semana del último día
	fin := finMes
	for fin.Weekday() != time.Sunday {
		fin = fin.AddDate(0, 0, 1)
	}

	var dias []time.Time
	for d := inicio; !d.After(fin); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Sunday {
			continue
		}
		dias = append(dias, d)
	}
	return dias
}

// BuscarFestivo devuelve la festividad que cae en la fecha, si hay.
// Gana la primera coincidencia; se asume un festivo por fecha.
func BuscarFestivo(festivos []models.Festivo, fecha time.Time) (string, bool) {
	for _, f := range festivos {
		d, ok := fechas.Parsear(f.Fecha)
		if !ok {
			continue
		}
		if fechas.MismoDia(d, fecha) {
			return f.Festividad, true
		}
	}
	return "", false
}

// EstadoGrupo resume el estado de un grupo para el punto de color:
// "en proceso" pisa a "finalizado", que pisa a "entregado"; si ninguno
// aparece, vale el estado crudo del primer desarrollo.
func EstadoGrupo(grupo models.EventoAgrupado) string {
	for _, prioridad := range []struct{ busca, muestra string }{
		{"en proceso", "En Proceso"},
		{"finalizado", "Finalizado"},
		{"entregado", "Entregado"},
	} {
		for _, d := range grupo.Desarrollos {
			if strings.EqualFold(d.Estado, prioridad.busca) {
				return prioridad.muestra
			}
		}
	}
	if len(grupo.Desarrollos) > 0 {
		return grupo.Desarrollos[0].Estado
	}
	return ""
}

func tieneIncumplimiento(grupo models.EventoAgrupado) bool {
	for _, d := range grupo.Desarrollos {
		if strings.EqualFold(d.Estado, "incumplimiento") {
			return true
		}
	}
	return false
}

func tieneActualizacion(grupo models.EventoAgrupado) bool {
	for _, d := range grupo.Desarrollos {
		if strings.EqualFold(d.Desarrollo, "actualizacion") {
			return true
		}
	}
	return false
}

func entradaPara(grupo models.EventoAgrupado, dia time.Time) EntradaEvento {
	entrada := EntradaEvento{
		Evento: grupo,
		Color:  ColorCampana(campanaVisible(grupo)),
		Estado: EstadoGrupo(grupo),
	}
	entrada.ColorEstado = ColorEstado(entrada.Estado)

	if inicio, ok := fechas.Parsear(grupo.FechaInicio); ok {
		entrada.EsInicio = fechas.MismoDia(inicio, dia)
	}
	if fin, ok := fechas.Parsear(grupo.FechaFin); ok {
		entrada.EsFin = fechas.MismoDia(fin, dia)
	}
	return entrada
}

// campanaVisible evita colorear el grupo comodín con el hash de su clave.
func campanaVisible(grupo models.EventoAgrupado) string {
	if grupo.Campana == SinCampana {
		return ""
	}
	return grupo.Campana
}

func recortar(entradas []EntradaEvento) []EntradaEvento {
	if len(entradas) > MaxEventosPorCarril {
		return entradas[:MaxEventosPorCarril]
	}
	return entradas
}

// CeldaParaDia arma la celda completa de un día: festivo, novedades y los
// tres carriles con su tope y el desborde total.
func CeldaParaDia(dia time.Time, mes time.Time, hoy time.Time, registros []models.RegistroFormacion, festivos []models.Festivo, novedades []models.Novedad) Celda {
	celda := Celda{
		Fecha:  dia.Format(fechas.FormatoISO),
		Dia:    dia.Day(),
		DelMes: dia.Month() == mes.Month() && dia.Year() == mes.Year(),
		EsHoy:  fechas.MismoDia(dia, hoy),
	}

	for _, n := range NovedadesParaFecha(novedades, dia) {
		celda.Novedades = append(celda.Novedades, MarcaNovedad{
			Desarrollador: n.Desarrollador,
			Novedad:       n.Novedad,
			Color:         ColorDesarrollador(n.Desarrollador),
		})
	}

	if festividad, esFestivo := BuscarFestivo(festivos, dia); esFestivo {
		celda.EsFestivo = true
		celda.Festividad = festividad
		return celda
	}

	grupos := AgruparPorCampana(EventosParaFecha(registros, dia))
	for _, g := range grupos {
		entrada := entradaPara(g, dia)
		switch {
		case tieneIncumplimiento(g):
			celda.Incumplimientos = append(celda.Incumplimientos, entrada)
		case tieneActualizacion(g):
			celda.Actualizaciones = append(celda.Actualizaciones, entrada)
		default:
			celda.Base = append(celda.Base, entrada)
		}
	}

	celda.Incumplimientos = recortar(celda.Incumplimientos)
	celda.Actualizaciones = recortar(celda.Actualizaciones)
	celda.Base = recortar(celda.Base)

	if len(grupos) > MaxEventosPorCarril {
		celda.MasEventos = len(grupos) - MaxEventosPorCarril
	}

	return celda
}

// Tablero es el mes completo listo para servir.
type Tablero struct {
	Mes             string   `json:"mes"` // YYYY-MM
	DiasSemana      []string `json:"diasSemana"`
	Celdas          []Celda  `json:"celdas"`
	CampanasActivas []string `json:"campanasActivas"`
}

var diasSemana = []string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// ArmarTablero calcula la grilla del mes con todas sus celdas.
func ArmarTablero(mes time.Time, hoy time.Time, registros []models.RegistroFormacion, festivos []models.Festivo, novedades []models.Novedad) Tablero {
	tablero := Tablero{
		Mes:             mes.Format("2006-01"),
		DiasSemana:      diasSemana,
		CampanasActivas: CampanasActivasDelMes(registros, mes),
	}
	for _, dia := range DiasVisibles(mes) {
		tablero.Celdas = append(tablero.Celdas, CeldaParaDia(dia, mes, hoy, registros, festivos, novedades))
	}
	return tablero
}
