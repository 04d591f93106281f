package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/nedagosa-cod/admin-training/internal/calendario"
	"github.com/nedagosa-cod/admin-training/internal/edicion"
	"github.com/nedagosa-cod/admin-training/internal/fechas"
	"github.com/nedagosa-cod/admin-training/internal/models"
)

// SesionHandler maneja el ciclo de vida del modal de detalle: abrir una
// sesión de edición sobre la campaña de un día, acumular cambios campo a
// campo, y confirmar o descartar todo junto.
type SesionHandler struct {
	Fuente   FuenteDatos
	Hub      *Hub
	Sesiones *cache.Cache
}

func NewSesionHandler(fuente FuenteDatos, hub *Hub) *SesionHandler {
	return &SesionHandler{
		Fuente: fuente,
		Hub:    hub,
		// Una sesión abandonada expira sola con el modal huérfano
		Sesiones: cache.New(30*time.Minute, 10*time.Minute),
	}
}

type abrirSesionPeticion struct {
	Fecha   string `json:"fecha" binding:"required"` // YYYY-MM-DD
	Campana string `json:"campana" binding:"required"`
}

// AbrirSesion recalcula los grupos del día pedido, ubica la campaña y abre
// un buffer de edición sobre esa vista.
func (h *SesionHandler) AbrirSesion(c *gin.Context) {
	var peticion abrirSesionPeticion
	if err := c.ShouldBindJSON(&peticion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	fecha, ok := fechas.Parsear(peticion.Fecha)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fecha inválida"})
		return
	}

	registros, err := h.Fuente.Registros(c.Request.Context())
	if err != nil {
		log.Println("Error leyendo registros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer los registros"})
		return
	}

	grupos := calendario.AgruparPorCampana(calendario.EventosParaFecha(registros, fecha))
	for _, grupo := range grupos {
		if grupo.Campana != peticion.Campana {
			continue
		}
		id := uuid.NewString()
		sesion := edicion.NuevaSesion(id, grupo)
		h.Sesiones.Set(id, sesion, cache.DefaultExpiration)
		c.JSON(http.StatusCreated, gin.H{"id": id, "grupo": grupo})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "No hay campaña activa con ese nombre en esa fecha"})
}

func (h *SesionHandler) sesion(c *gin.Context) (*edicion.Sesion, bool) {
	valor, ok := h.Sesiones.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sesión no encontrada o vencida"})
		return nil, false
	}
	return valor.(*edicion.Sesion), true
}

// buscarPorFila ubica el registro vivo de una fila para sembrar el snapshot.
func (h *SesionHandler) buscarPorFila(c *gin.Context, fila int) (models.RegistroFormacion, bool) {
	registros, err := h.Fuente.Registros(c.Request.Context())
	if err != nil {
		log.Println("Error leyendo registros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer los registros"})
		return models.RegistroFormacion{}, false
	}
	for _, r := range registros {
		if r.FilaIndice == fila {
			return r, true
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Registro no encontrado"})
	return models.RegistroFormacion{}, false
}

func responderErrorBuffer(c *gin.Context, err error) {
	switch {
	case errors.Is(err, edicion.ErrConfirmando):
		c.JSON(http.StatusConflict, gin.H{"error": "Hay un guardado en curso, esperá a que termine"})
	case errors.Is(err, edicion.ErrSesionCerrada):
		c.JSON(http.StatusGone, gin.H{"error": "La sesión ya se cerró"})
	case errors.Is(err, edicion.ErrSinFila):
		c.JSON(http.StatusBadRequest, gin.H{"error": "El registro todavía no está guardado"})
	default:
		log.Println("Error en buffer de edición:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error aplicando el cambio"})
	}
}

type aplicarCampoPeticion struct {
	Fila  int    `json:"rowIndex" binding:"required"`
	Campo string `json:"campo" binding:"required"`
	Valor string `json:"valor"`
}

// AplicarCampo acumula la edición de un campo en el buffer y devuelve el
// snapshot resultante y la vista del grupo ya actualizada.
func (h *SesionHandler) AplicarCampo(c *gin.Context) {
	sesion, ok := h.sesion(c)
	if !ok {
		return
	}

	var peticion aplicarCampoPeticion
	if err := c.ShouldBindJSON(&peticion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	registro, ok := h.buscarPorFila(c, peticion.Fila)
	if !ok {
		return
	}

	snapshot, err := sesion.AplicarCampo(registro, peticion.Campo, peticion.Valor)
	if err != nil {
		responderErrorBuffer(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registro":   snapshot,
		"grupo":      sesion.Grupo(),
		"pendientes": sesion.Pendientes(),
	})
}

type alternarPeticion struct {
	Fila int `json:"rowIndex" binding:"required"`
}

// AlternarEliminacion marca o desmarca la fila para borrar.
func (h *SesionHandler) AlternarEliminacion(c *gin.Context) {
	sesion, ok := h.sesion(c)
	if !ok {
		return
	}

	var peticion alternarPeticion
	if err := c.ShouldBindJSON(&peticion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	registro, ok := h.buscarPorFila(c, peticion.Fila)
	if !ok {
		return
	}

	marcado, err := sesion.AlternarEliminacion(registro)
	if err != nil {
		responderErrorBuffer(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"marcado":    marcado,
		"pendientes": sesion.Pendientes(),
	})
}

// AgregarDesarrollo compone un registro nuevo con la cabecera de la campaña
// de la sesión y lo manda por el flujo de creación: no pasa por el buffer
// porque todavía no tiene fila.
func (h *SesionHandler) AgregarDesarrollo(c *gin.Context) {
	sesion, ok := h.sesion(c)
	if !ok {
		return
	}

	var form models.NuevoDesarrollo
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	registro := models.ComponerRegistro(sesion.Grupo(), form)
	if err := h.Fuente.CrearLote(c.Request.Context(), []models.RegistroFormacion{registro}); err != nil {
		log.Println("Error creando desarrollo:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo guardar el desarrollo"})
		return
	}

	h.Hub.Notificar("registros")
	c.JSON(http.StatusCreated, registro)
}

// Confirmar manda todo el buffer como un lote. Si el transporte falla el
// buffer queda intacto y el usuario reintenta; solo el éxito limpia.
func (h *SesionHandler) Confirmar(c *gin.Context) {
	sesion, ok := h.sesion(c)
	if !ok {
		return
	}

	pendientes := sesion.Pendientes()
	if err := sesion.Confirmar(c.Request.Context(), h.Fuente); err != nil {
		if errors.Is(err, edicion.ErrConfirmando) || errors.Is(err, edicion.ErrSesionCerrada) {
			responderErrorBuffer(c, err)
			return
		}
		log.Println("Error confirmando lote:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron guardar los cambios, reintentá"})
		return
	}

	if pendientes > 0 {
		h.Hub.Notificar("registros")
	}
	c.JSON(http.StatusOK, gin.H{"guardados": pendientes})
}

// Descartar cierra la sesión tirando lo pendiente.
func (h *SesionHandler) Descartar(c *gin.Context) {
	sesion, ok := h.sesion(c)
	if !ok {
		return
	}

	if err := sesion.Descartar(c.Request.Context()); err != nil {
		responderErrorBuffer(c, err)
		return
	}

	h.Sesiones.Delete(sesion.ID)
	c.JSON(http.StatusOK, gin.H{"cerrada": true})
}
