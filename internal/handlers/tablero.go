package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/nedagosa-cod/admin-training/internal/calendario"
	"github.com/nedagosa-cod/admin-training/internal/models"
)

const claveMaestros = "maestros"

// TableroHandler sirve el calendario mensual y los datos crudos.
type TableroHandler struct {
	Fuente FuenteDatos
	Hub    *Hub

	// Los maestros cambian poco; se cachean por sesión de trabajo
	Cache *cache.Cache
}

func NewTableroHandler(fuente FuenteDatos, hub *Hub) *TableroHandler {
	return &TableroHandler{
		Fuente: fuente,
		Hub:    hub,
		Cache:  cache.New(10*time.Minute, 30*time.Minute),
	}
}

func (h *TableroHandler) GetRegistros(c *gin.Context) {
	registros, err := h.Fuente.Registros(c.Request.Context())
	if err != nil {
		log.Println("Error leyendo registros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer los registros"})
		return
	}
	c.JSON(http.StatusOK, registros)
}

func (h *TableroHandler) maestros(c *gin.Context) (models.DatosMaestros, error) {
	if cacheado, ok := h.Cache.Get(claveMaestros); ok {
		return cacheado.(models.DatosMaestros), nil
	}
	maestros, err := h.Fuente.Maestros(c.Request.Context())
	if err != nil {
		return models.DatosMaestros{}, err
	}
	h.Cache.Set(claveMaestros, maestros, cache.DefaultExpiration)
	return maestros, nil
}

func (h *TableroHandler) GetMaestros(c *gin.Context) {
	maestros, err := h.maestros(c)
	if err != nil {
		log.Println("Error leyendo maestros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer los datos maestros"})
		return
	}
	c.JSON(http.StatusOK, maestros)
}

func (h *TableroHandler) GetNovedades(c *gin.Context) {
	novedades, err := h.Fuente.Novedades(c.Request.Context())
	if err != nil {
		log.Println("Error leyendo novedades:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer las novedades"})
		return
	}
	c.JSON(http.StatusOK, novedades)
}

// GetTablero arma la grilla del mes pedido (?mes=YYYY-MM, por defecto el
// actual) con celdas, festivos, novedades y campañas activas.
func (h *TableroHandler) GetTablero(c *gin.Context) {
	mes := time.Now().UTC()
	if pedido := c.Query("mes"); pedido != "" {
		parseado, err := time.Parse("2006-01", pedido)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido, se espera YYYY-MM"})
			return
		}
		mes = parseado
	}

	registros, err := h.Fuente.Registros(c.Request.Context())
	if err != nil {
		log.Println("Error leyendo registros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer los registros"})
		return
	}
	maestros, err := h.maestros(c)
	if err != nil {
		log.Println("Error leyendo maestros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer los datos maestros"})
		return
	}
	novedades, err := h.Fuente.Novedades(c.Request.Context())
	if err != nil {
		log.Println("Error leyendo novedades:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron leer las novedades"})
		return
	}

	tablero := calendario.ArmarTablero(mes, time.Now().UTC(), registros, maestros.Festivos, novedades)
	c.JSON(http.StatusOK, tablero)
}

// NuevoRegistroLote es el formulario guiado: una cabecera compartida y una
// fila por desarrollo.
type NuevoRegistroLote struct {
	FechaSolicitud string `json:"fechaSolicitud"`
	Coordinador    string `json:"coordinador"`
	Cliente        string `json:"cliente"`
	Segmento       string `json:"segmento"`
	Desarrollador  string `json:"desarrollador"`
	SegmentoMenu   string `json:"segmentoMenu"`
	Formador       string `json:"formador"`
	Campana        string `json:"campana"`
	Observaciones  string `json:"observaciones"`

	Desarrollos []models.NuevoDesarrollo `json:"desarrollos"`
}

// CrearRegistros valida y envía el alta en lote. Cliente y campaña son
// obligatorios; si falta alguno se aborta sin tocar nada para que el usuario
// corrija y reintente.
func (h *TableroHandler) CrearRegistros(c *gin.Context) {
	var lote NuevoRegistroLote
	if err := c.ShouldBindJSON(&lote); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	if lote.Cliente == "" || lote.Campana == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cliente y Campaña son obligatorios"})
		return
	}
	if len(lote.Desarrollos) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se necesita al menos un desarrollo"})
		return
	}

	fechaSolicitud := lote.FechaSolicitud
	if fechaSolicitud == "" {
		fechaSolicitud = time.Now().Format("2006-01-02")
	}

	registros := make([]models.RegistroFormacion, 0, len(lote.Desarrollos))
	for _, fila := range lote.Desarrollos {
		estado := fila.Estado
		if estado == "" {
			estado = "Pendiente"
		}
		registros = append(registros, models.RegistroFormacion{
			FechaSolicitud: fechaSolicitud,
			Coordinador:    lote.Coordinador,
			Cliente:        lote.Cliente,
			Segmento:       lote.Segmento,
			Desarrollador:  lote.Desarrollador,
			SegmentoMenu:   lote.SegmentoMenu,
			Formador:       lote.Formador,
			Campana:        lote.Campana,
			Observaciones:  fila.Observaciones,
			Desarrollo:     fila.Desarrollo,
			Nombre:         fila.Nombre,
			Cantidad:       fila.Cantidad,
			FechaMaterial:  fila.FechaMaterial,
			FechaInicio:    fila.FechaInicio,
			FechaFin:       fila.FechaFin,
			Estado:         estado,
		})
	}

	if err := h.Fuente.CrearLote(c.Request.Context(), registros); err != nil {
		log.Println("Error creando registros:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudieron guardar los registros"})
		return
	}

	h.Hub.Notificar("registros")
	c.JSON(http.StatusCreated, gin.H{"creados": len(registros)})
}

// ActualizarRegistro reescribe una fila puntual (edición fuera del buffer).
func (h *TableroHandler) ActualizarRegistro(c *gin.Context) {
	fila, err := strconv.Atoi(c.Param("fila"))
	if err != nil || fila < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fila inválida"})
		return
	}

	var registro models.RegistroFormacion
	if err := c.ShouldBindJSON(&registro); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	if err := h.Fuente.ActualizarFila(c.Request.Context(), registro, fila); err != nil {
		log.Println("Error actualizando registro:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo actualizar el registro"})
		return
	}

	h.Hub.Notificar("registros")
	c.JSON(http.StatusOK, gin.H{"fila": fila})
}
