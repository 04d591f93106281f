// Package sheets habla con la hoja de cálculo: lee las pestañas vía la API
// gviz (que responde JSONP, no JSON) y escribe a través del Web App de Apps
// Script. El envío es fuego-y-olvido: solo se observa que la petición llegó,
// no el resultado fila por fila.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/nedagosa-cod/admin-training/internal/fechas"
	"github.com/nedagosa-cod/admin-training/internal/models"
)

// Pestañas de la hoja.
const (
	hojaBase      = "Base_WT25"
	hojaData      = "DATA"
	hojaNovedades = "Novedades"
)

var reEnvoltorio = regexp.MustCompile(`google\.visualization\.Query\.setResponse\(([\s\S]+)\);`)

// Cliente lee y escribe la hoja remota.
type Cliente struct {
	SheetID string
	GasURL  string
	HTTP    *http.Client

	// base reemplaza a docs.google.com en tests
	base string
}

func NuevoCliente(sheetID, gasURL string) *Cliente {
	return &Cliente{
		SheetID: sheetID,
		GasURL:  gasURL,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// --- Lectura gviz ---

type celdaGviz struct {
	V interface{} `json:"v"`
}

type filaGviz struct {
	C []*celdaGviz `json:"c"`
}

type tablaGviz struct {
	Table struct {
		Rows []filaGviz `json:"rows"`
	} `json:"table"`
}

// valorCelda devuelve el texto de la columna i de la fila, o "" si la celda
// viene nula. Los números llegan como float64 por el decode genérico.
func valorCelda(fila filaGviz, i int) string {
	if i >= len(fila.C) || fila.C[i] == nil || fila.C[i].V == nil {
		return ""
	}
	switch v := fila.C[i].V.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (c *Cliente) leerHoja(ctx context.Context, hoja string) ([]filaGviz, error) {
	base := c.base
	if base == "" {
		base = "https://docs.google.com"
	}
	url := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json&sheet=%s", base, c.SheetID, hoja)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	cuerpo, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return parsearRespuesta(cuerpo)
}

// parsearRespuesta extrae el JSON del envoltorio JSONP de gviz y
// devuelve las filas de la tabla.
func parsearRespuesta(cuerpo []byte) ([]filaGviz, error) {
	m := reEnvoltorio.FindSubmatch(cuerpo)
	if m == nil {
		return nil, fmt.Errorf("sheets: respuesta sin envoltorio gviz")
	}
	var tabla tablaGviz
	if err := json.Unmarshal(m[1], &tabla); err != nil {
		return nil, fmt.Errorf("sheets: json gviz inválido: %w", err)
	}
	return tabla.Table.Rows, nil
}

// Registros lee la pestaña base completa. La fila de la hoja se calcula
// desde el índice: la cabecera es la fila 1, así que el dato 0 es la fila 2.
func (c *Cliente) Registros(ctx context.Context) ([]models.RegistroFormacion, error) {
	filas, err := c.leerHoja(ctx, hojaBase)
	if err != nil {
		return nil, err
	}

	registros := make([]models.RegistroFormacion, 0, len(filas))
	for i, fila := range filas {
		registros = append(registros, models.RegistroFormacion{
			FilaIndice:     i + 2,
			FechaSolicitud: fechas.Normalizar(valorCelda(fila, 0)),
			Coordinador:    valorCelda(fila, 1),
			Cliente:        valorCelda(fila, 2),
			Segmento:       valorCelda(fila, 3),
			Desarrollador:  valorCelda(fila, 4),
			SegmentoMenu:   valorCelda(fila, 5),
			Desarrollo:     valorCelda(fila, 6),
			Nombre:         valorCelda(fila, 7),
			Cantidad:       valorCelda(fila, 8),
			FechaMaterial:  fechas.Normalizar(valorCelda(fila, 9)),
			FechaInicio:    fechas.Normalizar(valorCelda(fila, 10)),
			FechaFin:       fechas.Normalizar(valorCelda(fila, 11)),
			Estado:         valorCelda(fila, 12),
			Formador:       valorCelda(fila, 13),
			Observaciones:  valorCelda(fila, 14),
			Campana:        valorCelda(fila, 15),
		})
	}
	return registros, nil
}

// Maestros arma las listas de opciones y los festivos desde la pestaña DATA.
// Cada lista sale de su columna, sin repetidos y ordenada.
func (c *Cliente) Maestros(ctx context.Context) (models.DatosMaestros, error) {
	filas, err := c.leerHoja(ctx, hojaData)
	if err != nil {
		return models.DatosMaestros{}, err
	}

	maestros := models.DatosMaestros{}
	desarrolladores := make(map[string]bool)
	coordinadores := make(map[string]bool)
	clientes := make(map[string]bool)
	tipos := make(map[string]bool)
	estados := make(map[string]bool)

	for _, fila := range filas {
		// Festivos: columnas D (fecha) y E (nombre)
		if fecha, nombre := valorCelda(fila, 3), valorCelda(fila, 4); fecha != "" && nombre != "" {
			maestros.Festivos = append(maestros.Festivos, models.Festivo{
				Fecha:      fechas.Normalizar(fecha),
				Festividad: nombre,
			})
		}

		agregarSi(desarrolladores, valorCelda(fila, 0))
		agregarSi(coordinadores, valorCelda(fila, 6))
		agregarSi(clientes, valorCelda(fila, 8))
		agregarSi(tipos, valorCelda(fila, 10))
		agregarSi(estados, valorCelda(fila, 12))
	}

	maestros.Desarrolladores = ordenado(desarrolladores)
	maestros.Coordinadores = ordenado(coordinadores)
	maestros.Clientes = ordenado(clientes)
	maestros.TiposDesarrollo = ordenado(tipos)
	maestros.Estados = ordenado(estados)
	return maestros, nil
}

func agregarSi(set map[string]bool, valor string) {
	if valor != "" {
		set[valor] = true
	}
}

func ordenado(set map[string]bool) []string {
	lista := make([]string, 0, len(set))
	for v := range set {
		lista = append(lista, v)
	}
	sort.Strings(lista)
	return lista
}

// Novedades lee la pestaña de ausencias.
func (c *Cliente) Novedades(ctx context.Context) ([]models.Novedad, error) {
	filas, err := c.leerHoja(ctx, hojaNovedades)
	if err != nil {
		return nil, err
	}

	novedades := make([]models.Novedad, 0, len(filas))
	for _, fila := range filas {
		novedades = append(novedades, models.Novedad{
			Desarrollador: valorCelda(fila, 0),
			FechaInicio:   fechas.Normalizar(valorCelda(fila, 1)),
			FechaFin:      fechas.Normalizar(valorCelda(fila, 2)),
			Novedad:       valorCelda(fila, 3),
		})
	}
	return novedades, nil
}

// --- Escritura vía Apps Script ---

// conCampana recalcula campana al enviar; nunca se confía en el valor que
// traía el registro.
func conCampana(r models.RegistroFormacion) models.RegistroFormacion {
	r.Campana = r.CampanaDerivada()
	return r
}

func (c *Cliente) enviar(ctx context.Context, payload interface{}) error {
	cuerpo, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GasURL, bytes.NewReader(cuerpo))
	if err != nil {
		return err
	}
	// Apps Script espera text/plain para no disparar preflight
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sheets: envío rechazado: %s", resp.Status)
	}
	return nil
}

// CrearLote agrega registros nuevos al final de la hoja.
func (c *Cliente) CrearLote(ctx context.Context, registros []models.RegistroFormacion) error {
	datos := make([]models.RegistroFormacion, 0, len(registros))
	for _, r := range registros {
		datos = append(datos, conCampana(r))
	}
	return c.enviar(ctx, map[string]interface{}{
		"action": "create",
		"data":   datos,
	})
}

// ActualizarFila reescribe una sola fila.
func (c *Cliente) ActualizarFila(ctx context.Context, registro models.RegistroFormacion, fila int) error {
	return c.enviar(ctx, map[string]interface{}{
		"action":   "update",
		"data":     conCampana(registro),
		"rowIndex": fila,
	})
}

// ActualizarLote envía modificaciones y borrados juntos. Una fila presente
// en ambas listas se resuelve del lado del script: el borrado gana.
func (c *Cliente) ActualizarLote(ctx context.Context, modificados []models.RegistroFormacion, eliminados []int) error {
	datos := make([]models.RegistroFormacion, 0, len(modificados))
	for _, r := range modificados {
		datos = append(datos, conCampana(r))
	}
	return c.enviar(ctx, map[string]interface{}{
		"action":            "update",
		"data":              datos,
		"deletedRowIndices": eliminados,
	})
}
