// Package calendario contiene el motor del tablero mensual: filtrado de
// eventos por fecha, agrupación por campaña, asignación de colores y el
// armado de la grilla de seis días con sus carriles de visualización.
package calendario

import (
	"sort"
	"time"

	"github.com/nedagosa-cod/admin-training/internal/fechas"
	"github.com/nedagosa-cod/admin-training/internal/models"
)

// SinCampana es la clave del grupo que recibe los registros sin campaña.
const SinCampana = "Sin campaña"

// EventosParaFecha devuelve los registros activos en la fecha dada: los que
// tienen ambas fechas parseables y la fecha cae en [inicio, fin]. Un registro
// con fechas faltantes o rotas queda fuera, no es un error.
func EventosParaFecha(registros []models.RegistroFormacion, fecha time.Time) []models.RegistroFormacion {
	var activos []models.RegistroFormacion
	for _, r := range registros {
		inicio, okInicio := fechas.Parsear(r.FechaInicio)
		fin, okFin := fechas.Parsear(r.FechaFin)
		if !okInicio || !okFin {
			continue
		}
		if fechas.Dentro(fecha, inicio, fin) {
			activos = append(activos, r)
		}
	}
	return activos
}

// NovedadesParaFecha filtra las novedades cuya ventana incluye la fecha.
func NovedadesParaFecha(novedades []models.Novedad, fecha time.Time) []models.Novedad {
	var activas []models.Novedad
	for _, n := range novedades {
		inicio, okInicio := fechas.Parsear(n.FechaInicio)
		fin, okFin := fechas.Parsear(n.FechaFin)
		if !okInicio || !okFin {
			continue
		}
		if fechas.Dentro(fecha, inicio, fin) {
			activas = append(activas, n)
		}
	}
	return activas
}

// AgruparPorCampana junta los registros por su campo campana conservando el
// orden de llegada. El primer registro de cada campaña siembra la cabecera
// del grupo; los siguientes solo aportan su desarrollo.
func AgruparPorCampana(registros []models.RegistroFormacion) []models.EventoAgrupado {
	indice := make(map[string]int)
	var grupos []models.EventoAgrupado

	for _, r := range registros {
		campana := r.Campana
		if campana == "" {
			campana = SinCampana
		}

		i, existe := indice[campana]
		if !existe {
			grupos = append(grupos, models.EventoAgrupado{
				Campana:        campana,
				FechaSolicitud: r.FechaSolicitud,
				Coordinador:    r.Coordinador,
				Desarrollador:  r.Desarrollador,
				Cliente:        r.Cliente,
				Segmento:       r.Segmento,
				SegmentoMenu:   r.SegmentoMenu,
				Formador:       r.Formador,
				FechaMaterial:  r.FechaMaterial,
				FechaInicio:    r.FechaInicio,
				FechaFin:       r.FechaFin,
			})
			i = len(grupos) - 1
			indice[campana] = i
		}

		grupos[i].Desarrollos = append(grupos[i].Desarrollos, models.DetalleDesarrollo{
			FilaIndice:    r.FilaIndice,
			Desarrollo:    r.Desarrollo,
			Nombre:        r.Nombre,
			Segmento:      r.Segmento,
			Cantidad:      r.Cantidad,
			Estado:        r.Estado,
			Observaciones: r.Observaciones,
		})
	}

	return grupos
}

// CampanasActivasDelMes devuelve las campañas con algún registro cuyo
// intervalo pisa el mes, ordenadas y sin repetir. Registros sin campaña o
// con fechas rotas no aportan.
func CampanasActivasDelMes(registros []models.RegistroFormacion, mes time.Time) []string {
	inicioMes := time.Date(mes.Year(), mes.Month(), 1, 0, 0, 0, 0, time.UTC)
	finMes := inicioMes.AddDate(0, 1, -1)

	vistas := make(map[string]bool)
	var campanas []string

	for _, r := range registros {
		if r.Campana == "" {
			continue
		}
		inicio, okInicio := fechas.Parsear(r.FechaInicio)
		fin, okFin := fechas.Parsear(r.FechaFin)
		if !okInicio || !okFin {
			continue
		}
		// Solape de intervalos: inicio <= finMes && fin >= inicioMes
		if inicio.After(finMes) || fin.Before(inicioMes) {
			continue
		}
		if !vistas[r.Campana] {
			vistas[r.Campana] = true
			campanas = append(campanas, r.Campana)
		}
	}

	sort.Strings(campanas)
	return campanas
}
