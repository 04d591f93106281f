package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComponerRegistro(t *testing.T) {
	grupo := EventoAgrupado{
		Campana:        "Acme Retail",
		FechaSolicitud: "10/02/2025",
		Coordinador:    "Marta",
		Desarrollador:  "Laura Méndez",
		Cliente:        "Acme",
		Segmento:       "Retail",
		SegmentoMenu:   "Ventas",
		Formador:       "Julián",
	}
	form := NuevoDesarrollo{
		Desarrollo:  "Evolutivo",
		Nombre:      "Onboarding cajas",
		Cantidad:    "12",
		FechaInicio: "2025-03-01",
		FechaFin:    "2025-03-05",
	}

	registro := ComponerRegistro(grupo, form)

	// Cabecera heredada del grupo
	assert.Equal(t, "Acme", registro.Cliente)
	assert.Equal(t, "Retail", registro.Segmento)
	assert.Equal(t, "Marta", registro.Coordinador)
	assert.Equal(t, "Acme Retail", registro.Campana)
	assert.Equal(t, "10/02/2025", registro.FechaSolicitud)

	// Detalle del formulario
	assert.Equal(t, "Evolutivo", registro.Desarrollo)
	assert.Equal(t, "Onboarding cajas", registro.Nombre)

	// Defaults
	assert.Equal(t, "Pendiente", registro.Estado)

	// Sin fila: el registro va por creación
	assert.False(t, registro.Guardado())
}

func TestComponerRegistroFechaSolicitudPorDefecto(t *testing.T) {
	registro := ComponerRegistro(EventoAgrupado{Campana: "X"}, NuevoDesarrollo{})
	assert.Equal(t, time.Now().Format("2006-01-02"), registro.FechaSolicitud)
}

func TestComponerRegistroRespetaEstado(t *testing.T) {
	registro := ComponerRegistro(EventoAgrupado{}, NuevoDesarrollo{Estado: "Proyectado"})
	assert.Equal(t, "Proyectado", registro.Estado)
}

func TestCampanaDerivada(t *testing.T) {
	tests := []struct {
		cliente  string
		segmento string
		want     string
	}{
		{"Acme", "Retail", "Acme Retail"},
		{"Acme", "", "Acme"},
		{"", "Retail", "Retail"},
		{"", "", ""},
	}
	for _, tt := range tests {
		r := RegistroFormacion{Cliente: tt.cliente, Segmento: tt.segmento}
		assert.Equal(t, tt.want, r.CampanaDerivada())
	}
}

func TestConCampoNoMuta(t *testing.T) {
	original := RegistroFormacion{FilaIndice: 5, Estado: "Pendiente"}

	copia := original.ConCampo("estado", "Entregado")
	assert.Equal(t, "Entregado", copia.Estado)
	assert.Equal(t, "Pendiente", original.Estado)
	assert.Equal(t, 5, copia.FilaIndice)

	// Campo desconocido devuelve la copia sin cambios
	assert.Equal(t, original, original.ConCampo("inexistente", "x"))
}

func TestGuardado(t *testing.T) {
	assert.False(t, RegistroFormacion{}.Guardado())
	assert.True(t, RegistroFormacion{FilaIndice: 2}.Guardado())
}
