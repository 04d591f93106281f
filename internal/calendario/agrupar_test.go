package calendario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nedagosa-cod/admin-training/internal/models"
)

func registro(fila int, campana, inicio, fin string) models.RegistroFormacion {
	return models.RegistroFormacion{
		FilaIndice:  fila,
		Campana:     campana,
		FechaInicio: inicio,
		FechaFin:    fin,
	}
}

func TestEventosParaFecha(t *testing.T) {
	registros := []models.RegistroFormacion{
		registro(2, "Acme Retail", "01/03/2025", "05/03/2025"),
		registro(3, "Banca Norte", "10/03/2025", "12/03/2025"),
		registro(4, "Sin fechas", "", ""),
		registro(5, "Fecha rota", "ayer", "05/03/2025"),
	}

	t.Run("dentro del intervalo", func(t *testing.T) {
		activos := EventosParaFecha(registros, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
		assert.Len(t, activos, 1)
		assert.Equal(t, "Acme Retail", activos[0].Campana)
	})

	t.Run("bordes incluidos", func(t *testing.T) {
		assert.Len(t, EventosParaFecha(registros, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), 1)
		assert.Len(t, EventosParaFecha(registros, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)), 1)
	})

	t.Run("fuera del intervalo", func(t *testing.T) {
		assert.Empty(t, EventosParaFecha(registros, time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("fechas faltantes o rotas excluyen sin error", func(t *testing.T) {
		// Los registros 4 y 5 nunca aparecen, para ninguna fecha
		for d := 1; d <= 31; d++ {
			for _, a := range EventosParaFecha(registros, time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)) {
				assert.NotContains(t, []int{4, 5}, a.FilaIndice)
			}
		}
	})
}

func TestAgruparPorCampana(t *testing.T) {
	r1 := registro(2, "Acme Retail", "01/03/2025", "05/03/2025")
	r1.Coordinador = "Marta"
	r1.Desarrollo = "Evolutivo"
	r1.Estado = "En Proceso"

	r2 := registro(3, "Acme Retail", "01/03/2025", "05/03/2025")
	r2.Coordinador = "Otro" // cabecera distinta, se ignora
	r2.Desarrollo = "Soporte"
	r2.Estado = "Pendiente"

	r3 := registro(4, "Banca Norte", "01/03/2025", "05/03/2025")

	grupos := AgruparPorCampana([]models.RegistroFormacion{r1, r2, r3})

	assert.Len(t, grupos, 2)

	// Orden de llegada y cabecera del primer registro
	assert.Equal(t, "Acme Retail", grupos[0].Campana)
	assert.Equal(t, "Marta", grupos[0].Coordinador)
	assert.Len(t, grupos[0].Desarrollos, 2)
	assert.Equal(t, "Evolutivo", grupos[0].Desarrollos[0].Desarrollo)
	assert.Equal(t, "Soporte", grupos[0].Desarrollos[1].Desarrollo)
	assert.Equal(t, 3, grupos[0].Desarrollos[1].FilaIndice)

	assert.Equal(t, "Banca Norte", grupos[1].Campana)
	assert.Len(t, grupos[1].Desarrollos, 1)
}

func TestAgruparPorCampanaSinCampana(t *testing.T) {
	grupos := AgruparPorCampana([]models.RegistroFormacion{
		registro(2, "", "01/03/2025", "05/03/2025"),
		registro(3, "", "01/03/2025", "05/03/2025"),
	})
	assert.Len(t, grupos, 1)
	assert.Equal(t, SinCampana, grupos[0].Campana)
	assert.Len(t, grupos[0].Desarrollos, 2)
}

func TestCampanasActivasDelMes(t *testing.T) {
	registros := []models.RegistroFormacion{
		registro(2, "Zeta", "25/02/2025", "02/03/2025"),  // pisa el mes por el inicio
		registro(3, "Alfa", "28/03/2025", "04/04/2025"),  // pisa el mes por el fin
		registro(4, "Alfa", "10/03/2025", "12/03/2025"),  // repetida
		registro(5, "Vieja", "01/01/2025", "31/01/2025"), // fuera del mes
		registro(6, "", "10/03/2025", "12/03/2025"),      // sin campaña no aporta
		registro(7, "Rota", "x", "12/03/2025"),
	}

	campanas := CampanasActivasDelMes(registros, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"Alfa", "Zeta"}, campanas)
}
