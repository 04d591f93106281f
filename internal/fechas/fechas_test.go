package fechas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	tests := []struct {
		name  string
		valor string
		want  string
	}{
		{
			name:  "triple serializado con mes base cero",
			valor: "Date(2025,0,15)",
			want:  "15/01/2025",
		},
		{
			name:  "triple de diciembre",
			valor: "Date(2024,11,3)",
			want:  "03/12/2024",
		},
		{
			name:  "ISO a canonica",
			valor: "2025-03-07",
			want:  "07/03/2025",
		},
		{
			name:  "canonica queda igual",
			valor: "25/12/2025",
			want:  "25/12/2025",
		},
		{
			name:  "texto raro queda igual",
			valor: "pendiente de definir",
			want:  "pendiente de definir",
		},
		{
			name:  "vacio queda vacio",
			valor: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalizar(tt.valor))
		})
	}
}

func TestNormalizarEsEstable(t *testing.T) {
	// Normalizar dos veces da lo mismo que una: la salida siempre es
	// canonica o texto que no se reconoce
	for _, valor := range []string{"Date(2025,5,9)", "2025-06-09", "09/06/2025", "basura"} {
		una := Normalizar(valor)
		assert.Equal(t, una, Normalizar(una), "valor %q", valor)
	}
}

func TestParsear(t *testing.T) {
	t.Run("canonica", func(t *testing.T) {
		fecha, ok := Parsear("07/03/2025")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), fecha)
	})

	t.Run("ISO", func(t *testing.T) {
		fecha, ok := Parsear("2025-03-07")
		assert.True(t, ok)
		assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), fecha)
	})

	t.Run("no parseable", func(t *testing.T) {
		for _, valor := range []string{"", "mañana", "7/3/2025", "32/01/2025"} {
			_, ok := Parsear(valor)
			assert.False(t, ok, "valor %q", valor)
		}
	})
}

func TestAISO(t *testing.T) {
	assert.Equal(t, "2025-03-07", AISO("07/03/2025"))
	assert.Equal(t, "2025-03-07", AISO("2025-03-07"))
	assert.Equal(t, "", AISO(""))
	assert.Equal(t, "basura", AISO("basura"))
}

func TestAISORoundTrip(t *testing.T) {
	assert.Equal(t, "15/01/2025", Normalizar(AISO("15/01/2025")))
	assert.Equal(t, "2025-01-15", AISO(Normalizar("2025-01-15")))
}

func TestDentro(t *testing.T) {
	inicio := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		fecha time.Time
		want  bool
	}{
		{"dia de inicio incluido", inicio, true},
		{"dia de fin incluido", fin, true},
		{"dia intermedio", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), true},
		{"un dia antes", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), false},
		{"un dia despues", time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), false},
		{"hora no importa", time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dentro(tt.fecha, inicio, fin))
		})
	}
}

func TestDentroIntervaloInvertido(t *testing.T) {
	inicio := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for d := 1; d <= 5; d++ {
		assert.False(t, Dentro(time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC), inicio, fin))
	}
}

func TestMismoDia(t *testing.T) {
	a := time.Date(2025, 3, 7, 8, 0, 0, 0, time.UTC)
	b := time.Date(2025, 3, 7, 22, 30, 0, 0, time.UTC)
	assert.True(t, MismoDia(a, b))
	assert.False(t, MismoDia(a, b.AddDate(0, 0, 1)))
}
