package calendario

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorParaClaveDeterminista(t *testing.T) {
	for _, clave := range []string{"Acme Retail", "Banca Norte", "ñandú"} {
		color := ColorParaClave(clave, PaletaCampanas)
		assert.Contains(t, PaletaCampanas, color)
		for i := 0; i < 5; i++ {
			assert.Equal(t, color, ColorParaClave(clave, PaletaCampanas))
		}
	}
}

// Los valores fijos protegen la reproducción del hash del frontend: un
// cambio en la recurrencia o en el orden de la paleta cambiaría el color de
// campañas ya pintadas. Las claves largas importan: recién cuando el hash
// intermedio supera los 32 bits entra en juego el envolvimiento del
// desplazamiento, así que una clave corta sola no detecta una recurrencia
// desviada. Valores verificados contra la recurrencia de referencia en node.
func TestColorParaClaveValoresFijos(t *testing.T) {
	tests := []struct {
		clave string
		want  string
	}{
		{"A", "bg-violet-500"},           // hash 65, 65 % 52 = 13
		{"Acme Retail", "bg-red-900"},    // hash -1846780247, índice 39
		{"Banca Norte", "bg-sky-500"},    // hash -3848478833, índice 17
		{"Seguros Sur", "bg-pink-500"},   // hash 4746277382, índice 2
		{"Campaña Verano", "bg-red-900"}, // hash 2638345775, índice 39
		{"ñandú", "bg-fuchsia-600"},      // hash 225567348, índice 32
	}
	for _, tt := range tests {
		t.Run(tt.clave, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorParaClave(tt.clave, PaletaCampanas))
		})
	}
}

func TestColorParaClaveVacia(t *testing.T) {
	assert.Equal(t, ColorNeutro, ColorParaClave("", PaletaCampanas))
	assert.Equal(t, ColorNeutro, ColorParaClave("algo", nil))
}

func TestColorDesarrollador(t *testing.T) {
	assert.Equal(t, "bg-red-500", ColorDesarrollador("Laura Méndez")) // hash -4681601352, índice 2
	assert.Equal(t, "bg-teal-500", ColorDesarrollador("Pedro Gómez")) // hash -3217409246, índice 6
}

func TestColorEstado(t *testing.T) {
	tests := []struct {
		estado string
		want   string
	}{
		{"Entregado", "bg-green-500"},
		{"ENTREGADO", "bg-green-500"},
		{"Finalizado", "bg-blue-500"},
		{"Cancelado", "bg-orange-800"},
		{"En Proceso", "bg-yellow-500"},
		{"Proyectado", "bg-gray-500"},
		{"Sin Material", "bg-red-500"},
		{"Pendiente", ColorNeutro},
		{"", ColorNeutro},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorEstado(tt.estado), "estado %q", tt.estado)
	}
}
