package calendario

import (
	"strings"
	"unicode/utf16"
)

// ColorNeutro se usa para claves vacías y estados desconocidos.
const ColorNeutro = "bg-gray-500"

// PaletaCampanas son las clases de color del tablero. El orden importa: el
// índice sale de un hash del nombre y tiene que dar el mismo color en cada
// recarga del mismo despliegue.
var PaletaCampanas = []string{
	"bg-blue-500", "bg-green-500", "bg-pink-500", "bg-indigo-500",
	"bg-red-500", "bg-purple-500", "bg-yellow-500", "bg-teal-500",
	"bg-orange-500", "bg-cyan-500", "bg-lime-500", "bg-amber-500",
	"bg-emerald-500", "bg-violet-500", "bg-sky-500", "bg-rose-500",
	"bg-green-600", "bg-sky-500", "bg-slate-500", "bg-blue-600",
	"bg-pink-600", "bg-red-900", "bg-indigo-600", "bg-purple-600",
	"bg-red-800", "bg-teal-600", "bg-yellow-400", "bg-cyan-600",
	"bg-blue-900", "bg-amber-600", "bg-emerald-600", "bg-red-500",
	"bg-fuchsia-600", "bg-rose-600", "bg-red-700", "bg-blue-700",
	"bg-green-700", "bg-cyan-500", "bg-indigo-700", "bg-red-900",
	"bg-purple-700", "bg-yellow-700", "bg-teal-700", "bg-orange-700",
	"bg-cyan-700", "bg-lime-700", "bg-amber-700", "bg-emerald-700",
	"bg-violet-700", "bg-fuchsia-700", "bg-rose-700", "bg-sky-700",
}

// PaletaDesarrolladores colorea los rombos de novedades.
var PaletaDesarrolladores = []string{
	"bg-green-500", "bg-pink-500", "bg-red-500", "bg-indigo-500",
	"bg-purple-500", "bg-yellow-500", "bg-teal-500", "bg-orange-500",
	"bg-cyan-500", "bg-blue-500",
}

// ColorParaClave asigna un color determinista de la paleta a una clave.
// La recurrencia es h = código(i) + ((h << 5) - h) sobre unidades UTF-16 y
// el índice es abs(h) módulo el largo de la paleta. El operando y el
// resultado del desplazamiento se envuelven a 32 bits; la resta y la suma
// acumulan en ancho completo. Tiene que reproducir exactamente el hash del
// frontend porque ambos lados pintan las mismas campañas.
func ColorParaClave(clave string, paleta []string) string {
	if clave == "" || len(paleta) == 0 {
		return ColorNeutro
	}

	var h int64
	for _, u := range utf16.Encode([]rune(clave)) {
		desplazado := int64(int32(uint32(int32(h)) << 5))
		h = int64(u) + desplazado - h
	}
	if h < 0 {
		h = -h
	}
	return paleta[h%int64(len(paleta))]
}

// ColorCampana pinta la etiqueta de una campaña.
func ColorCampana(campana string) string {
	return ColorParaClave(campana, PaletaCampanas)
}

// ColorDesarrollador pinta el rombo de una novedad.
func ColorDesarrollador(desarrollador string) string {
	return ColorParaClave(desarrollador, PaletaDesarrolladores)
}

// ColorEstado mapea un estado a su color de punto. Estados no contemplados
// caen al gris neutro.
func ColorEstado(estado string) string {
	switch strings.ToLower(estado) {
	case "entregado":
		return "bg-green-500"
	case "finalizado":
		return "bg-blue-500"
	case "cancelado":
		return "bg-orange-800"
	case "en proceso":
		return "bg-yellow-500"
	case "proyectado":
		return "bg-gray-500"
	case "sin material":
		return "bg-red-500"
	default:
		return ColorNeutro
	}
}
