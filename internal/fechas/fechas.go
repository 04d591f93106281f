// Package fechas normaliza las representaciones de fecha que llegan de la
// hoja: triples serializados "Date(año,mes,día)" con mes base cero, ISO
// "YYYY-MM-DD" y el formato canónico de almacenamiento "DD/MM/YYYY".
package fechas

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// FormatoCanonico es el formato de almacenamiento en la hoja.
	FormatoCanonico = "02/01/2006"
	// FormatoISO es el formato nativo de los inputs de fecha del navegador.
	FormatoISO = "2006-01-02"
)

var (
	reTriple   = regexp.MustCompile(`Date\((\d+),(\d+),(\d+)\)`)
	reISO      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reCanonica = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// Normalizar convierte cualquier representación conocida a "DD/MM/YYYY".
// La entrada no reconocida se devuelve tal cual, nunca falla: una fecha
// rara se muestra como texto, no rompe el tablero.
func Normalizar(valor string) string {
	if valor == "" {
		return ""
	}

	// Triple serializado Date(y,m,d): el mes viene en base cero
	if strings.Contains(valor, "Date(") {
		if m := reTriple.FindStringSubmatch(valor); m != nil {
			anio, _ := strconv.Atoi(m[1])
			mes, _ := strconv.Atoi(m[2])
			dia, _ := strconv.Atoi(m[3])
			return fmt.Sprintf("%02d/%02d/%04d", dia, mes+1, anio)
		}
	}

	// ISO YYYY-MM-DD
	if reISO.MatchString(valor) {
		partes := strings.Split(valor, "-")
		return partes[2] + "/" + partes[1] + "/" + partes[0]
	}

	return valor
}

// Parsear convierte una fecha canónica o ISO a time.Time para comparar
// intervalos. Devuelve el cero de time.Time y false si no se puede parsear;
// quien llama trata eso como "sin fecha", nunca como error.
func Parsear(valor string) (time.Time, bool) {
	if valor == "" {
		return time.Time{}, false
	}

	if reCanonica.MatchString(valor) {
		if t, err := time.Parse(FormatoCanonico, valor); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	if reISO.MatchString(valor) {
		if t, err := time.Parse(FormatoISO, valor); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	return time.Time{}, false
}

// AISO convierte "DD/MM/YYYY" a "YYYY-MM-DD" para precargar inputs de
// formulario. Entrada no canónica se devuelve sin tocar.
func AISO(valor string) string {
	if !reCanonica.MatchString(valor) {
		return valor
	}
	partes := strings.Split(valor, "/")
	return partes[2] + "-" + partes[1] + "-" + partes[0]
}

// MismoDia compara solo año, mes y día.
func MismoDia(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Dentro indica si fecha cae en el intervalo cerrado [inicio, fin],
// comparando por día. Un intervalo invertido nunca contiene nada.
func Dentro(fecha, inicio, fin time.Time) bool {
	f := trunca(fecha)
	return !f.Before(trunca(inicio)) && !f.After(trunca(fin))
}

func trunca(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
