package models

import "strings"

// RegistroFormacion representa una fila de la hoja Base_WT25: un desarrollo
// de una campaña. Los campos de cabecera se repiten en todas las filas de la
// misma campaña; los campos de desarrollo son propios de cada fila.
type RegistroFormacion struct {
	// FilaIndice es la fila real en la hoja (cabecera = 1, primer dato = 2).
	// Cero significa "todavía no guardado": el registro debe ir por el flujo
	// de creación, nunca por el de actualización.
	FilaIndice int `json:"rowIndex,omitempty" form:"rowIndex"`

	// Cabecera (compartida por campaña)
	FechaSolicitud string `json:"fechaSolicitud" form:"fechaSolicitud"`
	Coordinador    string `json:"coordinador" form:"coordinador"`
	Cliente        string `json:"cliente" form:"cliente"`
	Segmento       string `json:"segmento" form:"segmento"`
	Desarrollador  string `json:"desarrollador" form:"desarrollador"`
	SegmentoMenu   string `json:"segmentoMenu" form:"segmentoMenu"`
	Formador       string `json:"formador" form:"formador"`
	Campana        string `json:"campana" form:"campana"`

	// Desarrollo (propio de la fila)
	Desarrollo    string `json:"desarrollo" form:"desarrollo"`
	Nombre        string `json:"nombre" form:"nombre"`
	Cantidad      string `json:"cantidad" form:"cantidad"`
	FechaMaterial string `json:"fechaMaterial" form:"fechaMaterial"`
	FechaInicio   string `json:"fechaInicio" form:"fechaInicio"`
	FechaFin      string `json:"fechaFin" form:"fechaFin"`
	Estado        string `json:"estado" form:"estado"`
	Observaciones string `json:"observaciones" form:"observaciones"`
}

// Guardado indica si el registro ya existe en la hoja.
func (r RegistroFormacion) Guardado() bool {
	return r.FilaIndice > 0
}

// CampanaDerivada calcula el valor de campana que se escribe al enviar:
// "{cliente} {segmento}" recortado. No se edita a mano.
func (r RegistroFormacion) CampanaDerivada() string {
	return strings.TrimSpace(r.Cliente + " " + r.Segmento)
}

// ConCampo devuelve una copia del registro con un solo campo cambiado.
// El registro original nunca se muta. Campos desconocidos se ignoran.
func (r RegistroFormacion) ConCampo(campo, valor string) RegistroFormacion {
	switch campo {
	case "fechaSolicitud":
		r.FechaSolicitud = valor
	case "coordinador":
		r.Coordinador = valor
	case "cliente":
		r.Cliente = valor
	case "segmento":
		r.Segmento = valor
	case "desarrollador":
		r.Desarrollador = valor
	case "segmentoMenu":
		r.SegmentoMenu = valor
	case "formador":
		r.Formador = valor
	case "campana":
		r.Campana = valor
	case "desarrollo":
		r.Desarrollo = valor
	case "nombre":
		r.Nombre = valor
	case "cantidad":
		r.Cantidad = valor
	case "fechaMaterial":
		r.FechaMaterial = valor
	case "fechaInicio":
		r.FechaInicio = valor
	case "fechaFin":
		r.FechaFin = valor
	case "estado":
		r.Estado = valor
	case "observaciones":
		r.Observaciones = valor
	}
	return r
}

// Festivo es una fecha no laborable cargada desde la hoja DATA.
type Festivo struct {
	Fecha      string `json:"festivo"`
	Festividad string `json:"festividad"`
}

// Novedad es una ventana de ausencia o nota por desarrollador.
type Novedad struct {
	Desarrollador string `json:"desarrollador"`
	FechaInicio   string `json:"fechaInicio"`
	FechaFin      string `json:"fechaFin"`
	Novedad       string `json:"novedad"`
}

// DatosMaestros agrupa los festivos y las listas de opciones de los
// formularios, todas ordenadas y sin duplicados.
type DatosMaestros struct {
	Festivos        []Festivo `json:"festivos"`
	Desarrolladores []string  `json:"desarrolladores"`
	Coordinadores   []string  `json:"coordinadores"`
	Clientes        []string  `json:"clientes"`
	TiposDesarrollo []string  `json:"tiposDesarrollo"`
	Estados         []string  `json:"estados"`
}
