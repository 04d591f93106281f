package models

import "time"

// DetalleDesarrollo es la vista de un desarrollo dentro de un grupo.
// FilaIndice es la referencia débil a su RegistroFormacion de origen:
// sirve para buscar el registro vivo, no para mutarlo desde aquí.
type DetalleDesarrollo struct {
	FilaIndice    int    `json:"rowIndex,omitempty"`
	Desarrollo    string `json:"desarrollo"`
	Nombre        string `json:"nombre"`
	Segmento      string `json:"segmento"`
	Cantidad      string `json:"cantidad"`
	Estado        string `json:"estado"`
	Observaciones string `json:"observaciones"`
}

// EventoAgrupado junta los registros de una misma campaña para un día.
// La cabecera sale del primer registro que aportó al grupo; cabeceras
// distintas en filas posteriores se ignoran (fusión con pérdida, asumimos
// cabecera consistente por campaña).
type EventoAgrupado struct {
	Campana        string              `json:"campana"`
	FechaSolicitud string              `json:"fechaSolicitud"`
	Coordinador    string              `json:"coordinador"`
	Desarrollador  string              `json:"desarrollador"`
	Cliente        string              `json:"cliente"`
	Segmento       string              `json:"segmento"`
	SegmentoMenu   string              `json:"segmentoMenu"`
	Formador       string              `json:"formador"`
	FechaMaterial  string              `json:"fechaMaterial"`
	FechaInicio    string              `json:"fechaInicio"`
	FechaFin       string              `json:"fechaFin"`
	Desarrollos    []DetalleDesarrollo `json:"desarrollos"`
}

// NuevoDesarrollo son los campos que llena el usuario al agregar un
// desarrollo a una campaña existente.
type NuevoDesarrollo struct {
	Desarrollo    string `json:"desarrollo" form:"desarrollo"`
	Nombre        string `json:"nombre" form:"nombre"`
	Cantidad      string `json:"cantidad" form:"cantidad"`
	FechaMaterial string `json:"fechaMaterial" form:"fechaMaterial"`
	FechaInicio   string `json:"fechaInicio" form:"fechaInicio"`
	FechaFin      string `json:"fechaFin" form:"fechaFin"`
	Estado        string `json:"estado" form:"estado"`
	Observaciones string `json:"observaciones" form:"observaciones"`
}

// ComponerRegistro arma un registro nuevo combinando la cabecera del grupo
// con los campos del formulario. El registro sale sin FilaIndice para que la
// capa de envío lo enrute por creación y no por actualización.
func ComponerRegistro(grupo EventoAgrupado, form NuevoDesarrollo) RegistroFormacion {
	fechaSolicitud := grupo.FechaSolicitud
	if fechaSolicitud == "" {
		fechaSolicitud = time.Now().Format("2006-01-02")
	}

	estado := form.Estado
	if estado == "" {
		estado = "Pendiente"
	}

	return RegistroFormacion{
		Coordinador:    grupo.Coordinador,
		Cliente:        grupo.Cliente,
		Segmento:       grupo.Segmento,
		Desarrollador:  grupo.Desarrollador,
		SegmentoMenu:   grupo.SegmentoMenu,
		Campana:        grupo.Campana,
		Formador:       grupo.Formador,
		FechaSolicitud: fechaSolicitud,

		Desarrollo:    form.Desarrollo,
		Nombre:        form.Nombre,
		Cantidad:      form.Cantidad,
		FechaMaterial: form.FechaMaterial,
		FechaInicio:   form.FechaInicio,
		FechaFin:      form.FechaFin,
		Estado:        estado,
		Observaciones: form.Observaciones,
	}
}
