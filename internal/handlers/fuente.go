package handlers

import (
	"context"

	"github.com/nedagosa-cod/admin-training/internal/models"
)

// FuenteDatos es el transporte de datos del tablero. Lo implementan el
// cliente de la hoja remota (sheets.Cliente) y la fuente local en sqlite
// (repository.RegistroRepository); los handlers no distinguen cuál usan.
//
// El envío es fuego-y-olvido: solo se observa si la petición completó, no el
// resultado fila por fila. Para una fila presente a la vez en modificados y
// eliminados de ActualizarLote, el contrato es que el borrado gana.
type FuenteDatos interface {
	Registros(ctx context.Context) ([]models.RegistroFormacion, error)
	Maestros(ctx context.Context) (models.DatosMaestros, error)
	Novedades(ctx context.Context) ([]models.Novedad, error)

	CrearLote(ctx context.Context, registros []models.RegistroFormacion) error
	ActualizarFila(ctx context.Context, registro models.RegistroFormacion, fila int) error
	ActualizarLote(ctx context.Context, modificados []models.RegistroFormacion, eliminados []int) error
}
