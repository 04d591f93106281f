package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nedagosa-cod/admin-training/internal/database"
	"github.com/nedagosa-cod/admin-training/internal/models"
)

func repoDePrueba(t *testing.T) *RegistroRepository {
	t.Helper()
	db, err := database.InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRegistroRepository(db)
}

func TestCrearLoteYRegistros(t *testing.T) {
	repo := repoDePrueba(t)
	ctx := context.Background()

	err := repo.CrearLote(ctx, []models.RegistroFormacion{
		{Cliente: "Acme", Segmento: "Retail", Desarrollo: "Evolutivo", FechaInicio: "01/03/2025", FechaFin: "05/03/2025", Estado: "Pendiente"},
		{Cliente: "Banca", Segmento: "Norte", Desarrollo: "Soporte", Estado: "Pendiente"},
	})
	require.NoError(t, err)

	registros, err := repo.Registros(ctx)
	require.NoError(t, err)
	require.Len(t, registros, 2)

	// La numeración imita a la hoja: el primer dato es la fila 2
	assert.Equal(t, 2, registros[0].FilaIndice)
	assert.Equal(t, 3, registros[1].FilaIndice)

	// campana se recalcula al insertar
	assert.Equal(t, "Acme Retail", registros[0].Campana)
	assert.Equal(t, "Banca Norte", registros[1].Campana)
}

func TestActualizarFila(t *testing.T) {
	repo := repoDePrueba(t)
	ctx := context.Background()

	require.NoError(t, repo.CrearLote(ctx, []models.RegistroFormacion{
		{Cliente: "Acme", Segmento: "Retail", Estado: "Pendiente"},
	}))

	registros, err := repo.Registros(ctx)
	require.NoError(t, err)
	registro := registros[0]
	registro.Estado = "Entregado"

	require.NoError(t, repo.ActualizarFila(ctx, registro, registro.FilaIndice))

	registros, err = repo.Registros(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Entregado", registros[0].Estado)
}

func TestActualizarLoteElBorradoGana(t *testing.T) {
	repo := repoDePrueba(t)
	ctx := context.Background()

	require.NoError(t, repo.CrearLote(ctx, []models.RegistroFormacion{
		{Cliente: "Acme", Segmento: "Retail", Estado: "Pendiente"},
		{Cliente: "Banca", Segmento: "Norte", Estado: "Pendiente"},
	}))

	registros, err := repo.Registros(ctx)
	require.NoError(t, err)

	// La fila 2 se modifica y se borra a la vez: tiene que terminar borrada
	modificado := registros[0]
	modificado.Estado = "Entregado"

	err = repo.ActualizarLote(ctx, []models.RegistroFormacion{modificado}, []int{modificado.FilaIndice})
	require.NoError(t, err)

	registros, err = repo.Registros(ctx)
	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.Equal(t, "Banca Norte", registros[0].Campana)
}

func TestActualizarLoteIgnoraSinFila(t *testing.T) {
	repo := repoDePrueba(t)
	ctx := context.Background()

	// Un registro sin fila no puede actualizarse; se saltea sin error
	err := repo.ActualizarLote(ctx, []models.RegistroFormacion{{Cliente: "Acme"}}, nil)
	require.NoError(t, err)
}

func TestMaestros(t *testing.T) {
	repo := repoDePrueba(t)
	ctx := context.Background()

	require.NoError(t, repo.CrearLote(ctx, []models.RegistroFormacion{
		{Cliente: "Beta", Desarrollador: "Laura Méndez", Coordinador: "Marta"},
		{Cliente: "Acme", Desarrollador: "Laura Méndez", Coordinador: "Marta"},
	}))

	maestros, err := repo.Maestros(ctx)
	require.NoError(t, err)

	// Derivadas de los registros, ordenadas y sin repetir
	assert.Equal(t, []string{"Acme", "Beta"}, maestros.Clientes)
	assert.Equal(t, []string{"Laura Méndez"}, maestros.Desarrolladores)
	assert.Equal(t, []string{"Marta"}, maestros.Coordinadores)

	// Sembradas en el arranque
	assert.Contains(t, maestros.TiposDesarrollo, "Evolutivo")
	assert.Contains(t, maestros.Estados, "Incumplimiento")
	assert.NotEmpty(t, maestros.Festivos)
}

func TestNovedades(t *testing.T) {
	repo := repoDePrueba(t)
	ctx := context.Background()

	_, err := repo.DB.ExecContext(ctx, `INSERT INTO novedades (desarrollador, fecha_inicio, fecha_fin, novedad)
		VALUES (?, ?, ?, ?)`, "Pedro Gómez", "01/03/2025", "02/03/2025", "Vacaciones")
	require.NoError(t, err)

	novedades, err := repo.Novedades(ctx)
	require.NoError(t, err)
	require.Len(t, novedades, 1)
	assert.Equal(t, "Pedro Gómez", novedades[0].Desarrollador)
	assert.Equal(t, "Vacaciones", novedades[0].Novedad)
}
