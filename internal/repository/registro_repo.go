package repository

import (
	"context"
	"database/sql"
	"sort"

	"github.com/nedagosa-cod/admin-training/internal/models"
)

// RegistroRepository es la fuente de datos local en sqlite. Expone la misma
// superficie que el cliente de la hoja remota, así que el resto del tablero
// no distingue de dónde vienen los datos.
//
// La fila expuesta es id + 1 para imitar la numeración de la hoja: la
// cabecera es la fila 1 y el primer dato la fila 2.
type RegistroRepository struct {
	DB *sql.DB
}

func NewRegistroRepository(db *sql.DB) *RegistroRepository {
	return &RegistroRepository{DB: db}
}

const columnasRegistro = `id, COALESCE(fecha_solicitud,''), COALESCE(coordinador,''), COALESCE(cliente,''),
	COALESCE(segmento,''), COALESCE(desarrollador,''), COALESCE(segmento_menu,''), COALESCE(desarrollo,''),
	COALESCE(nombre,''), COALESCE(cantidad,''), COALESCE(fecha_material,''), COALESCE(fecha_inicio,''),
	COALESCE(fecha_fin,''), COALESCE(estado,''), COALESCE(formador,''), COALESCE(observaciones,''), COALESCE(campana,'')`

func escanearRegistro(rows *sql.Rows) (models.RegistroFormacion, error) {
	var r models.RegistroFormacion
	var id int
	err := rows.Scan(&id, &r.FechaSolicitud, &r.Coordinador, &r.Cliente,
		&r.Segmento, &r.Desarrollador, &r.SegmentoMenu, &r.Desarrollo,
		&r.Nombre, &r.Cantidad, &r.FechaMaterial, &r.FechaInicio,
		&r.FechaFin, &r.Estado, &r.Formador, &r.Observaciones, &r.Campana)
	r.FilaIndice = id + 1
	return r, err
}

func (r *RegistroRepository) Registros(ctx context.Context) ([]models.RegistroFormacion, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+columnasRegistro+" FROM registros ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var registros []models.RegistroFormacion
	for rows.Next() {
		reg, err := escanearRegistro(rows)
		if err != nil {
			return nil, err
		}
		registros = append(registros, reg)
	}
	return registros, rows.Err()
}

// Maestros arma las listas de opciones: festivos y opciones fijas desde sus
// tablas, y el resto por DISTINCT sobre los registros, igual que la pestaña
// DATA deriva sus columnas.
func (r *RegistroRepository) Maestros(ctx context.Context) (models.DatosMaestros, error) {
	maestros := models.DatosMaestros{}

	rows, err := r.DB.QueryContext(ctx, "SELECT COALESCE(fecha,''), COALESCE(festividad,'') FROM festivos ORDER BY id ASC")
	if err != nil {
		return maestros, err
	}
	for rows.Next() {
		var f models.Festivo
		if err := rows.Scan(&f.Fecha, &f.Festividad); err != nil {
			rows.Close()
			return maestros, err
		}
		maestros.Festivos = append(maestros.Festivos, f)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return maestros, err
	}

	var errCol error
	maestros.Desarrolladores, errCol = r.columnaDistinta(ctx, "desarrollador")
	if errCol != nil {
		return maestros, errCol
	}
	maestros.Coordinadores, errCol = r.columnaDistinta(ctx, "coordinador")
	if errCol != nil {
		return maestros, errCol
	}
	maestros.Clientes, errCol = r.columnaDistinta(ctx, "cliente")
	if errCol != nil {
		return maestros, errCol
	}
	maestros.TiposDesarrollo, errCol = r.opciones(ctx, "tipo_desarrollo")
	if errCol != nil {
		return maestros, errCol
	}
	maestros.Estados, errCol = r.opciones(ctx, "estado")
	if errCol != nil {
		return maestros, errCol
	}

	return maestros, nil
}

func (r *RegistroRepository) columnaDistinta(ctx context.Context, columna string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT DISTINCT "+columna+" FROM registros WHERE "+columna+" IS NOT NULL AND "+columna+" != ''")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var valores []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		valores = append(valores, v)
	}
	sort.Strings(valores)
	return valores, rows.Err()
}

func (r *RegistroRepository) opciones(ctx context.Context, tipo string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT valor FROM opciones WHERE tipo = ? ORDER BY valor ASC", tipo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var valores []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		valores = append(valores, v)
	}
	return valores, rows.Err()
}

func (r *RegistroRepository) Novedades(ctx context.Context) ([]models.Novedad, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT COALESCE(desarrollador,''), COALESCE(fecha_inicio,''),
		COALESCE(fecha_fin,''), COALESCE(novedad,'') FROM novedades ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var novedades []models.Novedad
	for rows.Next() {
		var n models.Novedad
		if err := rows.Scan(&n.Desarrollador, &n.FechaInicio, &n.FechaFin, &n.Novedad); err != nil {
			return nil, err
		}
		novedades = append(novedades, n)
	}
	return novedades, rows.Err()
}

// CrearLote inserta registros nuevos recalculando campana, igual que hace
// el envío a la hoja.
func (r *RegistroRepository) CrearLote(ctx context.Context, registros []models.RegistroFormacion) error {
	stmt, err := r.DB.PrepareContext(ctx, `INSERT INTO registros
		(fecha_solicitud, coordinador, cliente, segmento, desarrollador, segmento_menu,
		 desarrollo, nombre, cantidad, fecha_material, fecha_inicio, fecha_fin,
		 estado, formador, observaciones, campana)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, reg := range registros {
		_, err = stmt.ExecContext(ctx, reg.FechaSolicitud, reg.Coordinador, reg.Cliente,
			reg.Segmento, reg.Desarrollador, reg.SegmentoMenu, reg.Desarrollo,
			reg.Nombre, reg.Cantidad, reg.FechaMaterial, reg.FechaInicio,
			reg.FechaFin, reg.Estado, reg.Formador, reg.Observaciones, reg.CampanaDerivada())
		if err != nil {
			return err
		}
	}
	return nil
}

// ActualizarFila reescribe una fila puntual.
func (r *RegistroRepository) ActualizarFila(ctx context.Context, registro models.RegistroFormacion, fila int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE registros SET
		fecha_solicitud=?, coordinador=?, cliente=?, segmento=?, desarrollador=?, segmento_menu=?,
		desarrollo=?, nombre=?, cantidad=?, fecha_material=?, fecha_inicio=?, fecha_fin=?,
		estado=?, formador=?, observaciones=?, campana=?
		WHERE id = ?`,
		registro.FechaSolicitud, registro.Coordinador, registro.Cliente, registro.Segmento,
		registro.Desarrollador, registro.SegmentoMenu, registro.Desarrollo, registro.Nombre,
		registro.Cantidad, registro.FechaMaterial, registro.FechaInicio, registro.FechaFin,
		registro.Estado, registro.Formador, registro.Observaciones, registro.CampanaDerivada(),
		fila-1)
	return err
}

// ActualizarLote aplica primero las modificaciones y después los borrados:
// una fila presente en ambas listas termina borrada, que es el contrato del
// lote ("el borrado gana").
func (r *RegistroRepository) ActualizarLote(ctx context.Context, modificados []models.RegistroFormacion, eliminados []int) error {
	for _, reg := range modificados {
		if !reg.Guardado() {
			continue
		}
		if err := r.ActualizarFila(ctx, reg, reg.FilaIndice); err != nil {
			return err
		}
	}
	for _, fila := range eliminados {
		if _, err := r.DB.ExecContext(ctx, "DELETE FROM registros WHERE id = ?", fila-1); err != nil {
			return err
		}
	}
	return nil
}
