package database

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// InitDB inicializa la conexión a la base de datos y crea las tablas si no
// existen. Es el modo local del tablero: la misma forma que la hoja remota
// pero en sqlite, para desarrollo y para trabajar sin conexión.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	// Una fila de registros equivale a una fila de la pestaña Base_WT25
	sqlStmt := `
	CREATE TABLE IF NOT EXISTS registros (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fecha_solicitud TEXT,
		coordinador TEXT,
		cliente TEXT,
		segmento TEXT,
		desarrollador TEXT,
		segmento_menu TEXT,
		desarrollo TEXT,
		nombre TEXT,
		cantidad TEXT,
		fecha_material TEXT,
		fecha_inicio TEXT,
		fecha_fin TEXT,
		estado TEXT,
		formador TEXT,
		observaciones TEXT,
		campana TEXT
	);
	CREATE TABLE IF NOT EXISTS festivos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fecha TEXT,
		festividad TEXT
	);
	CREATE TABLE IF NOT EXISTS novedades (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		desarrollador TEXT,
		fecha_inicio TEXT,
		fecha_fin TEXT,
		novedad TEXT
	);
	CREATE TABLE IF NOT EXISTS opciones (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tipo TEXT,
		valor TEXT,
		UNIQUE(tipo, valor)
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		log.Printf("%q: %s\n", err, sqlStmt)
		return nil, err
	}

	seedData(db)

	return db, nil
}
