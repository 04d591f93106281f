package database

import "database/sql"

func seedData(db *sql.DB) {
	// Si ya hay opciones cargadas no se vuelve a sembrar
	var count int
	db.QueryRow("SELECT COUNT(*) FROM opciones").Scan(&count)
	if count > 0 {
		return
	}

	// Tipos de desarrollo
	tipos := []string{"Evolutivo", "Garantía", "Incidencia", "Proyecto", "Soporte", "Actualizacion"}
	for _, t := range tipos {
		db.Exec("INSERT INTO opciones (tipo, valor) VALUES (?, ?)", "tipo_desarrollo", t)
	}

	// Estados
	estados := []string{"Pendiente", "En Proceso", "Finalizado", "Entregado", "Cancelado", "Proyectado", "Sin Material", "Incumplimiento"}
	for _, e := range estados {
		db.Exec("INSERT INTO opciones (tipo, valor) VALUES (?, ?)", "estado", e)
	}

	// Festivos nacionales de ejemplo para el año de arranque
	festivos := [][2]string{
		{"01/01/2025", "Año Nuevo"},
		{"01/05/2025", "Día del Trabajo"},
		{"20/07/2025", "Día de la Independencia"},
		{"25/12/2025", "Navidad"},
	}
	for _, f := range festivos {
		db.Exec("INSERT INTO festivos (fecha, festividad) VALUES (?, ?)", f[0], f[1])
	}
}
