package main

import (
	"log"
	"os"

	"github.com/nedagosa-cod/admin-training/internal/database"
	"github.com/nedagosa-cod/admin-training/internal/handlers"
	"github.com/nedagosa-cod/admin-training/internal/repository"
	"github.com/nedagosa-cod/admin-training/internal/sheets"

	"github.com/gin-gonic/gin"
)

func main() {
	// Elegir la fuente de datos: con SHEETS_ID definido hablamos con la
	// planilla vía gviz y el Apps Script; sin él usamos la base local
	var fuente handlers.FuenteDatos
	if sheetID := os.Getenv("SHEETS_ID"); sheetID != "" {
		fuente = sheets.NuevoCliente(sheetID, os.Getenv("GAS_URL"))
	} else {
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "./formaciones.db"
		}
		db, err := database.InitDB(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		fuente = repository.NewRegistroRepository(db)
	}

	// Inicializar Handlers
	hub := handlers.NewHub()
	tableroHandler := handlers.NewTableroHandler(fuente, hub)
	sesionHandler := handlers.NewSesionHandler(fuente, hub)
	authHandler := handlers.NewAuthHandler()

	// Configurar Gin
	r := gin.Default()

	// Rutas Públicas (lectura del tablero)
	r.GET("/api/registros", tableroHandler.GetRegistros)
	r.GET("/api/maestros", tableroHandler.GetMaestros)
	r.GET("/api/novedades", tableroHandler.GetNovedades)
	r.GET("/api/tablero", tableroHandler.GetTablero)
	r.GET("/ws", hub.HandleWebSocket)

	// Rutas de Autenticación
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/logout", authHandler.Logout)

	// Rutas Protegidas (escritura)
	adminGroup := r.Group("/api")
	adminGroup.Use(handlers.AuthMiddleware())
	{
		adminGroup.POST("/registros", tableroHandler.CrearRegistros)
		adminGroup.PUT("/registros/:fila", tableroHandler.ActualizarRegistro)

		adminGroup.POST("/sesiones", sesionHandler.AbrirSesion)
		adminGroup.POST("/sesiones/:id/campos", sesionHandler.AplicarCampo)
		adminGroup.POST("/sesiones/:id/eliminar", sesionHandler.AlternarEliminacion)
		adminGroup.POST("/sesiones/:id/agregar", sesionHandler.AgregarDesarrollo)
		adminGroup.POST("/sesiones/:id/confirmar", sesionHandler.Confirmar)
		adminGroup.DELETE("/sesiones/:id", sesionHandler.Descartar)
	}

	// Iniciar servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
