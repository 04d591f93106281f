package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// AuthHandler cubre la puerta de administración: los tableros se leen sin
// autenticar, pero crear y editar registros requiere la sesión de admin.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type loginPeticion struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var peticion loginPeticion
	if err := c.ShouldBindJSON(&peticion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	envEmail := os.Getenv("ADMIN_EMAIL")
	envPass := os.Getenv("ADMIN_PASSWORD")

	if peticion.Email != envEmail || peticion.Password != envPass {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales incorrectas"})
		return
	}

	c.SetCookie("admin_session", "logged_in", 3600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("admin_session", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie("admin_session")
		if err != nil || cookie != "logged_in" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesión de administrador requerida"})
			c.Abort()
			return
		}
		c.Next()
	}
}
