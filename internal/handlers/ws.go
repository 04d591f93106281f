package handlers

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // NOTA: En producción, validar el dominio aquí por seguridad
	},
}

// Hub mantiene los tableros conectados y les avisa cuando cambian los
// datos para que vuelvan a pedir el mes.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Notificar manda el nombre del recurso que cambió a todos los clientes.
// Las conexiones caídas se sacan del registro en el mismo barrido.
func (h *Hub) Notificar(recurso string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(recurso)); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *Hub) registrar(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) desregistrar(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// HandleWebSocket sostiene la conexión de un tablero abierto.
func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Failed to upgrade:", err)
		return
	}
	defer conn.Close()

	h.registrar(conn)
	defer h.desregistrar(conn)

	// Loop de lectura: el cliente no manda nada útil, solo lo usamos
	// para detectar el cierre
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
