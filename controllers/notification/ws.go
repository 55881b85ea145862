package notificationControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/notify"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans notification transitions out to connected websocket clients.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub subscribes to the emitter; every show and hide is broadcast to all
// connected clients.
func NewHub(emitter *notify.Emitter) *Hub {
	h := &Hub{clients: make(map[*websocket.Conn]bool)}
	emitter.Subscribe(h.broadcast)
	return h
}

// GET /ws/notifications
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

func (h *Hub) broadcast(n models.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
