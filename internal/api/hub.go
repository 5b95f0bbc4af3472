package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Dashboard pages are served from anywhere on the LAN.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub pushes every published snapshot to the connected dashboard clients.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// HandleWebSocket upgrades the request and serves the client until it
// disconnects.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	out := make(chan []byte, 16)
	h.mu.Lock()
	h.clients[conn] = out
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("Dashboard client connected", "remote", r.RemoteAddr, "clients", n)

	// writer
	go func() {
		for msg := range out {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.drop(conn)
				return
			}
		}
	}()

	// reader, only to detect disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast queues the message to every client. A client whose buffer is
// full misses this update rather than blocking the publish path.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, out := range h.clients {
		select {
		case out <- msg:
		default:
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll disconnects every client.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		h.drop(c)
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	out, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		close(out)
	}
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}
