// internal/spectate/hub.go
package spectate

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"go-lane-battle/internal/app"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/event"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Snapshotter отдаёт срез состояния для рассылки.
type Snapshotter interface {
	Snapshot() app.Snapshot
}

type stateMessage struct {
	Type  string       `json:"type"`
	State app.Snapshot `json:"state"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub раздаёт снимки боя подключённым зрителям. Зрители только смотрят:
// входящие сообщения читаются и отбрасываются.
type Hub struct {
	source   Snapshotter
	interval float64

	mu      sync.Mutex
	clients map[*client]bool

	last    float64
	started bool
}

// NewHub создаёт хаб с интервалом рассылки config.SpectateInterval.
func NewHub(source Snapshotter) *Hub {
	return &Hub{
		source:   source,
		interval: config.SpectateInterval,
		clients:  make(map[*client]bool),
	}
}

// Attach подписывает хаб на завершение тиков.
func (h *Hub) Attach(d *event.Dispatcher) {
	d.Subscribe(event.TickCompleted, h)
}

// OnEvent throttles broadcasts by game time. A stage reload resets the clock.
func (h *Hub) OnEvent(e event.Event) {
	now, ok := e.Data.(float64)
	if !ok {
		return
	}
	if h.started && now >= h.last && now-h.last < h.interval-1e-9 {
		return
	}
	h.started = true
	h.last = now
	h.Broadcast()
}

// Broadcast кодирует текущий снимок и рассылает его без блокировки.
// Зрители, не успевающие читать, отключаются.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}
	data, err := json.Marshal(stateMessage{Type: "state", State: h.source.Snapshot()})
	if err != nil {
		log.Printf("spectate: encode snapshot: %v", err)
		return
	}
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			close(c.send)
			delete(h.clients, c)
		}
	}
}

// Clients — число подключённых зрителей.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request and registers a spectator.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 16)}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// Close отключает всех зрителей.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// NewMux mounts the hub at /ws.
func NewMux(h *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}
