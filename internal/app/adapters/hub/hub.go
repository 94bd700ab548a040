package hub

import (
	"countdown/internal/app/adapters/metrics"
	"countdown/internal/app/adapters/view"
	"countdown/internal/app/domain/screen"
	"countdown/internal/app/ports"
	"countdown/pkg/logger"
	"encoding/json"
	"github.com/gorilla/websocket"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Hub рассылает снимки состояния всем подключенным экранам.
type Hub struct {
	log   logger.Logger
	limit int

	mu      sync.RWMutex
	clients map[*client]struct{}
	last    atomic.Pointer[[]byte]

	upgrader websocket.Upgrader
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func New(log logger.Logger, limit int) *Hub {
	return &Hub{
		log:     log,
		limit:   limit,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) PublishState(s screen.State) {
	payload, err := json.Marshal(view.Envelope{Type: view.TypeState, Data: view.FromState(s, h.limit)})
	if err != nil {
		h.log.Error("Error marshal state", err)
		return
	}

	h.last.Store(&payload)
	h.broadcast(payload)
}

func (h *Hub) PublishCelebration(c ports.Celebration) {
	payload, err := json.Marshal(view.Envelope{Type: view.TypeCelebrate, Data: c})
	if err != nil {
		h.log.Error("Error marshal celebration", err)
		return
	}

	h.broadcast(payload)
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.log.Warn("Dropping slow display client", "remote", c.conn.RemoteAddr().String())
		h.remove(c)
	}
}

// ServeWS блокируется до закрытия соединения.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	if last := h.last.Load(); last != nil {
		c.send <- *last
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	metrics.DisplayClients.Set(float64(n))
	h.log.Debug("Display connected", "remote", conn.RemoteAddr().String(), "clients", n)

	go h.writePump(c)
	h.readPump(c)
	return nil
}

func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	c.once.Do(func() {
		h.mu.Lock()
		delete(h.clients, c)
		n := len(h.clients)
		h.mu.Unlock()

		close(c.send)
		_ = c.conn.Close()
		metrics.DisplayClients.Set(float64(n))
	})
}

// readPump только держит дедлайн по pong и ловит закрытие со стороны клиента.
func (h *Hub) readPump(c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("Display read error", "error", err.Error())
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.remove(c)
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
