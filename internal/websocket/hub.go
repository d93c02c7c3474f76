package websocket

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/wire"
	ws "github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewHub)

const (
	writeWait    = 5 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	// 每個 client 最多排隊的訊息數，塞滿就視為慢速 client 斷開
	sendBuffer = 32
)

// Event 推送給前端的變更通知，例如 {"type":"employees-data_created", ...}
type Event struct {
	Type   string `json:"type"`
	Slot   string `json:"slot"`
	Action string `json:"action"`
	ID     any    `json:"id,omitempty"`
}

// client 只有 writePump 會寫 conn
type client struct {
	conn *ws.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func newClient(conn *ws.Conn) *client {
	return &client{conn: conn, send: make(chan []byte, sendBuffer), done: make(chan struct{})}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.done) })
}

// Hub 管理所有連線中的 websocket client
type Hub struct {
	mu       sync.RWMutex
	clients  map[*client]struct{}
	logger   *zap.Logger
	upgrader ws.Upgrader
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
		upgrader: ws.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Hub) register(c *client) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	return len(h.clients)
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	c.stop()
	if ok && c.conn != nil {
		_ = c.conn.Close()
	}
}

// Clients 目前連線數
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast 只把訊息放進各 client 的佇列，不會卡住呼叫端；佇列滿的 client 直接移除
func (h *Hub) Broadcast(evt Event) {
	if h == nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		h.logger.Warn("ws: marshal event", zap.Error(err))
		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Debug("ws: drop slow client")
		h.unregister(c)
	}
}

// BroadcastChange action 為 create/update/delete...，type 為 "<slot>_<action>d"
func (h *Hub) BroadcastChange(slot, action string, id any) {
	h.Broadcast(Event{
		Type:   slot + "_" + action + "d",
		Slot:   slot,
		Action: action,
		ID:     id,
	})
}

// Serve 升級連線後交給 writePump 送訊息與 ping，這裡只負責讀到斷線
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws: upgrade", zap.Error(err))
		return
	}

	c := newClient(conn)
	total := h.register(c)
	h.logger.Info("ws: client connected", zap.Int("clients", total))
	go h.writePump(c)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(c)
	h.logger.Info("ws: client disconnected", zap.Int("clients", h.Clients()))
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(ws.TextMessage, data); err != nil {
				h.logger.Debug("ws: write failed", zap.Error(err))
				h.unregister(c)
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(ws.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.unregister(c)
				return
			}
		}
	}
}
