package events

import (
	"context"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// Hub giữ các websocket connection và phát lại message từ redis cho tất cả.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// Run subscribes the shared event channel and broadcasts until the process exits.
func (h *Hub) Run(rdb *redis.Client) {
	pubsub := rdb.Subscribe(context.Background(), Channel)
	ch := pubsub.Channel()
	go func() {
		for msg := range ch {
			h.broadcast([]byte(msg.Payload))
		}
	}()
}

func (h *Hub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		// client lỗi thì đóng và xoá luôn
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Serve registers the connection and blocks until the client goes away.
// Subscribers get no replay, they re-fetch state after reconnecting.
func (h *Hub) Serve(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	total := len(h.conns)
	h.mu.Unlock()
	log.Printf("events: client connected, %d active", total)

	defer func() {
		h.mu.Lock()
		delete(h.conns, c)
		h.mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
