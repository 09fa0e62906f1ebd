package realtime

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 20 * time.Second
	writeWait    = 5 * time.Second
)

type client struct {
	conn     *websocket.Conn
	writeMux sync.Mutex
	closed   bool
	closeCh  chan struct{}
	id       string
}

// Hub tracks connected display clients and fans out queue snapshots.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	counter uint64 // atomic
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*client)}
}

// Handle owns the connection until the client goes away. It registers the
// client, keeps the connection alive with pings, and drains reads.
func (h *Hub) Handle(c *websocket.Conn) {
	id := atomic.AddUint64(&h.counter, 1)
	cl := &client{
		conn:    c,
		closeCh: make(chan struct{}),
		id:      fmt.Sprintf("client-%d", id),
	}

	h.mu.Lock()
	h.clients[c] = cl
	total := len(h.clients)
	h.mu.Unlock()
	log.Printf("[ws] %s registered, total: %d", cl.id, total)

	defer h.unregister(c)

	c.SetReadDeadline(time.Now().Add(pongWait))
	c.SetPongHandler(func(string) error {
		c.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				cl.writeMux.Lock()
				if cl.closed {
					cl.writeMux.Unlock()
					return
				}
				c.SetWriteDeadline(time.Now().Add(writeWait))
				err := c.WriteMessage(websocket.PingMessage, nil)
				cl.writeMux.Unlock()
				if err != nil {
					return
				}
			case <-cl.closeCh:
				return
			}
		}
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure,
			) {
				log.Printf("[ws] %s unexpected close: %v", cl.id, err)
			}
			return
		}
	}
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	cl, ok := h.clients[c]
	if ok {
		cl.writeMux.Lock()
		if !cl.closed {
			cl.closed = true
			close(cl.closeCh)
		}
		cl.writeMux.Unlock()
		delete(h.clients, c)
	}
	total := len(h.clients)
	h.mu.Unlock()

	_ = c.Close()
	if ok {
		log.Printf("[ws] %s unregistered, total: %d", cl.id, total)
	}
}

// Broadcast writes msg to every connected client. Clients that fail the
// write are dropped.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, cl := range h.clients {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		cl.writeMux.Lock()
		if cl.closed {
			cl.writeMux.Unlock()
			continue
		}
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := cl.conn.WriteMessage(websocket.TextMessage, msg)
		cl.writeMux.Unlock()

		if err != nil {
			log.Printf("[ws] %s write failed: %v", cl.id, err)
			h.unregister(cl.conn)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
