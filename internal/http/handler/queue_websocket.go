package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/websocket/v2"
)

// Debounce broadcasts so a burst of mutations costs one snapshot query.
const broadcastDelay = 50 * time.Millisecond

// StatusWebSocket pushes the public queue snapshot to display dashboards.
// The client receives one snapshot on connect and one after every queue
// mutation.
func (h *Handler) StatusWebSocket(c *websocket.Conn) {
	if payload, err := h.statusPayload(context.Background(), 0); err == nil {
		if msg, err := json.Marshal(payload); err == nil {
			c.SetWriteDeadline(time.Now().Add(5 * time.Second))
			_ = c.WriteMessage(websocket.TextMessage, msg)
		}
	}

	h.Hub.Handle(c)
}

func (h *Handler) broadcastStatus() {
	if h.Hub == nil {
		return
	}

	h.broadcastTimerMu.Lock()
	defer h.broadcastTimerMu.Unlock()

	if h.broadcastTimer != nil {
		h.broadcastTimer.Reset(broadcastDelay)
		return
	}

	h.broadcastTimer = time.AfterFunc(broadcastDelay, func() {
		h.broadcastTimerMu.Lock()
		h.broadcastTimer = nil
		h.broadcastTimerMu.Unlock()

		if h.Hub.ClientCount() == 0 {
			return
		}

		payload, err := h.statusPayload(context.Background(), 0)
		if err != nil {
			log.Println("broadcast snapshot failed:", err)
			return
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			return
		}
		h.Hub.Broadcast(msg)
	})
}
