package handler

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"backend-queue/internal/realtime"
	"backend-queue/internal/store"
)

type Handler struct {
	Store store.Store
	Hub   *realtime.Hub

	// Debounce state for websocket broadcasts, see queue_websocket.go.
	broadcastTimer   *time.Timer
	broadcastTimerMu sync.Mutex
}

func New(s store.Store, hub *realtime.Hub) *Handler {
	return &Handler{Store: s, Hub: hub}
}

// storeError maps store failures to HTTP responses. Anything unexpected
// is logged and reported as a uniform 500.
func storeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrTokenNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Token not found",
		})
	case errors.Is(err, store.ErrInvalidMinutes), errors.Is(err, store.ErrEmptyServiceType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		log.Println("store error:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
}
