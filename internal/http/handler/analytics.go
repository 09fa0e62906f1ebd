package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-queue/internal/models"
	"backend-queue/internal/store"
)

// GetAnalytics recomputes the queue totals and average wait on demand.
func (h *Handler) GetAnalytics(c *fiber.Ctx) error {
	total, err := h.Store.TotalTokens(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	served, err := h.Store.ServedTokens(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(models.Analytics{
		TotalTokensGenerated: total,
		TokensServed:         len(served),
		AverageWaitingTime:   store.AverageWaitMinutes(served),
	})
}
