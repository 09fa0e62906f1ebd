package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-queue/internal/store"
)

// recentServedLimit bounds the timing scan for dashboard responsiveness.
const recentServedLimit = 50

// GetTimingStats summarizes wait durations over the most recently served
// tokens for the admin dashboard.
func (h *Handler) GetTimingStats(c *fiber.Ctx) error {
	served, err := h.Store.RecentServed(c.Context(), recentServedLimit)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"timings":      store.ComputeTimings(served),
		"recentServed": store.ServedEntries(served),
	})
}
