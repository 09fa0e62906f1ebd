package handler

import (
	"github.com/gofiber/fiber/v2"
)

// NextToken marks the serving token as served and calls the next waiting
// token, if any.
func (h *Handler) NextToken(c *fiber.Ctx) error {
	number, ok, err := h.Store.Advance(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	h.broadcastStatus()

	if !ok {
		return c.JSON(fiber.Map{
			"message":             "No waiting tokens",
			"currentServingToken": nil,
		})
	}

	return c.JSON(fiber.Map{
		"message":             "Moved to next token",
		"currentServingToken": number,
	})
}

// ResetQueue deletes every token and rewinds the number sequence.
func (h *Handler) ResetQueue(c *fiber.Ctx) error {
	if err := h.Store.Reset(c.Context()); err != nil {
		return storeError(c, err)
	}

	h.broadcastStatus()

	return c.JSON(fiber.Map{
		"message": "Queue reset successfully",
	})
}
