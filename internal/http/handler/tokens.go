package handler

import (
	"github.com/gofiber/fiber/v2"

	"backend-queue/internal/models"
)

// GetWaitingTokens lists waiting tokens in call order.
func (h *Handler) GetWaitingTokens(c *fiber.Ctx) error {
	tokens, err := h.Store.WaitingTokens(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	waiting := make([]models.WaitingToken, 0, len(tokens))
	for _, t := range tokens {
		waiting = append(waiting, t.ToWaiting())
	}

	return c.JSON(fiber.Map{
		"waiting": waiting,
	})
}

// GetAllTokens lists every token for the admin selection dropdown.
func (h *Handler) GetAllTokens(c *fiber.Ctx) error {
	tokens, err := h.Store.AllTokens(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"tokens": tokens,
	})
}
