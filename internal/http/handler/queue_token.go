package handler

import (
	"github.com/gofiber/fiber/v2"
)

// TakeToken issues the next queue number for a service category.
func (h *Handler) TakeToken(c *fiber.Ctx) error {
	type Request struct {
		ServiceType string `json:"serviceType"`
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ServiceType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "serviceType is required",
		})
	}

	token, err := h.Store.CreateToken(c.Context(), req.ServiceType)
	if err != nil {
		return storeError(c, err)
	}

	h.broadcastStatus()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Token generated successfully",
		"tokenNumber": token.TokenNumber,
		"serviceType": token.ServiceType,
	})
}
