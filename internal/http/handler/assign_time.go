package handler

import (
	"github.com/gofiber/fiber/v2"
)

// AssignServiceTime sets the expected handling duration on one token.
func (h *Handler) AssignServiceTime(c *fiber.Ctx) error {
	type Request struct {
		TokenNumber         int64    `json:"tokenNumber"`
		AssignedServiceTime *float64 `json:"assignedServiceTime"`
	}

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.TokenNumber == 0 || req.AssignedServiceTime == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "tokenNumber and assignedServiceTime are required",
		})
	}

	if *req.AssignedServiceTime < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "assignedServiceTime must be a non-negative number (in minutes)",
		})
	}

	token, err := h.Store.AssignServiceTime(c.Context(), req.TokenNumber, *req.AssignedServiceTime)
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":             "Service time assigned successfully",
		"tokenNumber":         token.TokenNumber,
		"assignedServiceTime": token.AssignedServiceTime,
	})
}
