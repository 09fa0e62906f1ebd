package handler

import (
	"github.com/gofiber/fiber/v2"
)

// GetServiceTimes lists the per-category default durations.
func (h *Handler) GetServiceTimes(c *fiber.Ctx) error {
	defaults, err := h.Store.ServiceTimeDefaults(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"serviceTimes": defaults,
	})
}

// SetServiceTime upserts a category default; a null estimatedMinutes
// removes it.
func (h *Handler) SetServiceTime(c *fiber.Ctx) error {
	type Request struct {
		ServiceType      string   `json:"serviceType"`
		EstimatedMinutes *float64 `json:"estimatedMinutes"`
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

	if req.EstimatedMinutes == nil {
		if err := h.Store.DeleteServiceTimeDefault(c.Context(), req.ServiceType); err != nil {
			return storeError(c, err)
		}
	} else {
		if *req.EstimatedMinutes <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "estimatedMinutes must be a positive number",
			})
		}
		if err := h.Store.SetServiceTimeDefault(c.Context(), req.ServiceType, *req.EstimatedMinutes); err != nil {
			return storeError(c, err)
		}
	}

	defaults, err := h.Store.ServiceTimeDefaults(c.Context())
	if err != nil {
		return storeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Service time defaults updated",
		"serviceTimes": defaults,
	})
}
