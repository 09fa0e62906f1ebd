package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"backend-queue/internal/store"
)

// statusPayload builds the public queue snapshot shared by the status
// endpoint and the websocket broadcast.
func (h *Handler) statusPayload(ctx context.Context, userTokenNumber int64) (fiber.Map, error) {
	serving, hasServing, err := h.Store.CurrentServing(ctx)
	if err != nil {
		return nil, err
	}

	waitingCount, err := h.Store.WaitingCount(ctx)
	if err != nil {
		return nil, err
	}

	served, err := h.Store.ServedTokens(ctx)
	if err != nil {
		return nil, err
	}
	avgWait := store.AverageWaitMinutes(served)

	var currentServing interface{}
	if hasServing {
		currentServing = serving.TokenNumber
	}

	var userToken interface{}
	if userTokenNumber > 0 {
		t, found, err := h.Store.TokenByNumber(ctx, userTokenNumber)
		if err != nil {
			return nil, err
		}
		if found {
			userToken = fiber.Map{
				"tokenNumber": t.TokenNumber,
				"status":      t.Status,
				"serviceType": t.ServiceType,
			}
		}
	}

	return fiber.Map{
		"currentServingToken": currentServing,
		"waitingCount":        waitingCount,
		"estimatedWaitTime":   store.EstimateWaitMinutes(waitingCount, avgWait),
		"userToken":           userToken,
	}, nil
}

// QueueStatus reports the serving token, waiting depth and wait estimate.
// Pass ?tokenNumber= to include the caller's own token state.
func (h *Handler) QueueStatus(c *fiber.Ctx) error {
	userTokenNumber := int64(c.QueryInt("tokenNumber"))

	payload, err := h.statusPayload(c.Context(), userTokenNumber)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(payload)
}
