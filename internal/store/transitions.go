package store

import "backend-queue/internal/models"

// Tokens only move forward: waiting -> serving -> served.
var transitionMap = map[string]string{
	models.StatusWaiting: models.StatusServing,
	models.StatusServing: models.StatusServed,
}

// NextStatus returns the status a token moves to when advanced, or false
// for terminal or unknown statuses.
func NextStatus(from string) (string, bool) {
	next, ok := transitionMap[from]
	return next, ok
}

func ValidTransition(from, to string) bool {
	next, ok := transitionMap[from]
	return ok && next == to
}
