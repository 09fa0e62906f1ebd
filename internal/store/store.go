package store

import (
	"context"

	"backend-queue/internal/models"
)

// Store is the persistence surface for the queue ledger, the token sequence
// and the service-time defaults. The MySQL+Redis implementation lives in
// the mysql subpackage; tests use in-memory fakes.
type Store interface {
	// Ledger
	CreateToken(ctx context.Context, serviceType string) (models.Token, error)
	CurrentServing(ctx context.Context) (models.Token, bool, error)
	WaitingTokens(ctx context.Context) ([]models.Token, error)
	AllTokens(ctx context.Context) ([]models.Token, error)
	TokenByNumber(ctx context.Context, number int64) (models.Token, bool, error)
	WaitingCount(ctx context.Context) (int, error)
	AssignServiceTime(ctx context.Context, number int64, minutes float64) (models.Token, error)

	// Serving-state advancer. Returns the newly serving token number, or
	// false when no waiting tokens remain.
	Advance(ctx context.Context) (int64, bool, error)

	// Reset clears every token and rewinds the sequence counter to zero.
	Reset(ctx context.Context) error

	// Analytics inputs
	TotalTokens(ctx context.Context) (int, error)
	ServedTokens(ctx context.Context) ([]models.Token, error)
	RecentServed(ctx context.Context, limit int) ([]models.Token, error)

	// Service-time defaults
	SetServiceTimeDefault(ctx context.Context, serviceType string, minutes float64) error
	DeleteServiceTimeDefault(ctx context.Context, serviceType string) error
	ServiceTimeDefaults(ctx context.Context) ([]models.ServiceTime, error)

	// Auth
	AdminByUsername(ctx context.Context, username string) (models.Admin, bool, error)
}
