package queries

import (
	"errors"

	"jewelry/internal/pkg/guard"
)

var ErrGetRateHistoryQueryIsNotConstructed = errors.New(
	"GetRateHistoryQuery must be created via NewGetRateHistoryQuery constructor",
)

// GetRateHistoryQuery retrieves past rate snapshots, excluding today's,
// newest first. The result is capped at 100 days.
type GetRateHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRateHistoryQuery creates a query for the rate history.
func NewGetRateHistoryQuery() GetRateHistoryQuery {
	return GetRateHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRateHistoryQueryIsNotConstructed if validation fails.
func (q GetRateHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetRateHistoryQueryIsNotConstructed)
}
