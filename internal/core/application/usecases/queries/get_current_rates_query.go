package queries

import (
	"errors"
	"time"

	"jewelry/internal/pkg/guard"
)

var ErrGetCurrentRatesQueryIsNotConstructed = errors.New(
	"GetCurrentRatesQuery must be created via NewGetCurrentRatesQuery constructor",
)

// GetCurrentRatesQuery retrieves the most recent metal-rate snapshot.
type GetCurrentRatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCurrentRatesQuery creates a query for the current rates.
func NewGetCurrentRatesQuery() GetCurrentRatesQuery {
	return GetCurrentRatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentRatesQueryIsNotConstructed if validation fails.
func (q GetCurrentRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentRatesQueryIsNotConstructed)
}

// RateView is the read model for one day's metal rates.
type RateView struct {
	Date      time.Time
	TimeOfDay string
	Gold16    float64
	Gold18    float64
	Gold22    float64
	Gold24    float64
	Silver    float64
}
