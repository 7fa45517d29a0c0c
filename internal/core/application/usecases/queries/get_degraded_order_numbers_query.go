package queries

import (
	"errors"
	"time"

	"jewelry/internal/pkg/guard"
)

var ErrGetDegradedOrderNumbersQueryIsNotConstructed = errors.New(
	"GetDegradedOrderNumbersQuery must be created via NewGetDegradedOrderNumbersQuery constructor",
)

// GetDegradedOrderNumbersQuery finds order numbers that did not come from the
// sequential scheme: values minted by the timestamp fallback, or values that
// stopped matching the ORD numbering pattern altogether. These rows need
// manual reconciliation.
type GetDegradedOrderNumbersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDegradedOrderNumbersQuery creates a query for the reconciliation scan.
func NewGetDegradedOrderNumbersQuery() GetDegradedOrderNumbersQuery {
	return GetDegradedOrderNumbersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDegradedOrderNumbersQueryIsNotConstructed if validation fails.
func (q GetDegradedOrderNumbersQuery) Validate() error {
	return q.guard.Validate(ErrGetDegradedOrderNumbersQueryIsNotConstructed)
}

// DegradedOrderNumberView identifies one estimate whose order number needs
// reconciliation.
type DegradedOrderNumberView struct {
	EstimateID     int64
	EstimateNumber string
	OrderNumber    string
	OrderDate      *time.Time
}
