package queries

import (
	"errors"

	"jewelry/internal/pkg/errs"
	"jewelry/internal/pkg/guard"
)

var ErrGetEstimateByNumberQueryIsNotConstructed = errors.New(
	"GetEstimateByNumberQuery must be created via NewGetEstimateByNumberQuery constructor",
)

// GetEstimateByNumberQuery retrieves one estimate by its caller-assigned
// estimate number.
type GetEstimateByNumberQuery struct {
	estimateNumber string

	guard guard.ConstructorGuard
}

// NewGetEstimateByNumberQuery creates a query for a single estimate lookup.
// The estimate number is required.
func NewGetEstimateByNumberQuery(estimateNumber string) (GetEstimateByNumberQuery, error) {
	if estimateNumber == "" {
		return GetEstimateByNumberQuery{}, errs.NewValueIsRequiredError("estimateNumber")
	}
	return GetEstimateByNumberQuery{
		estimateNumber: estimateNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEstimateByNumberQueryIsNotConstructed if validation fails.
func (q GetEstimateByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetEstimateByNumberQueryIsNotConstructed)
}

// EstimateNumber returns the lookup key.
func (q GetEstimateByNumberQuery) EstimateNumber() string {
	return q.estimateNumber
}
