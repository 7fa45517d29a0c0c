package queries

import (
	"errors"

	"jewelry/internal/pkg/guard"
)

var ErrGetNextOrderNumberQueryIsNotConstructed = errors.New(
	"GetNextOrderNumberQuery must be created via NewGetNextOrderNumberQuery constructor",
)

// GetNextOrderNumberQuery previews the order number the next confirmation
// would receive. The preview takes no lock and reserves nothing: a concurrent
// confirmation may claim the value before the caller does.
type GetNextOrderNumberQuery struct {
	guard guard.ConstructorGuard
}

// NewGetNextOrderNumberQuery creates a query for the order number preview.
func NewGetNextOrderNumberQuery() GetNextOrderNumberQuery {
	return GetNextOrderNumberQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNextOrderNumberQueryIsNotConstructed if validation fails.
func (q GetNextOrderNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderNumberQueryIsNotConstructed)
}

// GetNextOrderNumberQueryResponse carries the previewed order number.
// Degraded is set when the stored maximum could not be parsed and the
// timestamp fallback was used instead.
type GetNextOrderNumberQueryResponse struct {
	NextOrderNumber string
	Degraded        bool
}
