// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"jewelry/internal/pkg/guard"
)

var ErrGetEstimatesQueryIsNotConstructed = errors.New(
	"GetEstimatesQuery must be created via NewGetEstimatesQuery constructor",
)

// GetEstimatesQuery retrieves all estimates in the system, newest first.
//
// Example:
//
//	query := NewGetEstimatesQuery()
//	handler := NewGetEstimatesQueryHandler(db)
//
//	estimates, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve estimates: %w", err)
//	}
//
//	for _, e := range estimates {
//	    fmt.Printf("%s: %s\n", e.EstimateNumber, e.Status)
//	}
type GetEstimatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEstimatesQuery creates a query to retrieve all estimates.
// This is a parameterless query that fetches the complete estimate list.
func NewGetEstimatesQuery() GetEstimatesQuery {
	return GetEstimatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEstimatesQueryIsNotConstructed if validation fails.
func (q GetEstimatesQuery) Validate() error {
	return q.guard.Validate(ErrGetEstimatesQueryIsNotConstructed)
}

// EstimateView is the read model for one estimate row. Status and Source are
// rendered as their wire strings; OrderNumber and OrderDate are nil until the
// estimate is confirmed as an order.
type EstimateView struct {
	EstimateID       int64
	EstimateNumber   string
	Date             time.Time
	Source           string
	Status           string
	OrderNumber      *string
	OrderDate        *time.Time
	CustomerAccepted bool

	ProductID     int64
	ProductName   string
	MetalType     string
	DesignName    string
	Purity        string
	Category      string
	SubCategory   string
	GrossWeight   float64
	StoneWeight   float64
	StonePrice    float64
	MakingCharges float64
	Rate          float64
	TaxPercent    float64
	TaxAmount     float64
	TotalAmount   float64
	NetAmount     float64
	Qty           int
}
