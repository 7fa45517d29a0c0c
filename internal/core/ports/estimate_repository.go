package ports

import (
	"context"

	"jewelry/internal/core/domain/model/estimate"
)

// EstimateRepository defines the persistence contract for estimate aggregates.
type EstimateRepository interface {
	// Add persists a new estimate and assigns its store identity to the
	// aggregate. The estimate number must not already exist.
	Add(ctx context.Context, aggregate *estimate.Estimate) error

	// Update persists changes to an existing estimate aggregate.
	Update(ctx context.Context, aggregate *estimate.Estimate) error

	// GetByID retrieves an estimate by its store identity.
	GetByID(ctx context.Context, id int64) (*estimate.Estimate, error)

	// GetByNumber retrieves an estimate by its caller-assigned number.
	GetByNumber(ctx context.Context, estimateNumber string) (*estimate.Estimate, error)

	// LatestOrderNumber returns the greatest sequential order number, ordered
	// by suffix length first and value second so ORD999 sorts before ORD1000.
	// Numbers minted by the timestamp fallback are ignored, so the sequence
	// resumes from the last canonical value after a degraded allocation. The
	// second return value is false when no sequential number exists.
	//
	// When called inside a unit-of-work transaction the read holds an
	// allocation-wide lock until the transaction ends, so two concurrent
	// allocations can never observe the same current maximum, not even on an
	// empty table. Outside a transaction the read is unguarded and advisory.
	LatestOrderNumber(ctx context.Context) (string, bool, error)
}
