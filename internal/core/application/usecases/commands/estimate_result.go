package commands

import (
	"context"
	"time"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/core/domain/services"
	"jewelry/internal/core/ports"
)

// EstimateResult is the write-model view of an estimate returned by the
// submission and status-change handlers. DegradedAllocation marks an order
// number produced by the timestamp-derived fallback; such numbers do not
// guarantee monotonic ordering and must be flagged for manual
// reconciliation.
type EstimateResult struct {
	EstimateID         int64
	EstimateNumber     string
	Status             estimate.Status
	OrderNumber        *string
	OrderDate          *time.Time
	DegradedAllocation bool
}

func newEstimateResult(e *estimate.Estimate, degraded bool) EstimateResult {
	result := EstimateResult{
		EstimateID:         e.ID(),
		EstimateNumber:     e.EstimateNumber(),
		Status:             e.Status(),
		OrderDate:          e.OrderDate(),
		DegradedAllocation: degraded,
	}
	if n := e.OrderNumber(); n != nil {
		value := n.String()
		result.OrderNumber = &value
	}
	return result
}

// assignNextOrderNumber reads the greatest issued order number under the
// current transaction's lock, derives the next value and assigns it to the
// estimate together with today's date. Returns whether the allocation
// degraded to the timestamp fallback.
//
// Callers must have checked that the estimate carries no number yet; the
// allocator itself is a pure next-value generator with no awareness of
// estimates.
func assignNextOrderNumber(
	ctx context.Context,
	repo ports.EstimateRepository,
	allocator services.OrderNumberAllocator,
	e *estimate.Estimate,
) (bool, error) {
	last, hasLast, err := repo.LatestOrderNumber(ctx)
	if err != nil {
		return false, err
	}

	now := time.Now()
	allocation := allocator.Allocate(last, hasLast, now)
	if err := e.AssignOrderNumber(allocation.Number, now); err != nil {
		return false, err
	}

	return allocation.Degraded, nil
}
