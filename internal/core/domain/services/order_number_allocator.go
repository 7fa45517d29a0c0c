package services

import (
	"time"

	"jewelry/internal/core/domain/model/estimate"
)

// Allocation is the result of deriving the next order number. Degraded marks
// a timestamp-derived fallback that does not participate in monotonic
// ordering; callers must surface the flag so the number can be reconciled
// manually.
type Allocation struct {
	Number   estimate.OrderNumber
	Degraded bool
}

// OrderNumberAllocator derives the next order number from the greatest value
// issued so far. It is a pure next-value policy with no awareness of
// estimates: guarding against double allocation for the same estimate is the
// caller's responsibility, and the transactional read of the current maximum
// belongs to the repository.
type OrderNumberAllocator struct{}

// NewOrderNumberAllocator creates a new OrderNumberAllocator instance.
func NewOrderNumberAllocator() OrderNumberAllocator {
	return OrderNumberAllocator{}
}

// Allocate computes the next order number.
//
// With no number issued yet it returns ORD001. Otherwise it increments the
// numeric suffix of lastIssued, keeping the three-digit zero padding until
// the sequence outgrows it. When lastIssued cannot be parsed (corrupted
// numbering data), allocation degrades to a unique value derived from now
// rather than failing the request.
func (OrderNumberAllocator) Allocate(lastIssued string, hasLast bool, now time.Time) Allocation {
	if !hasLast {
		first, err := estimate.OrderNumberFromSequence(1)
		if err != nil {
			return Allocation{Number: estimate.FallbackOrderNumber(now), Degraded: true}
		}
		return Allocation{Number: first}
	}

	last, err := estimate.ParseOrderNumber(lastIssued)
	if err != nil {
		return Allocation{Number: estimate.FallbackOrderNumber(now), Degraded: true}
	}

	next, err := last.Next()
	if err != nil {
		return Allocation{Number: estimate.FallbackOrderNumber(now), Degraded: true}
	}

	return Allocation{Number: next}
}
