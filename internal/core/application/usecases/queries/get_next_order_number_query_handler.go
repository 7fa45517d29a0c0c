package queries

import (
	"context"
	"time"

	"jewelry/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetNextOrderNumberQueryHandler computes the order number preview from the
// current stored maximum. It shares the derivation with the confirmation path
// but reads without a lock, so the result is advisory only.
type GetNextOrderNumberQueryHandler struct {
	db        *gorm.DB
	allocator services.OrderNumberAllocator
}

// NewGetNextOrderNumberQueryHandler creates a handler for order number
// previews. Requires a GORM database connection for query execution.
func NewGetNextOrderNumberQueryHandler(db *gorm.DB) GetNextOrderNumberQueryHandler {
	return GetNextOrderNumberQueryHandler{
		db:        db,
		allocator: services.NewOrderNumberAllocator(),
	}
}

// Handle executes the preview.
func (h GetNextOrderNumberQueryHandler) Handle(
	ctx context.Context,
	query GetNextOrderNumberQuery,
) (GetNextOrderNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNextOrderNumberQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT order_number
		FROM estimates
		WHERE order_number IS NOT NULL
		  AND length(order_number) <= ?
		ORDER BY length(order_number) DESC, order_number DESC
		LIMIT 1
	`, maxCanonicalOrderNumberLength).Rows()
	if err != nil {
		return GetNextOrderNumberQueryResponse{}, err
	}
	defer rows.Close()

	var last string
	hasLast := false
	if rows.Next() {
		if err = rows.Scan(&last); err != nil {
			return GetNextOrderNumberQueryResponse{}, err
		}
		hasLast = true
	}
	if err = rows.Err(); err != nil {
		return GetNextOrderNumberQueryResponse{}, err
	}

	allocation := h.allocator.Allocate(last, hasLast, time.Now())

	return GetNextOrderNumberQueryResponse{
		NextOrderNumber: allocation.Number.String(),
		Degraded:        allocation.Degraded,
	}, nil
}
