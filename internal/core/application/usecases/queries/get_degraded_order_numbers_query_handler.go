package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// maxCanonicalOrderNumberLength separates sequential numbers from the
// timestamp fallback: fallback values carry a nanosecond epoch suffix and are
// far longer than any sequence the store will realistically reach.
const maxCanonicalOrderNumberLength = 12

// GetDegradedOrderNumbersQueryHandler scans the estimates table for order
// numbers outside the sequential scheme.
type GetDegradedOrderNumbersQueryHandler struct {
	db *gorm.DB
}

// NewGetDegradedOrderNumbersQueryHandler creates a handler for the
// reconciliation scan. Requires a GORM database connection.
func NewGetDegradedOrderNumbersQueryHandler(db *gorm.DB) GetDegradedOrderNumbersQueryHandler {
	return GetDegradedOrderNumbersQueryHandler{db: db}
}

// Handle executes the scan.
func (h GetDegradedOrderNumbersQueryHandler) Handle(
	ctx context.Context,
	query GetDegradedOrderNumbersQuery,
) ([]DegradedOrderNumberView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]DegradedOrderNumberView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT estimate_id, estimate_number, order_number, order_date
		FROM estimates
		WHERE order_number IS NOT NULL
		  AND (order_number !~ '^ORD[0-9]+$' OR length(order_number) > ?)
		ORDER BY estimate_id
	`, maxCanonicalOrderNumberLength).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view DegradedOrderNumberView
		var orderDate sql.NullTime
		if err = rows.Scan(&view.EstimateID, &view.EstimateNumber, &view.OrderNumber, &orderDate); err != nil {
			return nil, err
		}
		if orderDate.Valid {
			view.OrderDate = &orderDate.Time
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
