package queries

import (
	"context"

	"jewelry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetEstimateByNumberQueryHandler retrieves a single estimate row by its
// estimate number.
type GetEstimateByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetEstimateByNumberQueryHandler creates a handler for single estimate
// lookups. Requires a GORM database connection for query execution.
func NewGetEstimateByNumberQueryHandler(db *gorm.DB) GetEstimateByNumberQueryHandler {
	return GetEstimateByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when the
// estimate number matches no row.
func (h GetEstimateByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetEstimateByNumberQuery,
) (EstimateView, error) {
	if err := query.Validate(); err != nil {
		return EstimateView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+estimateColumns+`
		FROM estimates
		WHERE estimate_number = ?
	`, query.EstimateNumber()).Rows()
	if err != nil {
		return EstimateView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return EstimateView{}, err
		}
		return EstimateView{}, errs.NewObjectNotFoundError("estimateNumber", query.EstimateNumber())
	}

	view, err := scanEstimateView(rows)
	if err != nil {
		return EstimateView{}, err
	}

	return view, rows.Err()
}
