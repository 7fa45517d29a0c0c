package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRateHistoryQueryHandler retrieves past rate snapshots from the database.
type GetRateHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetRateHistoryQueryHandler creates a handler for rate history queries.
// Requires a GORM database connection for query execution.
func NewGetRateHistoryQueryHandler(db *gorm.DB) GetRateHistoryQueryHandler {
	return GetRateHistoryQueryHandler{db: db}
}

// Handle executes the query. Today's snapshot is excluded; it is served by
// the current-rates read instead.
func (h GetRateHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetRateHistoryQuery,
) ([]RateView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]RateView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT rate_date, time_of_day, gold_16crt, gold_18crt, gold_22crt, gold_24crt, silver
		FROM rates
		WHERE rate_date < CURRENT_DATE
		ORDER BY rate_date DESC
		LIMIT 100
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view RateView
		if err = rows.Scan(
			&view.Date,
			&view.TimeOfDay,
			&view.Gold16,
			&view.Gold18,
			&view.Gold22,
			&view.Gold24,
			&view.Silver,
		); err != nil {
			return nil, err
		}
		history = append(history, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
