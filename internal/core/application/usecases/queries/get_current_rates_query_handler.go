package queries

import (
	"context"
	"time"

	"jewelry/internal/core/domain/model/rate"
	"jewelry/internal/core/ports"
	"jewelry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentRatesQueryHandler serves the current rates with a cache-aside
// read: the cache is consulted first, a miss falls through to the database
// and repopulates the cache. Cache failures are treated as misses so the
// endpoint never depends on the cache being up.
type GetCurrentRatesQueryHandler struct {
	db    *gorm.DB
	cache ports.RateCache
}

// NewGetCurrentRatesQueryHandler creates a handler for current rate reads.
func NewGetCurrentRatesQueryHandler(db *gorm.DB, cache ports.RateCache) GetCurrentRatesQueryHandler {
	return GetCurrentRatesQueryHandler{db: db, cache: cache}
}

// Handle executes the read. Returns an ObjectNotFoundError when no rates
// have ever been published.
func (h GetCurrentRatesQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentRatesQuery,
) (RateView, error) {
	if err := query.Validate(); err != nil {
		return RateView{}, err
	}

	if cached, err := h.cache.GetCurrent(ctx); err == nil && cached != nil {
		return rateViewFromSnapshot(cached), nil
	}

	snapshot, err := h.loadLatest(ctx)
	if err != nil {
		return RateView{}, err
	}

	_ = h.cache.SetCurrent(ctx, snapshot)

	return rateViewFromSnapshot(snapshot), nil
}

func (h GetCurrentRatesQueryHandler) loadLatest(ctx context.Context) (*rate.Snapshot, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT rate_id, rate_date, time_of_day, gold_16crt, gold_18crt, gold_22crt, gold_24crt, silver
		FROM rates
		ORDER BY rate_date DESC
		LIMIT 1
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("rates", "current")
	}

	var (
		id                                     uuid.UUID
		date                                   time.Time
		timeOfDay                              string
		gold16, gold18, gold22, gold24, silver float64
	)
	if err = rows.Scan(&id, &date, &timeOfDay, &gold16, &gold18, &gold22, &gold24, &silver); err != nil {
		return nil, err
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rate.RestoreSnapshot(id, date, timeOfDay, gold16, gold18, gold22, gold24, silver)
}

func rateViewFromSnapshot(s *rate.Snapshot) RateView {
	return RateView{
		Date:      s.Date(),
		TimeOfDay: s.TimeOfDay(),
		Gold16:    s.Gold16(),
		Gold18:    s.Gold18(),
		Gold22:    s.Gold22(),
		Gold24:    s.Gold24(),
		Silver:    s.Silver(),
	}
}
