package raterepo

import (
	"context"
	"errors"
	"time"

	"jewelry/internal/core/domain/model/rate"
	"jewelry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateRepository implements RateRepository using GORM.
type GormRateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormRateRepository creates a new GORM rate repository.
func NewGormRateRepository(db *gorm.DB, tracker aggregateTracker) *GormRateRepository {
	return &GormRateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rate snapshot to the database.
func (r *GormRateRepository) Add(ctx context.Context, aggregate *rate.Snapshot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing rate snapshot to the database.
func (r *GormRateRepository) Update(ctx context.Context, aggregate *rate.Snapshot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RateDTO{}).
		Where("rate_id = ?", dto.RateID).
		Select("*").
		Omit("rate_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// GetByDate retrieves the snapshot for the given day.
func (r *GormRateRepository) GetByDate(ctx context.Context, date time.Time) (*rate.Snapshot, error) {
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("rateDate")
	}

	var dto RateDTO
	if err := r.db.WithContext(ctx).First(&dto, "rate_date = ?", date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rateDate", date.Format(time.DateOnly))
		}
		return nil, err
	}

	return toDomain(dto)
}
