package estimaterepo

import (
	"context"
	"errors"

	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEstimateRepository implements EstimateRepository using GORM.
type GormEstimateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormEstimateRepository creates a new GORM estimate repository.
func NewGormEstimateRepository(db *gorm.DB, tracker aggregateTracker) *GormEstimateRepository {
	return &GormEstimateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new estimate and writes the store-assigned identity back onto
// the aggregate.
func (r *GormEstimateRepository) Add(ctx context.Context, aggregate *estimate.Estimate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.EstimateID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.EstimateNumber(), aggregate)
	return nil
}

// Update saves an existing estimate to the database. All columns are written,
// including ones holding zero values.
func (r *GormEstimateRepository) Update(ctx context.Context, aggregate *estimate.Estimate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&EstimateDTO{}).
		Where("estimate_id = ?", dto.EstimateID).
		Select("*").
		Omit("estimate_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.EstimateNumber(), aggregate)
	return nil
}

// GetByID retrieves an estimate by its store identity.
func (r *GormEstimateRepository) GetByID(ctx context.Context, id int64) (*estimate.Estimate, error) {
	var dto EstimateDTO
	if err := r.db.WithContext(ctx).First(&dto, "estimate_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estimateID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves an estimate by its caller-assigned number.
func (r *GormEstimateRepository) GetByNumber(ctx context.Context, estimateNumber string) (*estimate.Estimate, error) {
	if estimateNumber == "" {
		return nil, errs.NewValueIsRequiredError("estimateNumber")
	}

	var dto EstimateDTO
	if err := r.db.WithContext(ctx).First(&dto, "estimate_number = ?", estimateNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("estimateNumber", estimateNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// orderNumberAllocationLockID keys the advisory lock that serializes
// order-number allocations. A row lock on the current maximum cannot do this:
// an empty table has no row to lock, and a blocked reader re-evaluates the
// stale maximum row after the lock holder commits its new number elsewhere.
const orderNumberAllocationLockID int64 = 737201001

// maxSequentialOrderNumberLength bounds the values the sequence continues
// from. Numbers minted by the timestamp fallback are far longer; feeding one
// into the sequence would keep every later allocation in the nanosecond
// range instead of resuming the canonical numbering.
const maxSequentialOrderNumberLength = 12

// LatestOrderNumber reads the greatest sequential order number, ordering by
// suffix length first so ORD999 sorts before ORD1000. Fallback-minted numbers
// are skipped. Inside a transaction the advisory lock is held until commit or
// rollback, serializing concurrent allocations.
func (r *GormEstimateRepository) LatestOrderNumber(ctx context.Context) (string, bool, error) {
	if err := r.db.WithContext(ctx).Exec(
		"SELECT pg_advisory_xact_lock(?)", orderNumberAllocationLockID,
	).Error; err != nil {
		return "", false, err
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT order_number
		FROM estimates
		WHERE order_number IS NOT NULL
		  AND length(order_number) <= ?
		ORDER BY length(order_number) DESC, order_number DESC
		LIMIT 1
	`, maxSequentialOrderNumberLength).Rows()
	if err != nil {
		return "", false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return "", false, rows.Err()
	}

	var last string
	if err = rows.Scan(&last); err != nil {
		return "", false, err
	}

	return last, true, rows.Err()
}
