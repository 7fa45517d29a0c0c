package ports

import (
	"context"
	"time"

	"jewelry/internal/core/domain/model/rate"
)

// RateRepository defines the persistence contract for daily rate snapshots.
// The store keeps at most one snapshot per calendar day.
type RateRepository interface {
	// Add persists a new snapshot. The day must not already have one.
	Add(ctx context.Context, aggregate *rate.Snapshot) error

	// Update persists changes to an existing snapshot.
	Update(ctx context.Context, aggregate *rate.Snapshot) error

	// GetByDate retrieves the snapshot for the given day.
	GetByDate(ctx context.Context, date time.Time) (*rate.Snapshot, error)
}
