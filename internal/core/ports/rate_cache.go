package ports

import (
	"context"

	"jewelry/internal/core/domain/model/rate"
)

// RateCache caches the current rate snapshot for the read-heavy current-rates
// endpoint. The cache is advisory: a miss or a cache failure must never fail
// the request, only fall through to the store.
type RateCache interface {
	// GetCurrent returns the cached current snapshot, or nil on a miss.
	GetCurrent(ctx context.Context) (*rate.Snapshot, error)

	// SetCurrent stores the current snapshot with the cache's TTL.
	SetCurrent(ctx context.Context, snapshot *rate.Snapshot) error

	// InvalidateCurrent drops the cached snapshot after a rate update.
	InvalidateCurrent(ctx context.Context) error
}
