// Package redis provides the Redis-backed cache for the current rate
// snapshot. The cache is advisory: every failure degrades to a miss and the
// read falls through to the database.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jewelry/internal/core/domain/model/rate"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	currentRatesKey = "rates:current"
	currentRatesTTL = 15 * time.Minute
)

// cachedSnapshot is the JSON payload stored under the current-rates key.
type cachedSnapshot struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	TimeOfDay string    `json:"time_of_day"`
	Gold16    float64   `json:"gold_16crt"`
	Gold18    float64   `json:"gold_18crt"`
	Gold22    float64   `json:"gold_22crt"`
	Gold24    float64   `json:"gold_24crt"`
	Silver    float64   `json:"silver"`
}

// RateCache implements ports.RateCache over a Redis client.
type RateCache struct {
	client *redis.Client
}

// NewRateCache creates a Redis-backed rate cache.
func NewRateCache(client *redis.Client) *RateCache {
	return &RateCache{client: client}
}

// GetCurrent returns the cached current snapshot, or nil on a miss.
func (c *RateCache) GetCurrent(ctx context.Context) (*rate.Snapshot, error) {
	payload, err := c.client.Get(ctx, currentRatesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cached cachedSnapshot
	if err = json.Unmarshal(payload, &cached); err != nil {
		// A corrupt entry behaves like a miss; it gets overwritten on the
		// next SetCurrent.
		return nil, nil
	}

	snapshot, err := rate.RestoreSnapshot(
		cached.ID, cached.Date, cached.TimeOfDay,
		cached.Gold16, cached.Gold18, cached.Gold22, cached.Gold24, cached.Silver)
	if err != nil {
		return nil, nil
	}

	return snapshot, nil
}

// SetCurrent stores the current snapshot under the cache TTL.
func (c *RateCache) SetCurrent(ctx context.Context, snapshot *rate.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(cachedSnapshot{
		ID:        snapshot.ID(),
		Date:      snapshot.Date(),
		TimeOfDay: snapshot.TimeOfDay(),
		Gold16:    snapshot.Gold16(),
		Gold18:    snapshot.Gold18(),
		Gold22:    snapshot.Gold22(),
		Gold24:    snapshot.Gold24(),
		Silver:    snapshot.Silver(),
	})
	if err != nil {
		return err
	}

	return c.client.Set(ctx, currentRatesKey, payload, currentRatesTTL).Err()
}

// InvalidateCurrent drops the cached snapshot after a rate update.
func (c *RateCache) InvalidateCurrent(ctx context.Context) error {
	return c.client.Del(ctx, currentRatesKey).Err()
}
