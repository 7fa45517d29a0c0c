// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"jewelry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EstimateRepoFactory provides access to the estimate repository within a
	// transaction.
	EstimateRepoFactory interface {
		EstimateRepository() ports.EstimateRepository
	}

	// RateRepoFactory provides access to the rate repository within a
	// transaction.
	RateRepoFactory interface {
		RateRepository() ports.RateRepository
	}

	// EstimateUoW manages transactions for estimate-only operations. The
	// order-number allocation relies on this boundary: the lock-guarded read
	// of the current maximum and the write of the allocated number commit as
	// one unit.
	EstimateUoW interface {
		TxManager
		EstimateRepoFactory
	}

	// EstimateUoWFactory creates new estimate unit of work instances.
	EstimateUoWFactory interface {
		Create() EstimateUoW
	}

	// RateUoW manages transactions for rate-only operations.
	RateUoW interface {
		TxManager
		RateRepoFactory
	}

	// RateUoWFactory creates new rate unit of work instances.
	RateUoWFactory interface {
		Create() RateUoW
	}
)
