package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control over the repositories it hands out; client code manages
// the transaction lifecycle explicitly. The order-number allocation depends on
// this boundary: the allocation lock taken by the read of the current maximum
// lives for the duration of the transaction, so the read and the write of the
// next number serialize and commit or roll back as one unit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// EstimateRepository returns an EstimateRepository bound to the current
	// transaction.
	EstimateRepository() EstimateRepository

	// RateRepository returns a RateRepository bound to the current
	// transaction.
	RateRepository() RateRepository
}
