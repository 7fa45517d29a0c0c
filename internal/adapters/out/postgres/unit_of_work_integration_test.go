package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	postgres_adapter "jewelry/internal/adapters/out/postgres"
	"jewelry/internal/adapters/out/postgres/estimaterepo"
	"jewelry/internal/adapters/out/postgres/raterepo"
	"jewelry/internal/core/domain/model/estimate"
	"jewelry/internal/core/domain/model/rate"
	"jewelry/internal/core/domain/services"
	"jewelry/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection for
// all tests and runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&estimaterepo.EstimateDTO{}, &raterepo.RateDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE estimates, rates RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances that each expose both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.EstimateRepository())
	suite.NotNil(uow1.RateRepository())
	suite.NotNil(uow2.EstimateRepository())
	suite.NotNil(uow2.RateRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_AllocationCommitsAtomically verifies the core numbering
// scenario: the read of the current maximum and the write of the allocated
// number land in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AllocationCommitsAtomically() {
	ctx := context.Background()
	uow := suite.factory.Create()

	e := createTestEstimate("EST100")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	repo := uow.EstimateRepository()

	last, hasLast, err := repo.LatestOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.False(hasLast)
	suite.Empty(last)

	_, err = e.ChangeStatus(estimate.StatusOrdered, false)
	suite.Require().NoError(err)

	number, err := estimate.OrderNumberFromSequence(1)
	suite.Require().NoError(err)
	suite.Require().NoError(e.AssignOrderNumber(number, time.Now()))

	err = repo.Add(ctx, e)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// A fresh unit of work observes the committed number.
	newUow := suite.factory.Create()
	last, hasLast, err = newUow.EstimateRepository().LatestOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.True(hasLast)
	suite.Equal("ORD001", last)
}

// TestUnitOfWork_SequentialAllocations verifies that repeated
// read-allocate-write rounds produce a strictly ascending number sequence.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SequentialAllocations() {
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		uow := suite.factory.Create()
		suite.Require().NoError(uow.Begin(ctx))

		repo := uow.EstimateRepository()

		last, hasLast, err := repo.LatestOrderNumber(ctx)
		suite.Require().NoError(err)

		var number estimate.OrderNumber
		if hasLast {
			parsed, parseErr := estimate.ParseOrderNumber(last)
			suite.Require().NoError(parseErr)
			number, err = parsed.Next()
		} else {
			number, err = estimate.OrderNumberFromSequence(1)
		}
		suite.Require().NoError(err)

		e := createTestEstimate(fmt.Sprintf("EST10%d", i))
		_, err = e.ChangeStatus(estimate.StatusOrdered, false)
		suite.Require().NoError(err)
		suite.Require().NoError(e.AssignOrderNumber(number, time.Now()))

		suite.Require().NoError(repo.Add(ctx, e))
		suite.Require().NoError(uow.Commit(ctx))
	}

	last, hasLast, err := suite.factory.Create().EstimateRepository().LatestOrderNumber(ctx)
	suite.Require().NoError(err)
	suite.True(hasLast)
	suite.Equal("ORD005", last)
}

// TestUnitOfWork_ConcurrentAllocations verifies that interleaved allocation
// transactions never compute the same number: every worker starts against the
// same empty table, and each read-allocate-write round must observe the
// previous round's committed maximum.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentAllocations() {
	ctx := context.Background()
	allocator := services.NewOrderNumberAllocator()

	const workers = 8

	var wg sync.WaitGroup
	workerErrs := make(chan error, workers)

	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			workerErrs <- suite.allocateInOwnTransaction(ctx, allocator, fmt.Sprintf("EST90%d", n))
		}(i)
	}

	wg.Wait()
	close(workerErrs)
	for err := range workerErrs {
		suite.Require().NoError(err)
	}

	var numbers []string
	err := suite.db.Table("estimates").
		Where("order_number IS NOT NULL").
		Pluck("order_number", &numbers).Error
	suite.Require().NoError(err)

	expected := make([]string, 0, workers)
	for seq := 1; seq <= workers; seq++ {
		number, seqErr := estimate.OrderNumberFromSequence(seq)
		suite.Require().NoError(seqErr)
		expected = append(expected, number.String())
	}
	suite.ElementsMatch(expected, numbers)
}

// allocateInOwnTransaction runs one full allocation round in a dedicated
// transaction. Failures are returned rather than asserted because the caller
// runs this from multiple goroutines.
func (suite *UnitOfWorkIntegrationTestSuite) allocateInOwnTransaction(
	ctx context.Context, allocator services.OrderNumberAllocator, estimateNumber string,
) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EstimateRepository()

	last, hasLast, err := repo.LatestOrderNumber(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	allocation := allocator.Allocate(last, hasLast, now)
	if allocation.Degraded {
		return fmt.Errorf("allocation degraded unexpectedly, last %q", last)
	}

	e := createTestEstimate(estimateNumber)
	if _, err = e.ChangeStatus(estimate.StatusOrdered, false); err != nil {
		return err
	}
	if err = e.AssignOrderNumber(allocation.Number, now); err != nil {
		return err
	}
	if err = repo.Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes made
// within the transaction across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	e := createTestEstimate("EST200")
	snapshot := createTestSnapshot()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.EstimateRepository().Add(ctx, e)
	suite.Require().NoError(err)

	err = uow.RateRepository().Add(ctx, snapshot)
	suite.Require().NoError(err)

	// Both exist within the transaction
	_, err = uow.EstimateRepository().GetByNumber(ctx, "EST200")
	suite.Require().NoError(err)

	_, err = uow.RateRepository().GetByDate(ctx, snapshot.Date())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Neither exists after rollback
	newUow := suite.factory.Create()

	_, err = newUow.EstimateRepository().GetByNumber(ctx, "EST200")
	suite.Require().Error(err, "Estimate should not exist after rollback")

	_, err = newUow.RateRepository().GetByDate(ctx, snapshot.Date())
	suite.Require().Error(err, "Rate snapshot should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained from
// different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	e1 := createTestEstimate("EST301")
	e2 := createTestEstimate("EST302")

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.EstimateRepository().Add(ctx, e1))
	suite.Require().NoError(uow2.EstimateRepository().Add(ctx, e2))

	// Each transaction sees only its own changes
	_, err := uow1.EstimateRepository().GetByNumber(ctx, "EST301")
	suite.Require().NoError(err, "UOW1 should see its own estimate")

	_, err = uow1.EstimateRepository().GetByNumber(ctx, "EST302")
	suite.Require().Error(err, "UOW1 should not see UOW2's estimate")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()

	_, err = newUow.EstimateRepository().GetByNumber(ctx, "EST301")
	suite.Require().NoError(err, "Committed estimate should persist")

	_, err = newUow.EstimateRepository().GetByNumber(ctx, "EST302")
	suite.Require().Error(err, "Rolled back estimate should not persist")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	e := createTestEstimate("EST400")

	err := uow.EstimateRepository().Add(ctx, e)
	suite.Require().NoError(err)

	retrieved, err := uow.EstimateRepository().GetByNumber(ctx, "EST400")
	suite.Require().NoError(err)
	suite.Equal(e.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.EstimateRepository().GetByNumber(ctx, "EST400")
	suite.Require().NoError(err)
	suite.Equal(e.ID(), retrieved.ID())
}

// createTestEstimate creates a valid staff-originated estimate.
func createTestEstimate(estimateNumber string) *estimate.Estimate {
	e, _ := estimate.NewEstimate(estimateNumber, time.Now(), estimate.SourceSalesman, estimate.StatusUnknown)
	return e
}

// createTestSnapshot creates a valid rate snapshot for today.
func createTestSnapshot() *rate.Snapshot {
	s, _ := rate.NewSnapshot(
		time.Now().Truncate(24*time.Hour), "10:00:00", 4100, 4600, 6200, 6800, 92)
	return s
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
