package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"jewelry/internal/adapters/out/postgres/raterepo"
	"jewelry/internal/core/application/usecases/queries"
	"jewelry/internal/core/domain/model/rate"
	"jewelry/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// inMemoryRateCache is a test double for the rate cache port. The failing
// flag makes every operation error, to verify the read path survives a
// broken cache.
type inMemoryRateCache struct {
	snapshot *rate.Snapshot
	failing  bool
	setCalls int
}

func (c *inMemoryRateCache) GetCurrent(_ context.Context) (*rate.Snapshot, error) {
	if c.failing {
		return nil, errors.New("cache is down")
	}
	return c.snapshot, nil
}

func (c *inMemoryRateCache) SetCurrent(_ context.Context, snapshot *rate.Snapshot) error {
	c.setCalls++
	if c.failing {
		return errors.New("cache is down")
	}
	c.snapshot = snapshot
	return nil
}

func (c *inMemoryRateCache) InvalidateCurrent(_ context.Context) error {
	if c.failing {
		return errors.New("cache is down")
	}
	c.snapshot = nil
	return nil
}

// RateQueriesIntegrationTestSuite exercises the rate read models against a
// real PostgreSQL database.
type RateQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *raterepo.GormRateRepository
}

func (suite *RateQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&raterepo.RateDTO{}))

	suite.repo = raterepo.NewGormRateRepository(db, noopAggregateTracker{})
}

func (suite *RateQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE rates").Error)
}

func (suite *RateQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RateQueriesIntegrationTestSuite) TestGetCurrentRates_MissLoadsFromStoreAndFillsCache() {
	today := time.Now().Truncate(24 * time.Hour)
	suite.seedSnapshot(today, "10:30:00", 6280, 92.5)

	cache := &inMemoryRateCache{}
	handler := queries.NewGetCurrentRatesQueryHandler(suite.db, cache)

	view, err := handler.Handle(context.Background(), queries.NewGetCurrentRatesQuery())

	suite.Require().NoError(err)
	suite.Equal("10:30:00", view.TimeOfDay)
	suite.Equal(6280.0, view.Gold22)
	suite.Equal(92.5, view.Silver)
	suite.NotNil(cache.snapshot)
}

func (suite *RateQueriesIntegrationTestSuite) TestGetCurrentRates_HitSkipsStore() {
	snapshot, err := rate.NewSnapshot(
		time.Now(), "16:40:00", 0, 0, 6350, 0, 94,
	)
	suite.Require().NoError(err)
	cache := &inMemoryRateCache{snapshot: snapshot}

	handler := queries.NewGetCurrentRatesQueryHandler(suite.db, cache)
	view, err := handler.Handle(context.Background(), queries.NewGetCurrentRatesQuery())

	suite.Require().NoError(err)
	suite.Equal("16:40:00", view.TimeOfDay)
	suite.Equal(6350.0, view.Gold22)
	suite.Zero(cache.setCalls)
}

func (suite *RateQueriesIntegrationTestSuite) TestGetCurrentRates_BrokenCacheFallsThroughToStore() {
	today := time.Now().Truncate(24 * time.Hour)
	suite.seedSnapshot(today, "10:30:00", 6280, 92.5)

	handler := queries.NewGetCurrentRatesQueryHandler(suite.db, &inMemoryRateCache{failing: true})
	view, err := handler.Handle(context.Background(), queries.NewGetCurrentRatesQuery())

	suite.Require().NoError(err)
	suite.Equal(6280.0, view.Gold22)
}

func (suite *RateQueriesIntegrationTestSuite) TestGetCurrentRates_NoRatesEverPublished() {
	handler := queries.NewGetCurrentRatesQueryHandler(suite.db, &inMemoryRateCache{})

	_, err := handler.Handle(context.Background(), queries.NewGetCurrentRatesQuery())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RateQueriesIntegrationTestSuite) TestGetCurrentRates_NewestDayWins() {
	today := time.Now().Truncate(24 * time.Hour)
	suite.seedSnapshot(today.AddDate(0, 0, -1), "10:30:00", 6200, 91)
	suite.seedSnapshot(today, "10:30:00", 6280, 92.5)

	handler := queries.NewGetCurrentRatesQueryHandler(suite.db, &inMemoryRateCache{})
	view, err := handler.Handle(context.Background(), queries.NewGetCurrentRatesQuery())

	suite.Require().NoError(err)
	suite.Equal(6280.0, view.Gold22)
}

func (suite *RateQueriesIntegrationTestSuite) TestGetRateHistory_ExcludesToday() {
	today := time.Now().Truncate(24 * time.Hour)
	suite.seedSnapshot(today.AddDate(0, 0, -2), "10:30:00", 6180, 90)
	suite.seedSnapshot(today.AddDate(0, 0, -1), "10:30:00", 6200, 91)
	suite.seedSnapshot(today, "10:30:00", 6280, 92.5)

	handler := queries.NewGetRateHistoryQueryHandler(suite.db)
	views, err := handler.Handle(context.Background(), queries.NewGetRateHistoryQuery())

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(6200.0, views[0].Gold22)
	suite.Equal(6180.0, views[1].Gold22)
}

func (suite *RateQueriesIntegrationTestSuite) TestGetRateHistory_EmptyHistory() {
	today := time.Now().Truncate(24 * time.Hour)
	suite.seedSnapshot(today, "10:30:00", 6280, 92.5)

	handler := queries.NewGetRateHistoryQueryHandler(suite.db)
	views, err := handler.Handle(context.Background(), queries.NewGetRateHistoryQuery())

	suite.Require().NoError(err)
	suite.Empty(views)
}

// seedSnapshot persists a rate snapshot for the given day. Only the 22 carat
// gold and silver rates vary per test; the rest stay zero.
func (suite *RateQueriesIntegrationTestSuite) seedSnapshot(date time.Time, timeOfDay string, gold22, silver float64) {
	snapshot, err := rate.NewSnapshot(date, timeOfDay, 0, 0, gold22, 0, silver)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), snapshot))
}

func TestRateQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RateQueriesIntegrationTestSuite))
}
