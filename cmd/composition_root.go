package cmd

import (
	"jewelry/internal/adapters/out/postgres"
	redisout "jewelry/internal/adapters/out/redis"
	"jewelry/internal/core/application/usecases/commands"
	"jewelry/internal/core/application/usecases/queries"
	"jewelry/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	rateCache  ports.RateCache
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		rateCache:  redisout.NewRateCache(redisClient),
	}
}

func (c *CompositionRoot) CreateSubmitEstimateCommandHandler() commands.SubmitEstimateCommandHandler {
	var f commands.EstimateUoWFactory = FuncEstimateUoWFactory(func() commands.EstimateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitEstimateCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeEstimateStatusCommandHandler() commands.ChangeEstimateStatusCommandHandler {
	var f commands.EstimateUoWFactory = FuncEstimateUoWFactory(func() commands.EstimateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeEstimateStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRatesCommandHandler() commands.UpdateRatesCommandHandler {
	var f commands.RateUoWFactory = FuncRateUoWFactory(func() commands.RateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRatesCommandHandler(f, c.rateCache)
}

func (c *CompositionRoot) CreateGetEstimatesQueryHandler() queries.GetEstimatesQueryHandler {
	return queries.NewGetEstimatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEstimateByNumberQueryHandler() queries.GetEstimateByNumberQueryHandler {
	return queries.NewGetEstimateByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNextOrderNumberQueryHandler() queries.GetNextOrderNumberQueryHandler {
	return queries.NewGetNextOrderNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCurrentRatesQueryHandler() queries.GetCurrentRatesQueryHandler {
	return queries.NewGetCurrentRatesQueryHandler(c.gormDB, c.rateCache)
}

func (c *CompositionRoot) CreateGetRateHistoryQueryHandler() queries.GetRateHistoryQueryHandler {
	return queries.NewGetRateHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDegradedOrderNumbersQueryHandler() queries.GetDegradedOrderNumbersQueryHandler {
	return queries.NewGetDegradedOrderNumbersQueryHandler(c.gormDB)
}

type FuncEstimateUoWFactory func() commands.EstimateUoW

func (f FuncEstimateUoWFactory) Create() commands.EstimateUoW {
	return f()
}

type FuncRateUoWFactory func() commands.RateUoW

func (f FuncRateUoWFactory) Create() commands.RateUoW {
	return f()
}
