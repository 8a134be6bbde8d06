package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/adapters/out/clock"
	"bakery/internal/adapters/out/hasher"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"
	"bakery/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	hasher     ports.PasswordHasher
	metrics    *metrics.SeedMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (CompositionRoot, error) {
	loc, err := time.LoadLocation(config.TimeZone)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("time zone %q: %w", config.TimeZone, err)
	}

	h, err := hasher.NewBcryptHasher(config.BcryptCost)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystemClock(loc),
		hasher:     h,
		metrics:    metrics.NewSeedMetrics(reg),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateSeedDemoDataCommandHandler() commands.SeedDemoDataCommandHandler {
	var f commands.SeedUoWFactory = FuncSeedUoWFactory(func() commands.SeedUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSeedDemoDataCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateChangeOrderStateCommandHandler() commands.ChangeOrderStateCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStateCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAddOrderCommentCommandHandler() commands.AddOrderCommentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderCommentCommandHandler(f, c.clock)
}

// CreateJobManager wires the background jobs enabled in the config.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	var enabled []jobs.Job

	if c.config.DemoDataEnabled {
		handler := c.CreateSeedDemoDataCommandHandler()
		job, err := jobs.NewDemoDataJob(
			&handler,
			c.clock,
			c.config.DemoDataSeed,
			c.config.DemoDataSchedule,
			c.metrics,
			c.logger,
		)
		if err != nil {
			return nil, err
		}
		enabled = append(enabled, job)
	}

	return jobs.NewJobManager(c.logger, enabled...), nil
}

type FuncSeedUoWFactory func() commands.SeedUoW

func (f FuncSeedUoWFactory) Create() commands.SeedUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
