package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/services/datagen"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// SeedDemoDataHandler is the part of commands.SeedDemoDataCommandHandler the job needs.
type SeedDemoDataHandler interface {
	Handle(ctx context.Context, cmd commands.SeedDemoDataCommand) (datagen.Stats, error)
}

// DemoDataJob seeds demo data relative to the clock's current day.
type DemoDataJob struct {
	handler  SeedDemoDataHandler
	clock    ports.Clock
	seed     uint64
	schedule string
	metrics  *metrics.SeedMetrics
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDemoDataJob creates a seeding job. An empty schedule runs the job only at
// start; otherwise schedule must be a standard cron expression.
func NewDemoDataJob(
	handler SeedDemoDataHandler,
	clock ports.Clock,
	seed uint64,
	schedule string,
	seedMetrics *metrics.SeedMetrics,
	logger *slog.Logger,
) (*DemoDataJob, error) {
	if schedule != "" {
		if _, err := cron.ParseStandard(schedule); err != nil {
			return nil, fmt.Errorf("demo data schedule %q: %w", schedule, err)
		}
	}

	return &DemoDataJob{
		handler:  handler,
		clock:    clock,
		seed:     seed,
		schedule: schedule,
		metrics:  seedMetrics,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "demo_data_job"),
	}, nil
}

// Start seeds once and then schedules further runs if a schedule is set.
// A failed first run is logged, not returned: the service stays usable with
// whatever the store holds.
func (j *DemoDataJob) Start() error {
	ctx := context.Background()
	_ = j.Run(ctx)

	if j.schedule == "" {
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "Demo data job scheduled", "schedule", j.schedule)
	return nil
}

// Run performs a single seeding attempt. An already seeded store is not an
// error.
func (j *DemoDataJob) Run(ctx context.Context) error {
	start := time.Now()
	today := j.clock.Today()

	cmd, err := commands.NewSeedDemoDataCommand(today, j.seed)
	if err != nil {
		j.observe(metrics.OutcomeFailed, start, datagen.Stats{})
		j.logger.ErrorContext(ctx, "Demo data job failed", "error", err)
		return err
	}

	stats, err := j.handler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrDemoDataAlreadyPresent):
		j.observe(metrics.OutcomeSkipped, start, stats)
		j.logger.InfoContext(ctx, "Demo data already present, skipping")
		return nil
	case err != nil:
		j.observe(metrics.OutcomeFailed, start, stats)
		j.logger.ErrorContext(ctx, "Demo data job failed", "error", err)
		return err
	}

	j.observe(metrics.OutcomeSeeded, start, stats)
	j.logger.InfoContext(ctx, "Demo data seeded",
		"today", today.String(),
		"users", stats.Users,
		"products", stats.Products,
		"pickup_locations", stats.PickupLocations,
		"orders", stats.TotalOrders(),
		"duration", time.Since(start),
	)
	return nil
}

// Stop stops scheduled runs and waits for a running one to finish.
func (j *DemoDataJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Demo data job stopped")
}

func (j *DemoDataJob) observe(outcome string, start time.Time, stats datagen.Stats) {
	if j.metrics == nil {
		return
	}
	j.metrics.ObserveRun(outcome, time.Since(start).Seconds(), stats.Orders)
}
