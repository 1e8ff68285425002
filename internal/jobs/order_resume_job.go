package jobs

import (
	"context"
	"log/slog"

	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderResumeJob puts advancement units back on persisted in-flight orders.
// Runs once synchronously at start, so orders interrupted by a restart resume
// promptly, then every fifteen seconds as a safety net for anything the
// supervisor lost along the way.
type OrderResumeJob struct {
	handler   queries.GetInFlightOrdersQueryHandler
	scheduler ports.LifecycleScheduler
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderResumeJob creates a job that re-tracks in-flight orders.
// Uses GetInFlightOrdersQueryHandler to find non-terminal orders and the
// lifecycle scheduler to track them; Track is idempotent, so re-sweeping
// already tracked orders is harmless.
func NewOrderResumeJob(
	handler queries.GetInFlightOrdersQueryHandler,
	scheduler ports.LifecycleScheduler,
	logger *slog.Logger,
) *OrderResumeJob {
	return &OrderResumeJob{
		handler:   handler,
		scheduler: scheduler,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_resume_job"),
	}
}

// Start sweeps once immediately, then schedules the periodic sweep.
// A failed initial sweep is logged and left to the next periodic run; it
// never blocks startup.
func (j *OrderResumeJob) Start() error {
	j.sweep(context.Background())

	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		j.sweep(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order resume job started (sweeping every 15 seconds)")
	return nil
}

// Stop stops the periodic sweep. Already running advancement units are the
// supervisor's to wind down.
func (j *OrderResumeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order resume job stopped")
}

// sweep queries all non-terminal orders and tracks each with the scheduler.
func (j *OrderResumeJob) sweep(ctx context.Context) {
	inFlight, err := j.handler.Handle(ctx, queries.NewGetInFlightOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Resume sweep failed", "error", err)
		return
	}

	resumed := 0
	for _, pending := range inFlight {
		if j.scheduler.Track(pending.OrderID) {
			resumed++
		}
	}

	if resumed > 0 {
		j.logger.InfoContext(ctx, "Resumed advancing in-flight orders", "count", resumed)
	}
}
