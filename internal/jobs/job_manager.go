package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"kirana/internal/core/application/usecases/queries"
)

// JobManager coordinates the background machinery of the order lifecycle:
// the resume sweep and the advancement supervisor. Provides a unified
// interface to start everything at boot and stop it gracefully at shutdown.
type JobManager struct {
	orderResumeJob *OrderResumeJob
	supervisor     *LifecycleSupervisor
}

// NewJobManager creates a job manager wired to the given supervisor.
// Takes the in-flight query handler as a dependency to build the resume job.
func NewJobManager(
	inFlightHandler queries.GetInFlightOrdersQueryHandler,
	supervisor *LifecycleSupervisor,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderResumeJob: NewOrderResumeJob(inFlightHandler, supervisor, logger),
		supervisor:     supervisor,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderResumeJob.Start(); err != nil {
		return fmt.Errorf("failed to start order resume job: %w", err)
	}

	return nil
}

// StopAll stops the background machinery gracefully: the sweep first, so no
// new units get tracked, then the supervisor, waiting for active units up to
// ctx's deadline.
func (jm *JobManager) StopAll(ctx context.Context) error {
	jm.orderResumeJob.Stop()
	return jm.supervisor.Shutdown(ctx)
}
