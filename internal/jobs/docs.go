// Package jobs provides the background machinery that moves orders through
// their lifecycle.
//
// Two pieces work together:
//
// 1. LifecycleSupervisor - owns one advancement goroutine per in-flight
// order; each unit advances its order one status per interval until the
// order is delivered or cancelled
// 2. OrderResumeJob - a cron job (github.com/robfig/cron/v3) that re-tracks
// persisted non-terminal orders, once at startup and every fifteen seconds
// after that
//
// # Usage
//
// Both are managed through JobManager which provides a unified interface:
//
//	supervisor := jobs.NewLifecycleSupervisor(advanceHandler, interval, orderMetrics, logger)
//	jobManager := jobs.NewJobManager(inFlightHandler, supervisor, logger)
//
//	// Start the resume sweep
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop everything when shutting down, waiting for units to wind down
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	_ = jobManager.StopAll(ctx)
//
// # Scheduling
//
// Advancement pacing comes from the supervisor's interval (configured per
// deployment, five seconds by default). The resume sweep uses the cron
// expression "*/15 * * * * *": frequent enough that a lost unit barely
// matters, cheap enough to run forever.
//
// # Error Handling
//
//   - Advancement units log transient store errors and retry on the next tick
//   - A unit stops silently when its order is cancelled, delivered, or gone
//   - A failed sweep is logged and retried at the next scheduled run
package jobs
