package jobs

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/metrics"
)

// defaultAdvanceInterval is the pause between advancement steps when the
// configured interval is missing or non-positive.
const defaultAdvanceInterval = 5 * time.Second

// LifecycleSupervisor owns one advancement goroutine ("unit") per in-flight
// order. Each unit waits one interval, advances its order one status through
// AdvanceOrderCommandHandler, and repeats until the stored status turns
// terminal. Units never share state with each other; the order store is the
// only thing they touch.
//
// Cancellation is cooperative: Cancel stops a unit immediately via its
// per-order context, while the handler's read-before-advance and guarded
// write keep a cancellation persisted by anyone else safe even when the
// signal is missed.
type LifecycleSupervisor struct {
	handler  commands.AdvanceOrderCommandHandler
	interval time.Duration
	metrics  *metrics.OrderMetrics
	logger   *slog.Logger

	baseCtx    context.Context
	baseCancel context.CancelFunc

	mu    sync.Mutex
	units map[kernel.OrderID]context.CancelFunc
	wg    sync.WaitGroup
}

// NewLifecycleSupervisor creates a supervisor that advances orders every
// interval. A non-positive interval falls back to the default of five
// seconds.
func NewLifecycleSupervisor(
	handler commands.AdvanceOrderCommandHandler,
	interval time.Duration,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *LifecycleSupervisor {
	if interval <= 0 {
		interval = defaultAdvanceInterval
	}

	baseCtx, baseCancel := context.WithCancel(context.Background())

	return &LifecycleSupervisor{
		handler:    handler,
		interval:   interval,
		metrics:    orderMetrics,
		logger:     logger.With("component", "lifecycle_supervisor"),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
		units:      make(map[kernel.OrderID]context.CancelFunc),
	}
}

// Track starts an advancement unit for the order. One unit per order id:
// tracking an order that already has an active unit is a no-op. Returns
// whether a new unit was started.
//
// Track never blocks on the unit; the first advancement happens one full
// interval after tracking begins.
func (s *LifecycleSupervisor) Track(id kernel.OrderID) bool {
	command, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		s.logger.Warn("refusing to track invalid order id", "error", err)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.baseCtx.Err() != nil {
		return false
	}
	if _, active := s.units[id]; active {
		return false
	}

	unitCtx, cancel := context.WithCancel(s.baseCtx)
	s.units[id] = cancel
	s.wg.Add(1)
	s.metrics.ActiveUnits.Inc()

	go s.run(unitCtx, id, command)

	s.logger.Info("tracking order", "order_id", id.String())
	return true
}

// Cancel signals the order's advancement unit to stop, if one is active, and
// reports whether a unit was signalled. The persisted order status is not
// touched here; callers persist the cancellation first and signal second.
func (s *LifecycleSupervisor) Cancel(id kernel.OrderID) bool {
	s.mu.Lock()
	cancel, active := s.units[id]
	s.mu.Unlock()

	if active {
		cancel()
	}

	return active
}

// ActiveCount reports how many advancement units are currently running.
func (s *LifecycleSupervisor) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.units)
}

// ActiveOrders lists the orders with an active advancement unit, sorted by
// order id for stable output.
func (s *LifecycleSupervisor) ActiveOrders() []kernel.OrderID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]kernel.OrderID, 0, len(s.units))
	for id := range s.units {
		ids = append(ids, id)
	}

	slices.SortFunc(ids, func(a, b kernel.OrderID) int {
		return strings.Compare(a.String(), b.String())
	})

	return ids
}

// Shutdown stops every unit and waits for them to wind down, giving up when
// ctx expires. After Shutdown the supervisor accepts no new orders.
func (s *LifecycleSupervisor) Shutdown(ctx context.Context) error {
	s.baseCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("lifecycle supervisor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is one order's advancement loop. It steps the order once per interval
// and exits when the order turns terminal, vanishes from the store, or the
// unit's context is cancelled. Transient errors are logged and retried on the
// next tick.
func (s *LifecycleSupervisor) run(ctx context.Context, id kernel.OrderID, command commands.AdvanceOrderCommand) {
	defer s.wg.Done()
	defer s.forget(id)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status, err := s.handler.Handle(ctx, command)
			switch {
			case errors.Is(err, errs.ErrObjectNotFound):
				s.logger.WarnContext(ctx, "tracked order vanished from the store",
					"order_id", id.String())
				return
			case err != nil:
				if ctx.Err() != nil {
					return
				}
				s.logger.WarnContext(ctx, "advancement step failed, retrying next tick",
					"order_id", id.String(), "error", err)
			case status.IsTerminal():
				s.logger.InfoContext(ctx, "order reached terminal status",
					"order_id", id.String(), "status", status.String())
				return
			}
		}
	}
}

// forget removes a finished unit from the active set. Called exactly once per
// unit, from the unit's own goroutine.
func (s *LifecycleSupervisor) forget(id kernel.OrderID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.units, id)
	s.metrics.ActiveUnits.Dec()
}
