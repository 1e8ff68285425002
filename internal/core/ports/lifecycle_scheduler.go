package ports

import (
	"kirana/internal/core/domain/model/kernel"
)

// LifecycleScheduler drives placed orders through their fulfilment statuses
// in the background. The facade hands it every order that needs advancing and
// signals it when a customer cancels; everything else (intervals, retries,
// stopping on terminal status) is the scheduler's business.
//
// Both methods return immediately; no caller ever waits on an advancement.
type LifecycleScheduler interface {
	// Track starts background advancement for the order, one unit per order
	// id. Tracking an order that is already tracked is a no-op; the return
	// value reports whether a new unit was started.
	Track(id kernel.OrderID) bool

	// Cancel stops the order's advancement unit, if one is active. The return
	// value reports whether a unit was signalled. The persisted status is not
	// touched; callers persist the cancellation first and signal second.
	Cancel(id kernel.OrderID) bool
}
