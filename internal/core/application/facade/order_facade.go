// Package facade exposes the ordering engine as one synchronous surface.
// External adapters (the tool surface, the HTTP server) talk only to the
// OrderFacade; it resolves catalog items, owns the session carts, dispatches
// commands and queries, and signals the lifecycle scheduler when orders are
// placed or cancelled. No facade call ever blocks on background advancement.
package facade

import (
	"context"
	"log/slog"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/catalog"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/errs"
)

// defaultHistoryLimit is used when a caller asks for history without a limit.
const defaultHistoryLimit = 5

// CartView is a read-only snapshot of a session cart.
type CartView struct {
	Lines []cart.Line
	Total kernel.Price
}

// CartUpdate describes the outcome of a cart mutation: the affected line (as
// it stands after an add or quantity change, as it stood for a removal) and
// the cart total after the change.
type CartUpdate struct {
	Line  cart.Line
	Total kernel.Price
}

// PlaceResult reports a successful order placement.
type PlaceResult struct {
	OrderID kernel.OrderID
	Total   kernel.Price
}

// CancelResult reports the outcome of a cancellation request.
// AlreadyCancelled marks the no-op case: the order was cancelled before this
// call, which callers treat as success rather than an error.
type CancelResult struct {
	OrderID          kernel.OrderID
	AlreadyCancelled bool
}

// OrderFacade is the single entry point for everything a caller can do with
// the ordering engine: search the catalog, build a session cart, place and
// cancel orders and read order state back.
//
// Example:
//
//	orderFacade := facade.NewOrderFacade(
//	    store, registry, placeHandler, cancelHandler,
//	    statusHandler, historyHandler, supervisor, logger,
//	)
//
//	if _, err := orderFacade.AddToCart("session-1", "bread-001", 2, ""); err != nil {
//	    return err
//	}
//	placed, err := orderFacade.Place(ctx, "session-1", "Asha", "12 MG Road, Pune")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s placed, total %s\n", placed.OrderID, placed.Total)
type OrderFacade struct {
	catalog      *catalog.Store
	carts        *cart.Registry
	placeOrder   commands.PlaceOrderCommandHandler
	cancelOrder  commands.CancelOrderCommandHandler
	orderStatus  queries.GetOrderStatusQueryHandler
	orderHistory queries.OrderHistoryQueryHandler
	scheduler    ports.LifecycleScheduler
	logger       *slog.Logger
}

// NewOrderFacade wires the facade over the catalog store, the cart registry,
// the command and query handlers and the lifecycle scheduler.
func NewOrderFacade(
	store *catalog.Store,
	carts *cart.Registry,
	placeOrder commands.PlaceOrderCommandHandler,
	cancelOrder commands.CancelOrderCommandHandler,
	orderStatus queries.GetOrderStatusQueryHandler,
	orderHistory queries.OrderHistoryQueryHandler,
	scheduler ports.LifecycleScheduler,
	logger *slog.Logger,
) OrderFacade {
	return OrderFacade{
		catalog:      store,
		carts:        carts,
		placeOrder:   placeOrder,
		cancelOrder:  cancelOrder,
		orderStatus:  orderStatus,
		orderHistory: orderHistory,
		scheduler:    scheduler,
		logger:       logger,
	}
}

// FindItems searches the catalog by name substring or exact tag,
// case-insensitively. A blank query matches nothing.
func (f OrderFacade) FindItems(query string) []catalog.Item {
	return f.catalog.Search(query)
}

// AddToCart puts quantity units of a catalog item into the session's cart.
// Returns errs.ObjectNotFoundError when the item id names no catalog item.
// The returned update carries the line as it stands after the add, so a
// repeated add shows the accumulated quantity.
func (f OrderFacade) AddToCart(sessionID, itemID string, quantity int, notes string) (CartUpdate, error) {
	item, ok := f.catalog.FindByID(itemID)
	if !ok {
		return CartUpdate{}, errs.NewObjectNotFoundError("item", itemID)
	}

	sessionCart := f.carts.GetOrCreate(sessionID)
	if err := sessionCart.Add(item, quantity, notes); err != nil {
		return CartUpdate{}, err
	}

	update := CartUpdate{}
	for _, line := range sessionCart.Lines() {
		if line.ItemID() == itemID {
			update.Line = line
			break
		}
	}

	total, err := sessionCart.Total()
	if err != nil {
		return CartUpdate{}, err
	}
	update.Total = total

	return update, nil
}

// RemoveFromCart drops the line for the given item id from the session's
// cart. The boolean reports whether the item was present; removing an absent
// item is a no-op, not an error.
func (f OrderFacade) RemoveFromCart(sessionID, itemID string) (CartUpdate, bool, error) {
	sessionCart := f.carts.GetOrCreate(sessionID)

	line, removed := sessionCart.Remove(itemID)
	if !removed {
		return CartUpdate{}, false, nil
	}

	total, err := sessionCart.Total()
	if err != nil {
		return CartUpdate{}, false, err
	}

	return CartUpdate{Line: line, Total: total}, true, nil
}

// SetCartQuantity replaces the quantity of a line in the session's cart. A
// quantity below one removes the line. The boolean reports whether the item
// was present.
func (f OrderFacade) SetCartQuantity(sessionID, itemID string, quantity int) (CartUpdate, bool, error) {
	sessionCart := f.carts.GetOrCreate(sessionID)

	line, found := sessionCart.SetQuantity(itemID, quantity)
	if !found {
		return CartUpdate{}, false, nil
	}

	total, err := sessionCart.Total()
	if err != nil {
		return CartUpdate{}, false, err
	}

	return CartUpdate{Line: line, Total: total}, true, nil
}

// ShowCart returns the session's cart lines and total.
func (f OrderFacade) ShowCart(sessionID string) (CartView, error) {
	sessionCart := f.carts.GetOrCreate(sessionID)

	total, err := sessionCart.Total()
	if err != nil {
		return CartView{}, err
	}

	return CartView{Lines: sessionCart.Lines(), Total: total}, nil
}

// Place snapshots the session's cart into a new order, clears the cart and
// hands the order to the lifecycle scheduler. Fails with cart.ErrCartIsEmpty
// when the cart holds no lines and with an error unwrapping to
// errs.ErrValueIsRequired when the customer name or address is blank; the
// cart is left untouched on failure.
func (f OrderFacade) Place(ctx context.Context, sessionID, customerName, address string) (PlaceResult, error) {
	sessionCart := f.carts.GetOrCreate(sessionID)

	orderID := kernel.NewOrderID()
	command, err := commands.NewPlaceOrderCommand(orderID, sessionCart, customerName, address)
	if err != nil {
		return PlaceResult{}, err
	}

	total, err := f.placeOrder.Handle(ctx, command)
	if err != nil {
		return PlaceResult{}, err
	}

	sessionCart.Clear()

	// The order is durable either way: if tracking is refused (the scheduler
	// is shutting down) the resume sweep picks the order up on next start.
	if !f.scheduler.Track(orderID) {
		f.logger.WarnContext(ctx, "lifecycle tracking refused for new order",
			"order_id", orderID.String(),
		)
	}

	return PlaceResult{OrderID: orderID, Total: total}, nil
}

// Cancel cancels an in-flight order and signals its advancement unit to stand
// down. Cancelling an order that is already cancelled reports
// AlreadyCancelled instead of failing; a delivered order returns
// order.ErrOrderAlreadyDelivered and an unknown or malformed id returns
// errs.ObjectNotFoundError.
func (f OrderFacade) Cancel(ctx context.Context, rawOrderID string) (CancelResult, error) {
	orderID, err := parseOrderID(rawOrderID)
	if err != nil {
		return CancelResult{}, err
	}

	statusQuery, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return CancelResult{}, err
	}

	current, err := f.orderStatus.Handle(ctx, statusQuery)
	if err != nil {
		return CancelResult{}, err
	}

	if current.Status == order.Cancelled {
		return CancelResult{OrderID: orderID, AlreadyCancelled: true}, nil
	}

	command, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return CancelResult{}, err
	}

	if err := f.cancelOrder.Handle(ctx, command); err != nil {
		return CancelResult{}, err
	}

	f.scheduler.Cancel(orderID)

	return CancelResult{OrderID: orderID}, nil
}

// Status reports an order's current status and when it last changed.
// Unknown and malformed ids return errs.ObjectNotFoundError.
func (f OrderFacade) Status(ctx context.Context, rawOrderID string) (queries.GetOrderStatusQueryResponse, error) {
	orderID, err := parseOrderID(rawOrderID)
	if err != nil {
		return queries.GetOrderStatusQueryResponse{}, err
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return queries.GetOrderStatusQueryResponse{}, err
	}

	return f.orderStatus.Handle(ctx, query)
}

// History returns the most recent orders, newest first, optionally narrowed
// to one customer name. The limit is clamped to the query's allowed range; a
// limit below one falls back to the default of 5.
func (f OrderFacade) History(ctx context.Context, limit int, customerName string) ([]queries.OrderHistoryQueryResponse, error) {
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > queries.MaxHistoryLimit {
		limit = queries.MaxHistoryLimit
	}

	query, err := queries.NewOrderHistoryQuery(limit, customerName)
	if err != nil {
		return nil, err
	}

	return f.orderHistory.Handle(ctx, query)
}

// parseOrderID folds malformed ids into the not-found taxonomy: callers hand
// the facade free-form strings, and an id that does not even parse cannot
// name an existing order.
func parseOrderID(raw string) (kernel.OrderID, error) {
	orderID, err := kernel.OrderIDFromString(raw)
	if err != nil {
		return kernel.OrderID{}, errs.NewObjectNotFoundErrorWithCause("order", raw, err)
	}

	return orderID, nil
}
