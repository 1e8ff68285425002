// Package tools renders the ordering facade as a set of named, plain-text
// tools for a conversational caller. Every tool answers with one
// speech-friendly line; typed failures keep their error for transport-level
// mapping, and internal errors are logged and replaced with a generic line so
// nothing internal leaks outward.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"kirana/internal/core/application/facade"
	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"
)

const (
	// maxSpokenMatches caps how many catalog matches one find_item response
	// names out loud.
	maxSpokenMatches = 5

	// historyLimit is how many orders the order_history tool reads back.
	historyLimit = 5

	// genericFailure is the only line callers see for internal errors.
	genericFailure = "Sorry, something went wrong on our side. Please try again in a moment."

	// updatedAtFormat renders status timestamps for speech.
	updatedAtFormat = "15:04 on 2 January"
)

// Toolkit exposes the order facade as the nine ordering tools.
type Toolkit struct {
	facade facade.OrderFacade
	logger *slog.Logger
}

// NewToolkit creates the tool surface over the given facade.
func NewToolkit(orderFacade facade.OrderFacade, logger *slog.Logger) Toolkit {
	return Toolkit{
		facade: orderFacade,
		logger: logger.With("component", "tools"),
	}
}

// FindItem searches the catalog by name or tag and names up to five matches
// with their ids and prices.
func (t Toolkit) FindItem(query string) string {
	if strings.TrimSpace(query) == "" {
		return `Tell me what you are looking for, like "milk" or "atta".`
	}

	matches := t.facade.FindItems(query)
	if len(matches) == 0 {
		return fmt.Sprintf("No catalog items matched %q. Try a simpler word, like \"milk\" or \"bread\".", query)
	}

	spoken := matches
	if len(spoken) > maxSpokenMatches {
		spoken = spoken[:maxSpokenMatches]
	}

	parts := make([]string, 0, len(spoken))
	for _, item := range spoken {
		parts = append(parts, fmt.Sprintf("%s (%s) at %s", item.Name(), item.ID(), formatPrice(item.Price())))
	}

	switch {
	case len(matches) == 1:
		return fmt.Sprintf("Found %s.", parts[0])
	case len(matches) <= maxSpokenMatches:
		return fmt.Sprintf("Found %d items: %s.", len(matches), joinSpeech(parts))
	default:
		return fmt.Sprintf("Found %d items. The closest matches are %s, and %d more.",
			len(matches), strings.Join(parts, ", "), len(matches)-maxSpokenMatches)
	}
}

// AddToCart puts an item into the session's cart and reports the new total.
func (t Toolkit) AddToCart(sessionID, itemID string, quantity int, notes string) (string, error) {
	update, err := t.facade.AddToCart(sessionID, itemID, quantity, notes)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("I could not find item %q in the catalog. Use find_item to look it up first.", itemID), err
	case errors.Is(err, errs.ErrValueIsInvalid):
		return "Quantity must be at least 1.", err
	case err != nil:
		return t.internalFailure("add_to_cart", err), err
	}

	added := fmt.Sprintf("Added %d x %s to your cart.", quantity, update.Line.Name())
	if update.Line.Quantity() > quantity {
		added = fmt.Sprintf("Added %d x %s, you now have %d in your cart.",
			quantity, update.Line.Name(), update.Line.Quantity())
	}

	return fmt.Sprintf("%s Cart total is %s.", added, formatPrice(update.Total)), nil
}

// RemoveFromCart drops an item from the session's cart; removing an absent
// item reports a no-op rather than failing.
func (t Toolkit) RemoveFromCart(sessionID, itemID string) (string, error) {
	update, removed, err := t.facade.RemoveFromCart(sessionID, itemID)
	if err != nil {
		return t.internalFailure("remove_from_cart", err), err
	}

	if !removed {
		return fmt.Sprintf("There is no item %q in your cart.", itemID), nil
	}

	return fmt.Sprintf("Removed %s from your cart. Cart total is %s.",
		update.Line.Name(), formatPrice(update.Total)), nil
}

// UpdateCartQuantity replaces a line's quantity; anything below one removes
// the line.
func (t Toolkit) UpdateCartQuantity(sessionID, itemID string, quantity int) (string, error) {
	update, found, err := t.facade.SetCartQuantity(sessionID, itemID, quantity)
	if err != nil {
		return t.internalFailure("update_cart_quantity", err), err
	}

	if !found {
		return fmt.Sprintf("There is no item %q in your cart.", itemID), nil
	}

	if quantity < 1 {
		return fmt.Sprintf("Removed %s from your cart. Cart total is %s.",
			update.Line.Name(), formatPrice(update.Total)), nil
	}

	return fmt.Sprintf("Updated %s to %d. Cart total is %s.",
		update.Line.Name(), quantity, formatPrice(update.Total)), nil
}

// ShowCart lists the session's cart lines with the running total.
func (t Toolkit) ShowCart(sessionID string) (string, error) {
	view, err := t.facade.ShowCart(sessionID)
	if err != nil {
		return t.internalFailure("show_cart", err), err
	}

	if len(view.Lines) == 0 {
		return "Your cart is empty.", nil
	}

	parts := make([]string, 0, len(view.Lines))
	for _, line := range view.Lines {
		lineTotal, err := line.Total()
		if err != nil {
			return t.internalFailure("show_cart", err), err
		}

		if line.Notes() != "" {
			parts = append(parts, fmt.Sprintf("%d x %s (%s) for %s",
				line.Quantity(), line.Name(), line.Notes(), formatPrice(lineTotal)))
			continue
		}
		parts = append(parts, fmt.Sprintf("%d x %s for %s",
			line.Quantity(), line.Name(), formatPrice(lineTotal)))
	}

	return fmt.Sprintf("Your cart has %s. Cart total is %s.",
		joinSpeech(parts), formatPrice(view.Total)), nil
}

// PlaceOrder turns the session's cart into an order and reports its id and
// total.
func (t Toolkit) PlaceOrder(ctx context.Context, sessionID, customerName, address string) (string, error) {
	placed, err := t.facade.Place(ctx, sessionID, customerName, address)
	switch {
	case errors.Is(err, cart.ErrCartIsEmpty):
		return "Your cart is empty. Add something to it before placing an order.", err
	case errors.Is(err, errs.ErrValueIsRequired):
		return "I need a customer name and a delivery address to place the order.", err
	case err != nil:
		return t.internalFailure("place_order", err), err
	}

	return fmt.Sprintf("Order placed! Your order id is %s and the total is %s.",
		placed.OrderID, formatPrice(placed.Total)), nil
}

// CancelOrder cancels an in-flight order. Cancelling twice reports the no-op;
// a delivered order can no longer be cancelled.
func (t Toolkit) CancelOrder(ctx context.Context, orderID string) (string, error) {
	result, err := t.facade.Cancel(ctx, orderID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("I could not find an order with id %q.", orderID), err
	case errors.Is(err, order.ErrOrderAlreadyDelivered):
		return fmt.Sprintf("Order %s has already been delivered and can no longer be cancelled.", orderID), err
	case err != nil:
		return t.internalFailure("cancel_order", err), err
	}

	if result.AlreadyCancelled {
		return fmt.Sprintf("Order %s was already cancelled.", result.OrderID), nil
	}

	return fmt.Sprintf("Order %s has been cancelled.", result.OrderID), nil
}

// GetOrderStatus reports where an order is in its lifecycle.
func (t Toolkit) GetOrderStatus(ctx context.Context, orderID string) (string, error) {
	status, err := t.facade.Status(ctx, orderID)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return fmt.Sprintf("I could not find an order with id %q.", orderID), err
	case err != nil:
		return t.internalFailure("get_order_status", err), err
	}

	return fmt.Sprintf("Order %s is %s, last updated %s.",
		status.OrderID, spokenStatus(status.Status), status.UpdatedAt.Format(updatedAtFormat)), nil
}

// OrderHistory names the most recent orders, newest first, optionally for one
// customer.
func (t Toolkit) OrderHistory(ctx context.Context, customerName string) (string, error) {
	recent, err := t.facade.History(ctx, historyLimit, customerName)
	if err != nil {
		return t.internalFailure("order_history", err), err
	}

	if len(recent) == 0 {
		if customerName != "" {
			return fmt.Sprintf("No orders found for %s.", customerName), nil
		}
		return "No orders have been placed yet.", nil
	}

	parts := make([]string, 0, len(recent))
	for _, placed := range recent {
		parts = append(parts, fmt.Sprintf("%s for %s, %s, placed %s",
			placed.OrderID, formatPrice(placed.Total),
			spokenStatus(placed.Status), placed.CreatedAt.Format("2 January")))
	}

	if len(recent) == 1 {
		return fmt.Sprintf("Your most recent order is %s.", parts[0]), nil
	}

	return fmt.Sprintf("Your %d most recent orders: %s.",
		len(recent), strings.Join(parts, "; ")), nil
}

// internalFailure logs the real error and hands the caller the generic line.
func (t Toolkit) internalFailure(tool string, err error) string {
	t.logger.Error("tool call failed", "tool", tool, "error", err)
	return genericFailure
}

// formatPrice renders a price for speech, rupee sign first.
func formatPrice(price kernel.Price) string {
	return "₹" + price.String()
}

// spokenStatus turns a wire status into its spoken form, so
// "out_for_delivery" reads as "out for delivery".
func spokenStatus(status order.Status) string {
	return strings.ReplaceAll(status.String(), "_", " ")
}

// joinSpeech joins parts with commas and a closing "and", the way a sentence
// lists things.
func joinSpeech(parts []string) string {
	if len(parts) <= 1 {
		return strings.Join(parts, "")
	}

	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
