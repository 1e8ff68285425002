package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/core/domain/services"
	"kirana/internal/core/ports"
	"kirana/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context, id kernel.OrderID, next order.Status,
) (bool, error) {
	args := m.Called(ctx, id, next)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListRecent(
	ctx context.Context, limit int, customerName string,
) ([]*order.Order, error) {
	args := m.Called(ctx, limit, customerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStatusChanged(
	ctx context.Context, aggregate *order.Order, from order.Status,
) error {
	args := m.Called(ctx, aggregate, from)
	return args.Error(0)
}

func newTestMetrics() *metrics.OrderMetrics {
	return metrics.NewOrderMetricsWith(prometheus.NewRegistry())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	shoppingCart := testCart(t)
	cmd, err := commands.NewPlaceOrderCommand(orderID, shoppingCart, "Asha", "12 MG Road, Pune")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On(
		"PublishOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order"), order.Unknown,
	).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(
		factory, services.NewCheckoutService(), publisher, newTestMetrics(), newTestLogger(),
	)
	total, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	// bread 45.00 x1 + eggs 40.00 x2
	assert.Equal(t, "125.00", total.String())

	persisted := repo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, orderID.IsEqual(persisted.ID()))
	assert.Equal(t, order.Received, persisted.Status())
	assert.Len(t, persisted.Lines(), 2)

	// The handler never mutates the cart; clearing is the caller's job.
	assert.False(t, shoppingCart.IsEmpty())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewOrderID(), cart.NewCart(), "Asha", "12 MG Road, Pune")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	publisher := new(MockEventPublisher)

	handler := commands.NewPlaceOrderCommandHandler(
		factory, services.NewCheckoutService(), publisher, newTestMetrics(), newTestLogger(),
	)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, cart.ErrCartIsEmpty)

	// No order state may exist after a rejected placement.
	factory.AssertNotCalled(t, "Create")
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(
		factory, services.NewCheckoutService(), new(MockEventPublisher), newTestMetrics(), newTestLogger(),
	)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewOrderID(), testCart(t), "Asha", "12 MG Road, Pune")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	handler := commands.NewPlaceOrderCommandHandler(
		factory, services.NewCheckoutService(), publisher, newTestMetrics(), newTestLogger(),
	)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "disk full")
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishOrderStatusChanged")
}

func TestPlaceOrderCommandHandler_Handle_PublishFailureDoesNotFailPlacement(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewOrderID(), testCart(t), "Asha", "12 MG Road, Pune")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On(
		"PublishOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order"), order.Unknown,
	).Return(errors.New("broker down")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(
		factory, services.NewCheckoutService(), publisher, newTestMetrics(), newTestLogger(),
	)
	total, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "125.00", total.String())
	publisher.AssertExpectations(t)
}
