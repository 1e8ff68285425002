package commands_test

import (
	"testing"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceOrderCommandHandler_Handle_AdvancesOneStep(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	require.NoError(t, err)

	stored := storedOrder(t, orderID, order.Confirmed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Shipped).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderStatusChanged", ctx, stored, order.Confirmed).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, publisher, newTestMetrics(), newTestLogger())
	status, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, status)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_LastStepDelivers(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	require.NoError(t, err)

	stored := storedOrder(t, orderID, order.OutForDelivery)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Delivered).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderStatusChanged", ctx, stored, order.OutForDelivery).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(factory, publisher, newTestMetrics(), newTestLogger())
	status, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, status)
	assert.True(t, status.IsTerminal())
}

func TestAdvanceOrderCommandHandler_Handle_TerminalOrder_NoWrite(t *testing.T) {
	for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
		t.Run(terminal.String(), func(t *testing.T) {
			ctx := t.Context()
			orderID := kernel.NewOrderID()
			cmd, err := commands.NewAdvanceOrderCommand(orderID)
			require.NoError(t, err)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			publisher := new(MockEventPublisher)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("OrderRepository").Return(repo).Once(),
				repo.On("Get", ctx, orderID).Return(storedOrder(t, orderID, terminal), nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewAdvanceOrderCommandHandler(factory, publisher, newTestMetrics(), newTestLogger())
			status, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, terminal, status)
			repo.AssertNotCalled(t, "UpdateStatus", ctx, orderID, mock.Anything)
			uow.AssertNotCalled(t, "Commit", ctx)
			publisher.AssertNotCalled(
				t, "PublishOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order"), terminal,
			)
		})
	}
}

func TestAdvanceOrderCommandHandler_Handle_LostRaceToCancel(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)

	// A cancellation landed between the read and the guarded write. The write
	// is rejected and the re-read reports the cancellation to the caller.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", ctx, orderID).
			Return(storedOrder(t, orderID, order.Received), nil).Once(),
		repo.On("UpdateStatus", ctx, orderID, order.Confirmed).Return(false, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		repo.On("Get", ctx, orderID).
			Return(storedOrder(t, orderID, order.Cancelled), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo).Twice()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewAdvanceOrderCommandHandler(factory, publisher, newTestMetrics(), newTestLogger())
	status, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, status)
	publisher.AssertNotCalled(
		t, "PublishOrderStatusChanged", ctx, mock.AnythingOfType("*order.Order"), order.Received,
	)
	repo.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewOrderID()
	cmd, err := commands.NewAdvanceOrderCommand(orderID)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceOrderCommandHandler(
		factory, new(MockEventPublisher), newTestMetrics(), newTestLogger(),
	)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAdvanceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AdvanceOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewAdvanceOrderCommandHandler(
		factory, new(MockEventPublisher), newTestMetrics(), newTestLogger(),
	)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
