package queries_test

import (
	"context"
	"testing"
	"time"

	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHistoryQueryHandler_Handle_NewestFirst(t *testing.T) {
	db := newQueryTestDB(t)

	oldest := saveOrder(t, db, "Asha", order.Delivered, "45.00",
		time.Date(2026, 8, 18, 9, 0, 0, 0, time.UTC))
	middle := saveOrder(t, db, "Asha", order.Cancelled, "80.00",
		time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC))
	newest := saveOrder(t, db, "Asha", order.Received, "125.00",
		time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC))

	handler := queries.NewOrderHistoryQueryHandler(db)
	query, err := queries.NewOrderHistoryQuery(5, "")
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].OrderID.IsEqual(newest))
	assert.True(t, result[1].OrderID.IsEqual(middle))
	assert.True(t, result[2].OrderID.IsEqual(oldest))
}

func TestOrderHistoryQueryHandler_Handle_RespectsLimit(t *testing.T) {
	db := newQueryTestDB(t)

	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	for i := range 8 {
		saveOrder(t, db, "Asha", order.Received, "45.00", base.Add(time.Duration(i)*time.Minute))
	}

	handler := queries.NewOrderHistoryQueryHandler(db)
	query, err := queries.NewOrderHistoryQuery(3, "")
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestOrderHistoryQueryHandler_Handle_FiltersByCustomerCaseInsensitively(t *testing.T) {
	db := newQueryTestDB(t)
	placedAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	ashas := saveOrder(t, db, "Asha", order.Received, "45.00", placedAt)
	saveOrder(t, db, "Ravi", order.Received, "80.00", placedAt.Add(time.Minute))

	handler := queries.NewOrderHistoryQueryHandler(db)
	query, err := queries.NewOrderHistoryQuery(5, "ASHA")
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].OrderID.IsEqual(ashas))
	assert.Equal(t, "Asha", result[0].CustomerName)
}

func TestOrderHistoryQueryHandler_Handle_CarriesDisplayFields(t *testing.T) {
	db := newQueryTestDB(t)
	placedAt := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	id := saveOrder(t, db, "Meera", order.Shipped, "125.00", placedAt)

	handler := queries.NewOrderHistoryQueryHandler(db)
	query, err := queries.NewOrderHistoryQuery(1, "Meera")
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, result, 1)

	row := result[0]
	assert.True(t, row.OrderID.IsEqual(id))
	assert.Equal(t, "Meera", row.CustomerName)
	assert.Equal(t, order.Shipped, row.Status)
	assert.Equal(t, "125.00", row.Total.String())
	assert.True(t, row.CreatedAt.Equal(placedAt))
}

func TestOrderHistoryQueryHandler_Handle_EmptyDatabase_ReturnsEmptySlice(t *testing.T) {
	db := newQueryTestDB(t)

	handler := queries.NewOrderHistoryQueryHandler(db)
	query, err := queries.NewOrderHistoryQuery(5, "")
	require.NoError(t, err)

	result, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestOrderHistoryQueryHandler_Handle_InvalidQuery_ReturnsError(t *testing.T) {
	db := newQueryTestDB(t)
	handler := queries.NewOrderHistoryQueryHandler(db)

	result, err := handler.Handle(context.Background(), queries.OrderHistoryQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "must be created via NewOrderHistoryQuery constructor")
}
