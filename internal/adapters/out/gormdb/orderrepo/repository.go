package orderrepo

import (
	"context"
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.OrderID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines to the database.
// The lines are created through the association, so order and lines land in
// the same transaction.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines", linesInInsertionOrder).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus performs the guarded compare-and-swap the OrderRepository port
// describes: the UPDATE only matches while the stored status is a legal
// predecessor of next, so a racing writer that already moved the order on
// (or cancelled it) leaves this write a no-op with changed=false.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.OrderID, next order.Status) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	predecessors, err := next.Predecessors()
	if err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status IN ?", id.String(), statusStrings(predecessors)).
		Update("status", next.String())
	if result.Error != nil {
		return false, result.Error
	}

	if result.RowsAffected > 0 {
		return true, nil
	}

	// Nothing matched: tell a missing order apart from a rejected guard.
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.String()).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, errs.NewObjectNotFoundError("order", id.String())
	}

	return false, nil
}

// ListRecent retrieves up to limit orders, newest first. A non-empty
// customerName filters case-insensitively on the customer the order was
// placed under.
func (r *GormOrderRepository) ListRecent(ctx context.Context, limit int, customerName string) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Lines", linesInInsertionOrder).
		Order("created_at DESC, id DESC")

	if customerName != "" {
		query = query.Where("LOWER(customer_name) = LOWER(?)", customerName)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// toDomainSlice maps a result set back to aggregates.
func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// linesInInsertionOrder orders preloaded lines by their auto-incremented id,
// which matches the order they held in the aggregate when it was written.
func linesInInsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_lines.id")
}

// statusStrings renders statuses into their persisted column values.
func statusStrings(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
