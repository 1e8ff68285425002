// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper
// indexing for efficient querying by status and recency. The status column
// stores the status's string form so rows stay readable in any SQL shell.
type OrderDTO struct {
	ID           string          `gorm:"type:varchar(16);primaryKey"`
	CustomerName string          `gorm:"index"`
	Address      string
	Total        decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status       string          `gorm:"type:varchar(32);index"`
	CreatedAt    time.Time       `gorm:"index"`
	UpdatedAt    time.Time
	Lines        []OrderLineDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one item position of a persisted order.
// Lines are written together with their order and never updated afterwards.
type OrderLineDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   string          `gorm:"type:varchar(16);index"`
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2)"`
	Quantity  int
	Notes     string
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Lines keep the aggregate's insertion order; the auto-incremented line id
// preserves it across reads.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]OrderLineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().String(),
			ItemID:    line.ItemID(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
			Notes:     line.Notes(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		Address:      aggregate.Address(),
		Total:        aggregate.Total().Amount(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines using RestoreOrder;
// the persisted total is restored as-is, never recomputed.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewPrice(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		unitPrice, priceErr := kernel.NewPrice(lineDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := order.NewLine(lineDTO.ItemID, lineDTO.Name, unitPrice, lineDTO.Quantity, lineDTO.Notes)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	return order.RestoreOrder(id, dto.CustomerName, dto.Address, lines, total, status, dto.CreatedAt)
}
