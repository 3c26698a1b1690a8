// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and driver assignment for the queue and sweep queries.
type OrderDTO struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	CustomerID string `gorm:"type:varchar(64);index"`
	Item       int
	Quantity   int
	Weight     float64
	DriverID   *string `gorm:"type:varchar(64);index"`
	Status     int     `gorm:"index"`
	CreatedAt  time.Time
	PaymentID  *string `gorm:"type:varchar(64)"`
	IsPaid     bool
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		Item:       int(o.Item()),
		Quantity:   o.Quantity(),
		Weight:     o.Weight(),
		DriverID:   o.Driver(),
		Status:     int(o.Status()),
		CreatedAt:  o.CreatedAt(),
		PaymentID:  o.PaymentID(),
		IsPaid:     o.IsPaid(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder so the status and
// driver consistency rules are re-checked on the way out of the database.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		order.ItemType(dto.Item),
		dto.Quantity,
		dto.Weight,
		dto.DriverID,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.PaymentID,
		dto.IsPaid,
	)
}
