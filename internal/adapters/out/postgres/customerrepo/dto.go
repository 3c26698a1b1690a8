// Package customerrepo provides persistence for the customer aggregate.
package customerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/customer"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:   c.ID(),
		Name: c.Name(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	return customer.RestoreCustomer(dto.ID, dto.Name)
}
