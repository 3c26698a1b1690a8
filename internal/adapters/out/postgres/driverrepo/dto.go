// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"marketplace/internal/core/domain/model/driver"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The rating is stored as its raw accumulator (total score and count) so the
// running average never loses precision across restarts.
type DriverDTO struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	Name       string
	Status     int `gorm:"index"`
	TotalScore float64
	RatedCount int
	OrderCount int
	CreatedAt  time.Time
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:         d.ID(),
		Name:       d.Name(),
		Status:     int(d.Status()),
		TotalScore: d.TotalScore(),
		RatedCount: d.RatedCount(),
		OrderCount: d.OrderCount(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	return driver.RestoreDriver(
		dto.ID,
		dto.Name,
		driver.Status(dto.Status),
		dto.TotalScore,
		dto.RatedCount,
		dto.OrderCount,
	)
}
