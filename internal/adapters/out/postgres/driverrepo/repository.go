package driverrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/driver"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.DriverRepository = &GormDriverRepository{}

// GormDriverRepository implements DriverRepository using GORM.
//
// Mutate runs inside a transaction holding a FOR UPDATE row lock, so two
// competing assignments can never mark the same driver busy twice.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
// The connection must be opened with gorm's error translation enabled so
// duplicate keys surface as gorm.ErrDuplicatedKey.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("driver", aggregate.ID())
		}
		return err
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id string) (*driver.Driver, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all drivers in registration order.
// Registration order keeps the first-available matching policy fair across
// both store implementations.
func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

// Mutate atomically applies fn to the stored driver.
// The row stays locked for the duration of the transaction; if fn fails
// nothing is written.
func (r *GormDriverRepository) Mutate(ctx context.Context, id string, fn func(*driver.Driver) error) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto DriverDTO
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("driver", id)
			}
			return err
		}

		aggregate, err := toDomain(dto)
		if err != nil {
			return err
		}

		if err = fn(aggregate); err != nil {
			return err
		}

		if err = aggregate.Validate(); err != nil {
			return err
		}

		updated := fromDomain(aggregate)
		// Select("*") forces zero values through so a reset counter would
		// persist; created_at is owned by the insert and never rewritten.
		return tx.Model(&DriverDTO{}).
			Where("id = ?", id).
			Select("*").
			Omit("created_at").
			Updates(&updated).Error
	})
}
