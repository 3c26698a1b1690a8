package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.OrderRepository = &GormOrderRepository{}

// GormOrderRepository implements OrderRepository using GORM.
//
// Mutate runs inside a transaction holding a FOR UPDATE row lock, giving the
// same atomic read-modify-write guarantee as the in-memory store.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
// The connection must be opened with gorm's error translation enabled so
// duplicate keys surface as gorm.ErrDuplicatedKey.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("order", aggregate.ID())
		}
		return err
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all orders in creation order.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllUncompleted retrieves all orders that have not reached a terminal
// status, in creation order.
func (r *GormOrderRepository) GetAllUncompleted(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{int(order.Delivered), int(order.Cancelled)}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Mutate atomically applies fn to the stored order.
// The row stays locked for the duration of the transaction; if fn fails
// nothing is written.
func (r *GormOrderRepository) Mutate(ctx context.Context, id string, fn func(*order.Order) error) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dto OrderDTO
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&dto, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order", id)
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
		// Select("*") forces zero and nil values through, so a cleared
		// driver assignment actually reaches the database.
		return tx.Model(&OrderDTO{}).Where("id = ?", id).Select("*").Updates(&updated).Error
	})
}

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
