package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.CustomerRepository = &GormCustomerRepository{}

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("customer", aggregate.ID())
		}
		return err
	}

	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all customers in registration order.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}
