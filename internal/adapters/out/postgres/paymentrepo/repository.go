package paymentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var _ ports.PaymentRepository = &GormPaymentRepository{}

// GormPaymentRepository implements PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Add saves a new payment record to the database.
func (r *GormPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("payment", aggregate.ID())
		}
		return err
	}

	return nil
}

// Get retrieves a payment record by ID.
func (r *GormPaymentRepository) Get(ctx context.Context, id string) (*payment.Payment, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
