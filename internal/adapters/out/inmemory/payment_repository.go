package inmemory

import (
	"context"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
)

var _ ports.PaymentRepository = &PaymentRepository{}

// PaymentRepository is the in-memory implementation of ports.PaymentRepository.
type PaymentRepository struct {
	payments *collection[payment.Payment]
}

// NewPaymentRepository creates an empty in-memory payment repository.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: newCollection[payment.Payment]("paymentId"),
	}
}

// Add persists a captured payment record.
func (r *PaymentRepository) Add(_ context.Context, aggregate *payment.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.payments.add(aggregate.ID(), aggregate)
}

// Get retrieves a payment record by ID.
func (r *PaymentRepository) Get(_ context.Context, id string) (*payment.Payment, error) {
	return r.payments.get(id)
}
