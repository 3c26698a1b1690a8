package ports

import (
	"context"

	"marketplace/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Payments are immutable once captured, so the contract is append and lookup.
type PaymentRepository interface {
	// Add persists a captured payment record.
	// Returns an ObjectAlreadyExistsError if the payment ID is already taken.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment record by its unique identifier.
	// Returns an ObjectNotFoundError if no payment with the ID exists.
	Get(ctx context.Context, id string) (*payment.Payment, error)
}
