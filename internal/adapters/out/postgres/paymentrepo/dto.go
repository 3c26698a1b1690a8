// Package paymentrepo provides persistence for the payment aggregate.
package paymentrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/payment"
)

// PaymentDTO represents the database structure for persisting payments.
// Amounts are stored as numeric to keep monetary precision.
type PaymentDTO struct {
	ID         string `gorm:"type:varchar(64);primaryKey"`
	OrderID    string `gorm:"type:varchar(64);index"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Mode       int
	CapturedAt time.Time
}

// TableName overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         p.ID(),
		OrderID:    p.OrderID(),
		Amount:     p.Amount(),
		Mode:       int(p.Mode()),
		CapturedAt: p.CapturedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	return payment.RestorePayment(
		dto.ID,
		dto.OrderID,
		dto.Amount,
		payment.Mode(dto.Mode),
		dto.CapturedAt,
	)
}
