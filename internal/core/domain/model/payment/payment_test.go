package payment_test

import (
	"testing"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	t.Run("should create payment with valid parameters", func(t *testing.T) {
		amount := decimal.NewFromFloat(150.00)

		p, err := payment.NewPayment("P1", "O1", amount, payment.ModeUPI)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "P1", p.ID())
		assert.Equal(t, "O1", p.OrderID())
		assert.True(t, amount.Equal(p.Amount()))
		assert.Equal(t, payment.ModeUPI, p.Mode())
		assert.False(t, p.CapturedAt().IsZero())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		_, err := payment.NewPayment("", "O1", decimal.NewFromInt(10), payment.ModeCash)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty order id", func(t *testing.T) {
		_, err := payment.NewPayment("P1", "", decimal.NewFromInt(10), payment.ModeCash)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive amount", func(t *testing.T) {
		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			_, err := payment.NewPayment("P1", "O1", amount, payment.ModeCash)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should fail with invalid mode", func(t *testing.T) {
		_, err := payment.NewPayment("P1", "O1", decimal.NewFromInt(10), payment.ModeUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPayment_Validate(t *testing.T) {
	t.Run("should reject zero value payment", func(t *testing.T) {
		var p payment.Payment

		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestMode(t *testing.T) {
	t.Run("should validate supported modes", func(t *testing.T) {
		for _, mode := range []payment.Mode{
			payment.ModeCash,
			payment.ModeCard,
			payment.ModeUPI,
			payment.ModeWallet,
		} {
			require.NoError(t, mode.Validate())
		}
	})

	t.Run("should parse mode names case-insensitively", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected payment.Mode
		}{
			{"Cash", payment.ModeCash},
			{"card", payment.ModeCard},
			{"upi", payment.ModeUPI},
			{"WALLET", payment.ModeWallet},
		}

		for _, tc := range testCases {
			mode, err := payment.ModeFromString(tc.value)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, mode)
		}
	})

	t.Run("should reject unknown mode names", func(t *testing.T) {
		mode, err := payment.ModeFromString("Cheque")

		require.Error(t, err)
		assert.Equal(t, payment.ModeUnknown, mode)
	})
}
