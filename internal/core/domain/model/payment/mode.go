package payment

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Mode is the payment instrument used to settle a delivered order.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined payment mode.
	ModeUnknown Mode = iota

	ModeCash
	ModeCard
	ModeUPI
	ModeWallet
)

// getModeStrings returns a map of Mode values to their string representations.
func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeUnknown: "Unknown",
		ModeCash:    "Cash",
		ModeCard:    "Card",
		ModeUPI:     "UPI",
		ModeWallet:  "Wallet",
	}
}

// getValidModeStrings returns a map of only valid Mode values.
func getValidModeStrings() map[Mode]string {
	//nolint:exhaustive // ModeUnknown is intentionally excluded as it's invalid
	return map[Mode]string{
		ModeCash:   "Cash",
		ModeCard:   "Card",
		ModeUPI:    "UPI",
		ModeWallet: "Wallet",
	}
}

// Validate checks if the Mode value is one of the supported instruments.
func (m Mode) Validate() error {
	if _, ok := getValidModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode is invalid", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the human-readable name of the payment mode.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ModeFromString parses a payment mode name into a Mode value.
// Matching is case-insensitive to be forgiving of API input.
func ModeFromString(value string) (Mode, error) {
	for mode, str := range getValidModeStrings() {
		if strings.EqualFold(str, value) {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"mode is invalid",
		fmt.Errorf("%q is not a valid payment mode", value),
	)
}
