package validation

import (
	"fmt"
	"strings"

	"github.com/mfarouk/teller/internal/account"
	"github.com/shopspring/decimal"
)

// MaxAmountDigits caps the integer digits of a single movement. Anything
// larger is treated as a typo rather than a real instruction.
const MaxAmountDigits = 15

// ParseAmount turns raw user input into a positive decimal amount. Parse
// failures map to account.ErrInvalidAmount so the caller sees the same typed
// failure reason whether the amount was malformed or non-positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("amount is empty: %w", account.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number: %w", trimmed, account.ErrInvalidAmount)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero, got %s: %w", amount, account.ErrInvalidAmount)
	}
	if len(amount.Truncate(0).String()) > MaxAmountDigits {
		return decimal.Zero, fmt.Errorf("amount %s is too large: %w", amount, account.ErrInvalidAmount)
	}
	return amount, nil
}

// AmountValidator adapts ParseAmount for prompt field validation.
func AmountValidator(raw string) error {
	_, err := ParseAmount(raw)
	return err
}

// StatusValidator checks a raw status value for prompt field validation.
func StatusValidator(raw string) error {
	_, err := account.ParseStatus(raw)
	return err
}
