// Package domain provides definitions of all entities.
package domain

import (
	"strings"

	"github.com/go-petr/pet-school/pkg/errorspkg"
	"github.com/shopspring/decimal"
)

// Money is an immutable amount of a single currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney validates and returns a money value. The currency is stored
// uppercased.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errorspkg.Argumentf("money amount cannot be negative")
	}

	if strings.TrimSpace(currency) == "" {
		return Money{}, errorspkg.Argumentf("money currency cannot be empty")
	}

	return Money{
		Amount:   amount,
		Currency: strings.ToUpper(currency),
	}, nil
}

// ZeroMoney returns a zero amount of the given currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: strings.ToUpper(currency)}
}

// Equal reports value equality: same amount and same normalized currency.
// Amounts are compared as decimals, so 10 and 10.0 are equal.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.Amount.IsPositive()
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}
