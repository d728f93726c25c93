// Package core holds the domain model: money, identifiers, transactions,
// budgets, user profiles and groups. Everything here is pure computation;
// persistence and transport live elsewhere.
package core

import (
	"fmt"
	"strconv"
)

// Amount is a monetary value in minor units of a currency (yen for JPY,
// cents for USD/EUR). Operations never mutate the receiver.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// CurrencyMismatchError is returned when two amounts with different currency
// codes meet in an arithmetic operation or a budget computation.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s != %s", e.Left, e.Right)
}

// NewAmount creates an amount in the given currency.
func NewAmount(value int64, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

// JPY is a shorthand for yen amounts, the default household currency.
func JPY(value int64) Amount {
	return Amount{Value: value, Currency: "JPY"}
}

// Add returns the sum of the two amounts. Both must share a currency.
func (a Amount) Add(other Amount) (Amount, error) {
	if a.Currency != other.Currency {
		return Amount{}, &CurrencyMismatchError{Left: a.Currency, Right: other.Currency}
	}
	return Amount{Value: a.Value + other.Value, Currency: a.Currency}, nil
}

// Sub returns the difference of the two amounts. Both must share a currency.
func (a Amount) Sub(other Amount) (Amount, error) {
	if a.Currency != other.Currency {
		return Amount{}, &CurrencyMismatchError{Left: a.Currency, Right: other.Currency}
	}
	return Amount{Value: a.Value - other.Value, Currency: a.Currency}, nil
}

func (a Amount) IsPositive() bool { return a.Value > 0 }

func (a Amount) IsNegative() bool { return a.Value < 0 }

func (a Amount) IsZero() bool { return a.Value == 0 }

// String renders the amount for display. JPY has no minor subdivision; USD
// and EUR divide minor units by 100. Unknown currencies fall back to
// "<value> <code>".
func (a Amount) String() string {
	switch a.Currency {
	case "JPY":
		return "¥" + strconv.FormatInt(a.Value, 10)
	case "USD":
		return "$" + formatMajor(a.Value, ".")
	case "EUR":
		return "€" + formatMajor(a.Value, ",")
	default:
		return strconv.FormatInt(a.Value, 10) + " " + a.Currency
	}
}

// formatMajor renders minor units as major units with two decimals, using
// the given decimal separator.
func formatMajor(minor int64, sep string) string {
	neg := minor < 0
	if neg {
		minor = -minor
	}
	s := strconv.FormatInt(minor/100, 10) + sep + fmt.Sprintf("%02d", minor%100)
	if neg {
		return "-" + s
	}
	return s
}
