package core

import (
	"errors"
	"testing"
)

func TestAmountAddSub(t *testing.T) {
	a := JPY(1000)
	b := JPY(500)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if sum.Value != 1500 || sum.Currency != "JPY" {
		t.Fatalf("unexpected sum: %+v", sum)
	}

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if diff.Value != 500 {
		t.Fatalf("unexpected diff: %+v", diff)
	}

	// Round trip: a + b - b == a
	back, err := sum.Sub(b)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if back != a {
		t.Fatalf("round trip mismatch: got %+v want %+v", back, a)
	}
}

func TestAmountCurrencyMismatch(t *testing.T) {
	jpy := JPY(1000)
	usd := NewAmount(1000, "USD")

	if _, err := jpy.Add(usd); err == nil {
		t.Fatal("expected error adding JPY to USD")
	}
	_, err := jpy.Sub(usd)
	var mismatch *CurrencyMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CurrencyMismatchError, got %v", err)
	}
	if mismatch.Left != "JPY" || mismatch.Right != "USD" {
		t.Fatalf("error should carry both codes, got %+v", mismatch)
	}
}

func TestAmountSignPredicates(t *testing.T) {
	if !JPY(0).IsZero() {
		t.Fatal("zero amount should be zero")
	}
	five := JPY(5)
	if !five.IsPositive() || five.IsNegative() || five.IsZero() {
		t.Fatalf("unexpected predicates for %+v", five)
	}
	neg := JPY(-5)
	if !neg.IsNegative() || neg.IsPositive() {
		t.Fatalf("unexpected predicates for %+v", neg)
	}
}

func TestAmountString(t *testing.T) {
	cases := []struct {
		amount Amount
		want   string
	}{
		{JPY(1000), "¥1000"},
		{JPY(-300), "¥-300"},
		{NewAmount(1234, "USD"), "$12.34"},
		{NewAmount(5, "USD"), "$0.05"},
		{NewAmount(-1234, "USD"), "$-12.34"},
		{NewAmount(1234, "EUR"), "€12,34"},
		{NewAmount(1000, "GBP"), "1000 GBP"},
	}
	for _, tc := range cases {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("String(%+v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
