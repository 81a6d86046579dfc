// Package money provides the cents-based amount type used across the wallet.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents. Keeping cents avoids floating-point drift when
// summing budgets and transactions.
type Money int64

// FromFloat converts a currency-unit value to cents with half-up rounding.
func FromFloat(v float64) Money {
	return Money(math.Round(v * 100))
}

// Float64 returns the currency-unit value for display and JSON encoding.
func (m Money) Float64() float64 {
	return float64(m) / 100.0
}

func (m Money) Add(other Money) Money {
	return m + other
}

// Sub subtracts other from m, clamping at zero. Budget figures are never
// allowed to go negative.
func (m Money) Sub(other Money) Money {
	if other >= m {
		return 0
	}
	return m - other
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}

// ParseOrZero parses a user-typed amount. Invalid, empty, or negative input
// yields 0 rather than an error: budget fields always accept what was typed.
// Both dot and comma decimal separators are accepted.
func ParseOrZero(s string) Money {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return FromFloat(v)
}
