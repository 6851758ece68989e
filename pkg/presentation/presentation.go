// Package presentation renders ledger integers for humans. Values are never
// parsed back; the integer fields stay authoritative.
package presentation

import (
	"github.com/shopspring/decimal"
)

const (
	bpToPercentExp = -2 // 1 bp = 0.01%
	microUSDExp    = -6
)

// Percent renders basis points as a percentage with two decimals, e.g. 1850 -> "18.50".
func Percent(bp int) string {
	return decimal.New(int64(bp), bpToPercentExp).StringFixed(2)
}

// USD renders a micro-USD amount with six decimals, e.g. 1500000 -> "1.500000".
func USD(micro int64) string {
	return decimal.New(micro, microUSDExp).StringFixed(6)
}

// USDCents renders a micro-USD amount rounded half-up to cents.
func USDCents(micro int64) string {
	return decimal.New(micro, microUSDExp).Round(2).StringFixed(2)
}
