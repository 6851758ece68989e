package domain

import "time"

// PriceSourceManual marks a quote pinned by an operator.
const PriceSourceManual = "manual"

// PriceQuote is a market price observation in micro-USD per whole token.
type PriceQuote struct {
	Mint       string    `json:"mint"`
	PriceUSD   int64     `json:"price_usd"`
	ObservedAt time.Time `json:"observed_at"`
	Source     string    `json:"source"`
}

// IsStale reports whether the quote is older than maxAge at now. A
// non-positive maxAge disables the check.
func (q *PriceQuote) IsStale(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(q.ObservedAt) > maxAge
}
