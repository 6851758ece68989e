package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenClass selects the pricing policy of a boost token.
type TokenClass string

const (
	// TokenClassDiscountedMarket is priced at the oracle market price minus a discount.
	TokenClassDiscountedMarket TokenClass = "discounted_market"
	// TokenClassFixedInternal is priced at a constant, independent of the market.
	TokenClassFixedInternal TokenClass = "fixed_internal"
)

// BoostToken is a token accepted for boosting and its pricing policy.
type BoostToken struct {
	Mint          string     `json:"mint"`
	Symbol        string     `json:"symbol"`
	Class         TokenClass `json:"class"`
	DiscountBP    int        `json:"discount_bp,omitempty"`
	FixedPriceUSD int64      `json:"fixed_price_usd,omitempty"`
}

// EffectivePrice applies the token's pricing policy to a market price.
// marketPrice is ignored for fixed-internal tokens.
func (t BoostToken) EffectivePrice(marketPrice int64) (int64, error) {
	if t.Class == TokenClassFixedInternal {
		return t.FixedPriceUSD, nil
	}
	return ApplyBP(marketPrice, BPDenominator-t.DiscountBP)
}

// NeedsMarketPrice reports whether pricing requires an oracle lookup.
func (t BoostToken) NeedsMarketPrice() bool {
	return t.Class != TokenClassFixedInternal
}

// Boost is an append-only record of a boost-token deposit. ValueUSD and
// APYBoostBP are derived at deposit time and never mutated afterwards.
type Boost struct {
	ID         uuid.UUID `json:"id"`
	WexelID    int64     `json:"wexel_id"`
	TokenMint  string    `json:"token_mint"`
	Amount     int64     `json:"amount"`
	PriceUSD   int64     `json:"price_usd"`
	ValueUSD   int64     `json:"value_usd"`
	APYBoostBP int       `json:"apy_boost_bp"`
	TxHash     *string   `json:"tx_hash,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// BoostQuote is the outcome of pricing a prospective boost deposit.
type BoostQuote struct {
	WexelID         int64  `json:"wexel_id"`
	TokenMint       string `json:"token_mint"`
	Amount          int64  `json:"amount"`
	PriceUSD        int64  `json:"price_usd"`
	ValueUSD        int64  `json:"value_usd"`
	TargetValueUSD  int64  `json:"target_value_usd"`
	ExistingValue   int64  `json:"existing_value_usd"`
	CurrentBoostBP  int    `json:"current_boost_bp"`
	NewBoostBP      int    `json:"new_boost_bp"`
	IncrementalBP   int    `json:"apy_boost_bp"`
	MaxBoostBP      int    `json:"max_boost_bp"`
	RemainingTarget int64  `json:"remaining_target_usd"`
}

// BoostValue returns floor(amount × price / 10^6); amount is in token
// micro-units and price is micro-USD per whole token.
func BoostValue(amount, price int64) (int64, error) {
	return MulDiv(amount, price, MicroUnit)
}

// BoostTarget returns floor(principal × boost_target_bp / 10000).
func BoostTarget(principal int64, targetBP int) (int64, error) {
	return ApplyBP(principal, targetBP)
}

// ScaleBoostBP maps cumulative boost value onto [0, maxBP] linearly:
// floor(maxBP × min(cumulative, target) / target). Reaching the target yields
// exactly maxBP. A zero target saturates on any positive deposit.
func ScaleBoostBP(cumulative, target int64, maxBP int) (int, error) {
	if cumulative <= 0 {
		return 0, nil
	}
	if target <= 0 {
		return maxBP, nil
	}
	if cumulative > target {
		cumulative = target
	}
	bp, err := MulDiv(int64(maxBP), cumulative, target)
	if err != nil {
		return 0, err
	}
	return int(bp), nil
}

// ComputeBoostQuote derives the boost outcome for a deposit of value on top
// of existing prior value. The resulting total never decreases and never
// exceeds maxBP. ErrOverflow propagates from every arithmetic step.
func ComputeBoostQuote(w *Wexel, pool *Pool, existing, value int64) (BoostQuote, error) {
	target, err := BoostTarget(w.Principal, pool.BoostTargetBP)
	if err != nil {
		return BoostQuote{}, err
	}
	cumulative, err := Add(existing, value)
	if err != nil {
		return BoostQuote{}, err
	}
	scaled, err := ScaleBoostBP(cumulative, target, pool.BoostMaxBP)
	if err != nil {
		return BoostQuote{}, err
	}
	if scaled > pool.BoostMaxBP {
		scaled = pool.BoostMaxBP
	}
	newBP := w.APYBoostBP
	if scaled > newBP {
		newBP = scaled
	}
	remaining := target - existing
	if remaining < 0 {
		remaining = 0
	}
	return BoostQuote{
		WexelID:         w.ID,
		ValueUSD:        value,
		TargetValueUSD:  target,
		ExistingValue:   existing,
		CurrentBoostBP:  w.APYBoostBP,
		NewBoostBP:      newBP,
		IncrementalBP:   newBP - w.APYBoostBP,
		MaxBoostBP:      pool.BoostMaxBP,
		RemainingTarget: remaining,
	}, nil
}

// BoostStats summarizes the boost history of a wexel.
type BoostStats struct {
	WexelID        int64 `json:"wexel_id"`
	Deposits       int   `json:"deposits"`
	TotalValueUSD  int64 `json:"total_value_usd"`
	TargetValueUSD int64 `json:"target_value_usd"`
	RemainingUSD   int64 `json:"remaining_usd"`
	ProgressBP     int   `json:"progress_bp"`
	CurrentBoostBP int   `json:"current_boost_bp"`
	MaxBoostBP     int   `json:"max_boost_bp"`
}

// ComputeBoostStats aggregates boosts against the wexel's target. ProgressBP
// is the filled share of the target, capped at 10000.
func ComputeBoostStats(w *Wexel, pool *Pool, boosts []Boost) (BoostStats, error) {
	target, err := BoostTarget(w.Principal, pool.BoostTargetBP)
	if err != nil {
		return BoostStats{}, err
	}
	var total int64
	for i := range boosts {
		if total, err = Add(total, boosts[i].ValueUSD); err != nil {
			return BoostStats{}, err
		}
	}
	stats := BoostStats{
		WexelID:        w.ID,
		Deposits:       len(boosts),
		TotalValueUSD:  total,
		TargetValueUSD: target,
		CurrentBoostBP: w.APYBoostBP,
		MaxBoostBP:     pool.BoostMaxBP,
	}
	if total < target {
		stats.RemainingUSD = target - total
	}
	progress, err := ScaleBoostBP(total, target, BPDenominator)
	if err != nil {
		return BoostStats{}, err
	}
	stats.ProgressBP = progress
	return stats, nil
}
