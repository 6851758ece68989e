package domain

import (
	"errors"
	"time"
)

// Default boost parameters applied when a pool does not set its own.
const (
	DefaultBoostTargetBP = 3000 // boost target is 30% of principal
	DefaultBoostMaxBP    = 500  // boost adds at most +5% APY
)

// Pool is a fixed-term deposit product.
type Pool struct {
	ID            int64     `json:"id"`
	APYBaseBP     int       `json:"apy_base_bp"`
	LockMonths    int       `json:"lock_months"`
	MinDeposit    int64     `json:"min_deposit"`
	BoostTargetBP int       `json:"boost_target_bp"`
	BoostMaxBP    int       `json:"boost_max_bp"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate checks the pool invariants.
func (p *Pool) Validate() error {
	switch {
	case p.APYBaseBP < 0:
		return errors.New("apy_base_bp must be >= 0")
	case p.LockMonths <= 0:
		return errors.New("lock_months must be > 0")
	case p.MinDeposit < 0:
		return errors.New("min_deposit must be >= 0")
	case p.BoostTargetBP < 0 || p.BoostTargetBP > BPDenominator:
		return errors.New("boost_target_bp must be in [0, 10000]")
	case p.BoostMaxBP < 0:
		return errors.New("boost_max_bp must be >= 0")
	}
	return nil
}

// LockDuration is the term of a deposit into this pool. A month is 30 days.
func (p *Pool) LockDuration() time.Duration {
	return time.Duration(p.LockMonths) * 30 * 24 * time.Hour
}
