package domain

import (
	"fmt"
	"time"
)

// SecondsPerDay is the accrual granularity. Rewards accrue in whole days only.
const SecondsPerDay = 86400

// daysPerYear × BPDenominator, the divisor of the daily reward formula.
const dailyRewardDivisor = 365 * BPDenominator

// Accrual is a snapshot of a wexel's reward state at a given time.
type Accrual struct {
	WexelID      int64     `json:"wexel_id"`
	Principal    int64     `json:"principal"`
	TotalAPYBP   int       `json:"total_apy_bp"`
	DailyReward  int64     `json:"daily_reward"`
	DaysElapsed  int64     `json:"days_elapsed"`
	TotalDays    int64     `json:"total_days"`
	TotalRewards int64     `json:"total_rewards"`
	TotalClaimed int64     `json:"total_claimed"`
	Pending      int64     `json:"pending"`
	IsMatured    bool      `json:"is_matured"`
	AsOf         time.Time `json:"as_of"`
}

// DailyReward returns floor(principal × total_apy_bp / (365 × 10000)).
func DailyReward(w *Wexel) (int64, error) {
	apy := w.TotalAPYBP()
	if apy < 0 {
		return 0, ErrNegativeOperand
	}
	return MulDiv(w.Principal, int64(apy), dailyRewardDivisor)
}

// DaysElapsed returns whole days since start_ts, clamped to [0, total_days].
func DaysElapsed(w *Wexel, now time.Time) (elapsed, total int64) {
	total = floorDays(w.EndTs.Unix() - w.StartTs.Unix())
	elapsed = floorDays(now.Unix() - w.StartTs.Unix())
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > total {
		elapsed = total
	}
	return elapsed, total
}

func floorDays(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	return seconds / SecondsPerDay
}

// ComputeAccrual evaluates the accrual formula for w at now. Every step
// rounds toward zero, so the ledger never owes more than it can source.
func ComputeAccrual(w *Wexel, now time.Time) (Accrual, error) {
	daily, err := DailyReward(w)
	if err != nil {
		return Accrual{}, fmt.Errorf("daily reward: %w", err)
	}
	elapsed, total := DaysElapsed(w, now)
	rewards, err := Mul(daily, elapsed)
	if err != nil {
		return Accrual{}, fmt.Errorf("total rewards: %w", err)
	}
	pending := rewards - w.TotalClaimed
	if pending < 0 {
		pending = 0
	}
	return Accrual{
		WexelID:      w.ID,
		Principal:    w.Principal,
		TotalAPYBP:   w.TotalAPYBP(),
		DailyReward:  daily,
		DaysElapsed:  elapsed,
		TotalDays:    total,
		TotalRewards: rewards,
		TotalClaimed: w.TotalClaimed,
		Pending:      pending,
		IsMatured:    w.IsMatured(now),
		AsOf:         now,
	}, nil
}
