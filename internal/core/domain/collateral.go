package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLTVBP is the loan-to-value ratio applied when none is configured (60%).
const DefaultLTVBP = 6000

// CollateralPosition is a loan taken against a wexel's principal.
type CollateralPosition struct {
	ID           uuid.UUID  `json:"id"`
	WexelID      int64      `json:"wexel_id"`
	LoanAmount   int64      `json:"loan_amount"`
	StartTs      time.Time  `json:"start_ts"`
	Repaid       bool       `json:"repaid"`
	RepaidAmount int64      `json:"repaid_amount"`
	RepaidAt     *time.Time `json:"repaid_at,omitempty"`
	TxHash       *string    `json:"tx_hash,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsOpen reports whether the loan is still outstanding.
func (p *CollateralPosition) IsOpen() bool {
	return !p.Repaid
}

// LoanAmount returns floor(principal × ltvBP / 10000).
func LoanAmount(principal int64, ltvBP int) (int64, error) {
	return ApplyBP(principal, ltvBP)
}
