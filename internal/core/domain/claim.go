package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClaimType distinguishes user-initiated claims from chain-observed ones.
type ClaimType string

const (
	ClaimTypeDaily  ClaimType = "daily"
	ClaimTypeManual ClaimType = "manual"
)

// Valid reports whether t is a known claim type.
func (t ClaimType) Valid() bool {
	return t == ClaimTypeDaily || t == ClaimTypeManual
}

// Claim is an immutable record of rewards paid out from a wexel.
type Claim struct {
	ID        uuid.UUID `json:"id"`
	WexelID   int64     `json:"wexel_id"`
	Amount    int64     `json:"amount"`
	ClaimType ClaimType `json:"claim_type"`
	TxHash    *string   `json:"tx_hash,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
