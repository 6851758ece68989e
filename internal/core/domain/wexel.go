package domain

import (
	"errors"
	"strings"
	"time"
)

// WalletFamily identifies which chain an owner address belongs to.
type WalletFamily string

const (
	WalletFamilySolana WalletFamily = "SOLANA"
	WalletFamilyTron   WalletFamily = "TRON"
)

// FamilyOf classifies a wallet address. Tron base58 addresses start with "T";
// everything else is treated as Solana.
func FamilyOf(address string) WalletFamily {
	if strings.HasPrefix(address, "T") {
		return WalletFamilyTron
	}
	return WalletFamilySolana
}

// Wexel is an investment certificate: a fixed-term principal deposit and
// its accruing yield rights.
type Wexel struct {
	ID               int64      `json:"id"`
	OwnerSolana      *string    `json:"owner_solana,omitempty"`
	OwnerTron        *string    `json:"owner_tron,omitempty"`
	PoolID           int64      `json:"pool_id"`
	Principal        int64      `json:"principal"`
	APYBaseBP        int        `json:"apy_base_bp"`
	APYBoostBP       int        `json:"apy_boost_bp"`
	StartTs          time.Time  `json:"start_ts"`
	EndTs            time.Time  `json:"end_ts"`
	IsCollateralized bool       `json:"is_collateralized"`
	TotalClaimed     int64      `json:"total_claimed"`
	FinalizedAt      *time.Time `json:"finalized_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Owner returns the current owner address regardless of wallet family.
func (w *Wexel) Owner() string {
	if w.OwnerSolana != nil {
		return *w.OwnerSolana
	}
	if w.OwnerTron != nil {
		return *w.OwnerTron
	}
	return ""
}

// IsOwnedBy reports whether address is the current owner.
func (w *Wexel) IsOwnedBy(address string) bool {
	return address != "" && w.Owner() == address
}

// SetOwner assigns ownership to address, clearing the other wallet family so
// exactly one owner field is set.
func (w *Wexel) SetOwner(address string) {
	addr := address
	switch FamilyOf(address) {
	case WalletFamilyTron:
		w.OwnerTron = &addr
		w.OwnerSolana = nil
	default:
		w.OwnerSolana = &addr
		w.OwnerTron = nil
	}
}

// IsFinalized reports whether the wexel has been redeemed.
func (w *Wexel) IsFinalized() bool {
	return w.FinalizedAt != nil
}

// IsMatured reports whether now is at or past the end of the term.
func (w *Wexel) IsMatured(now time.Time) bool {
	return !now.Before(w.EndTs)
}

// TotalAPYBP is the effective APY including boost.
func (w *Wexel) TotalAPYBP() int {
	return w.APYBaseBP + w.APYBoostBP
}

// Validate checks the structural invariants of a wexel.
func (w *Wexel) Validate() error {
	switch {
	case w.Principal <= 0:
		return errors.New("principal must be > 0")
	case !w.EndTs.After(w.StartTs):
		return errors.New("end_ts must be after start_ts")
	case w.APYBaseBP < 0 || w.APYBoostBP < 0:
		return errors.New("apy must be >= 0")
	case w.TotalClaimed < 0:
		return errors.New("total_claimed must be >= 0")
	case (w.OwnerSolana == nil) == (w.OwnerTron == nil):
		return errors.New("exactly one owner wallet must be set")
	}
	return nil
}
