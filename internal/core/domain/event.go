package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventKind names a confirmed on-chain action delivered by the chain indexer.
type EventKind string

const (
	EventDepositConfirmed EventKind = "deposit_confirmed"
	EventBoostApplied     EventKind = "boost_applied"
	EventClaimRequested   EventKind = "claim_requested"
	EventCollateralOpened EventKind = "collateral_opened"
	EventCollateralRepaid EventKind = "collateral_repaid"
	EventListingSold      EventKind = "listing_sold"
	EventRedeemed         EventKind = "redeemed"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	switch k {
	case EventDepositConfirmed, EventBoostApplied, EventClaimRequested,
		EventCollateralOpened, EventCollateralRepaid, EventListingSold, EventRedeemed:
		return true
	}
	return false
}

// LedgerEvent is one confirmed on-chain action. TxHash is globally unique per
// action and is the deduplication handle.
type LedgerEvent struct {
	Kind       EventKind       `json:"kind"`
	WexelID    int64           `json:"wexel_id"`
	TxHash     string          `json:"tx_hash"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	ObservedAt time.Time       `json:"observed_at"`
}

// Validate checks the envelope fields shared by every kind.
func (e *LedgerEvent) Validate() error {
	switch {
	case !e.Kind.Valid():
		return fmt.Errorf("unknown event kind %q", e.Kind)
	case e.TxHash == "":
		return errors.New("tx_hash is required")
	case e.WexelID <= 0:
		return errors.New("wexel_id must be > 0")
	case e.ObservedAt.IsZero():
		return errors.New("observed_at is required")
	}
	return nil
}

// Key returns the deduplication key of the event.
func (e *LedgerEvent) Key() ProcessedKey {
	return ProcessedKey{WexelID: e.WexelID, Kind: e.Kind, TxHash: e.TxHash}
}

// DecodePayload unmarshals the kind-specific payload into v.
func (e *LedgerEvent) DecodePayload(v any) error {
	if len(e.Payload) == 0 {
		return errors.New("payload is required")
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Kind, err)
	}
	return nil
}

// ProcessedKey identifies an applied event.
type ProcessedKey struct {
	WexelID int64
	Kind    EventKind
	TxHash  string
}

// String renders the key for cache lookups.
func (k ProcessedKey) String() string {
	return fmt.Sprintf("%d:%s:%s", k.WexelID, k.Kind, k.TxHash)
}

// ProcessedEvent records that an event was applied. It is written in the same
// commit as the mutation it caused.
type ProcessedEvent struct {
	WexelID     int64     `json:"wexel_id"`
	Kind        EventKind `json:"kind"`
	TxHash      string    `json:"tx_hash"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Key returns the deduplication key of the record.
func (p *ProcessedEvent) Key() ProcessedKey {
	return ProcessedKey{WexelID: p.WexelID, Kind: p.Kind, TxHash: p.TxHash}
}

// Payloads. Signer is the wallet that signed the on-chain transaction and is
// authorized against the wexel the same way an API caller is.

type DepositConfirmedPayload struct {
	PoolID    int64      `json:"pool_id"`
	Owner     string     `json:"owner"`
	Principal int64      `json:"principal"`
	StartTs   *time.Time `json:"start_ts,omitempty"`
}

type BoostAppliedPayload struct {
	Signer    string `json:"signer"`
	TokenMint string `json:"token_mint"`
	Amount    int64  `json:"amount"`
}

type ClaimRequestedPayload struct {
	Signer    string    `json:"signer"`
	Amount    *int64    `json:"amount,omitempty"`
	ClaimType ClaimType `json:"claim_type,omitempty"`
}

type CollateralOpenedPayload struct {
	Signer string `json:"signer"`
}

type CollateralRepaidPayload struct {
	Signer string `json:"signer"`
	Amount int64  `json:"amount"`
}

type ListingSoldPayload struct {
	ListingID uuid.UUID `json:"listing_id"`
	Buyer     string    `json:"buyer"`
	Price     int64     `json:"price"`
}

type RedeemedPayload struct {
	Signer string `json:"signer"`
}

// Outcome is the result of reconciling one event.
type Outcome struct {
	Key       ProcessedKey
	Duplicate bool
}
