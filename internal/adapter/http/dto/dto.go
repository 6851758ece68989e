package dto

import (
	"encoding/json"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/presentation"
)

// --- Pools ---

type CreatePoolRequest struct {
	ID            int64 `json:"id" binding:"omitempty,gt=0"`
	APYBaseBP     int   `json:"apy_base_bp" binding:"gte=0,lte=100000"`
	LockMonths    int   `json:"lock_months" binding:"required,gt=0,lte=120"`
	MinDeposit    int64 `json:"min_deposit" binding:"gte=0"`
	BoostTargetBP *int  `json:"boost_target_bp" binding:"omitempty,gte=0,lte=10000"`
	BoostMaxBP    *int  `json:"boost_max_bp" binding:"omitempty,gte=0"`
}

type SetPoolActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type PoolResponse struct {
	domain.Pool
	APYBasePercent  string `json:"apy_base_percent"`
	BoostMaxPercent string `json:"boost_max_percent"`
}

func NewPoolResponse(p *domain.Pool) PoolResponse {
	return PoolResponse{
		Pool:            *p,
		APYBasePercent:  presentation.Percent(p.APYBaseBP),
		BoostMaxPercent: presentation.Percent(p.BoostMaxBP),
	}
}

func NewPoolList(pools []domain.Pool) []PoolResponse {
	out := make([]PoolResponse, 0, len(pools))
	for i := range pools {
		out = append(out, NewPoolResponse(&pools[i]))
	}
	return out
}

// --- Wexels ---

type WexelResponse struct {
	domain.Wexel
	Owner           string `json:"owner"`
	TotalAPYBP      int    `json:"total_apy_bp"`
	TotalAPYPercent string `json:"total_apy_percent"`
	Finalized       bool   `json:"finalized"`
}

func NewWexelResponse(w *domain.Wexel) WexelResponse {
	return WexelResponse{
		Wexel:           *w,
		Owner:           w.Owner(),
		TotalAPYBP:      w.TotalAPYBP(),
		TotalAPYPercent: presentation.Percent(w.TotalAPYBP()),
		Finalized:       w.IsFinalized(),
	}
}

type SnapshotResponse struct {
	Wexel         WexelResponse              `json:"wexel"`
	Pool          *PoolResponse              `json:"pool,omitempty"`
	Position      *domain.CollateralPosition `json:"position,omitempty"`
	ActiveListing *domain.Listing            `json:"active_listing,omitempty"`
	BoostValueUSD int64                      `json:"boost_value_usd"`
	BoostValue    string                     `json:"boost_value"`
}

func NewSnapshotResponse(s *domain.WexelSnapshot) SnapshotResponse {
	resp := SnapshotResponse{
		Wexel:         NewWexelResponse(&s.Wexel),
		Position:      s.Position,
		ActiveListing: s.ActiveListing,
		BoostValueUSD: s.BoostValueUSD,
		BoostValue:    presentation.USD(s.BoostValueUSD),
	}
	if s.Pool != nil {
		p := NewPoolResponse(s.Pool)
		resp.Pool = &p
	}
	return resp
}

type AccrualResponse struct {
	domain.Accrual
	TotalAPYPercent string `json:"total_apy_percent"`
}

func NewAccrualResponse(a *domain.Accrual) AccrualResponse {
	return AccrualResponse{Accrual: *a, TotalAPYPercent: presentation.Percent(a.TotalAPYBP)}
}

type PortfolioResponse struct {
	Owner          string            `json:"owner"`
	Wexels         []AccrualResponse `json:"wexels"`
	TotalPrincipal int64             `json:"total_principal"`
	TotalPending   int64             `json:"total_pending"`
	TotalClaimed   int64             `json:"total_claimed"`
	Collateralized int               `json:"collateralized"`
}

func NewPortfolioResponse(p *ports.Portfolio) PortfolioResponse {
	resp := PortfolioResponse{
		Owner:          p.Owner,
		Wexels:         make([]AccrualResponse, 0, len(p.Wexels)),
		TotalPrincipal: p.TotalPrincipal,
		TotalPending:   p.TotalPending,
		TotalClaimed:   p.TotalClaimed,
		Collateralized: p.Collateralized,
	}
	for i := range p.Wexels {
		resp.Wexels = append(resp.Wexels, NewAccrualResponse(&p.Wexels[i]))
	}
	return resp
}

// --- Rewards ---

// ClaimRequest claims Amount of pending rewards, or all of them when Amount
// is omitted.
type ClaimRequest struct {
	Amount    *int64 `json:"amount" binding:"omitempty,gt=0"`
	ClaimType string `json:"claim_type" binding:"omitempty,oneof=daily manual"`
	TxHash    string `json:"tx_hash" binding:"omitempty,tx_hash"`
}

// --- Boost ---

type BoostQuoteQuery struct {
	TokenMint string `form:"token_mint" binding:"required,wallet"`
	Amount    int64  `form:"amount" binding:"required,gt=0"`
}

type ApplyBoostRequest struct {
	TokenMint string `json:"token_mint" binding:"required,wallet"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	TxHash    string `json:"tx_hash" binding:"omitempty,tx_hash"`
}

type BoostStatsResponse struct {
	domain.BoostStats
	CurrentBoostPercent string `json:"current_boost_percent"`
	ProgressPercent     string `json:"progress_percent"`
	RemainingValue      string `json:"remaining_value"`
}

func NewBoostStatsResponse(s *domain.BoostStats) BoostStatsResponse {
	return BoostStatsResponse{
		BoostStats:          *s,
		CurrentBoostPercent: presentation.Percent(s.CurrentBoostBP),
		ProgressPercent:     presentation.Percent(s.ProgressBP),
		RemainingValue:      presentation.USD(s.RemainingUSD),
	}
}

// ManualPriceRequest pins a market token's price, in micro-USD per whole
// token. Reason is kept in the audit trail.
type ManualPriceRequest struct {
	Mint     string `json:"mint" binding:"required,wallet"`
	PriceUSD int64  `json:"price_usd" binding:"required,gt=0"`
	Reason   string `json:"reason" binding:"required,min=3,max=500"`
}

// --- Collateral ---

type OpenCollateralRequest struct {
	TxHash string `json:"tx_hash" binding:"omitempty,tx_hash"`
}

type RepayRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	TxHash string `json:"tx_hash" binding:"omitempty,tx_hash"`
}

// --- Redemption ---

type RedeemRequest struct {
	TxHash string `json:"tx_hash" binding:"omitempty,tx_hash"`
}

// --- Marketplace ---

type CreateListingRequest struct {
	AskPrice int64      `json:"ask_price" binding:"required,gt=0"`
	Auction  bool       `json:"auction"`
	MinBid   *int64     `json:"min_bid" binding:"omitempty,gt=0"`
	ExpiryTs *time.Time `json:"expiry_ts"`
}

type BuyListingRequest struct {
	Price  int64  `json:"price" binding:"required,gt=0"`
	TxHash string `json:"tx_hash" binding:"omitempty,tx_hash"`
}

type ListingQuery struct {
	PoolID   *int64 `form:"pool_id" binding:"omitempty,gt=0"`
	MinAPYBP *int   `form:"min_apy_bp" binding:"omitempty,gte=0"`
	MaxPrice *int64 `form:"max_price" binding:"omitempty,gt=0"`
	Limit    int    `form:"limit" binding:"omitempty,gt=0,lte=200"`
	Offset   int    `form:"offset" binding:"omitempty,gte=0"`
}

// Filter converts the query into a store filter. Limit defaults to 50.
func (q ListingQuery) Filter() domain.ListingFilter {
	limit := q.Limit
	if limit == 0 {
		limit = 50
	}
	return domain.ListingFilter{
		PoolID:   q.PoolID,
		MinAPYBP: q.MinAPYBP,
		MaxPrice: q.MaxPrice,
		Limit:    limit,
		Offset:   q.Offset,
	}
}

// --- Chain events ---

// EventRequest is a chain-indexer event submitted over HTTP. ObservedAt
// defaults to the ledger clock.
type EventRequest struct {
	Kind       string          `json:"kind" binding:"required"`
	WexelID    int64           `json:"wexel_id" binding:"required,gt=0"`
	TxHash     string          `json:"tx_hash" binding:"required,tx_hash"`
	Payload    json.RawMessage `json:"payload" binding:"required"`
	ObservedAt *time.Time      `json:"observed_at"`
}

type EventResponse struct {
	Kind      domain.EventKind `json:"kind"`
	WexelID   int64            `json:"wexel_id"`
	TxHash    string           `json:"tx_hash"`
	Duplicate bool             `json:"duplicate"`
}

type SweepResponse struct {
	Expired int `json:"expired"`
}
