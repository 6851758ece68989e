package ports

import (
	"context"
	"time"

	"wexel-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// TokenService handles JWT token operations. The subject is the caller's
// wallet address.
type TokenService interface {
	Generate(wallet string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Wallet string
}

// HealthChecker reports the health of one external dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// Clock supplies the ledger's logical time.
type Clock interface {
	Now() time.Time
}

// PriceSource looks up the market price of a boost token.
// A missing price is an error, never a zero quote.
type PriceSource interface {
	Price(ctx context.Context, mint string) (*domain.PriceQuote, error)
}

// PriceCache is the Redis-layer price cache.
type PriceCache interface {
	Get(ctx context.Context, mint string) (*domain.PriceQuote, error) // nil on miss
	Set(ctx context.Context, quote *domain.PriceQuote, ttl time.Duration) error
}

// TokenRegistry resolves boost token mints to their pricing policy.
type TokenRegistry interface {
	Token(mint string) (domain.BoostToken, bool)
	Tokens() []domain.BoostToken
}

// ProcessedEventCache is the best-effort fast path for event deduplication.
// The store's ProcessedEvent rows stay authoritative.
type ProcessedEventCache interface {
	Seen(ctx context.Context, key domain.ProcessedKey) (bool, error)
	Mark(ctx context.Context, key domain.ProcessedKey, ttl time.Duration) error
}

// Notifier publishes post-commit notifications.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// --- Service Ports (Business Logic) ---

// AccrualService computes and settles time-proportional rewards.
type AccrualService interface {
	PendingRewards(w *domain.Wexel, now time.Time) (int64, error)
	TotalRewards(w *domain.Wexel, now time.Time) (int64, error)
	Claim(ctx context.Context, req ClaimRequest) (*ClaimResult, error)
}

// ClaimRequest holds validated input for a reward claim.
type ClaimRequest struct {
	WexelID   int64
	Caller    string
	Amount    *int64 // nil = full pending
	ClaimType domain.ClaimType
	TxHash    string
	Now       time.Time
}

// ClaimResult is the committed claim. Duplicate is set when the tx hash was
// already applied; Claim then holds the original row.
type ClaimResult struct {
	Claim     *domain.Claim `json:"claim"`
	Duplicate bool          `json:"duplicate"`
}

// BoostService prices and applies boost-token deposits.
type BoostService interface {
	CalculateBoost(ctx context.Context, req BoostQuoteRequest) (*domain.BoostQuote, error)
	ApplyBoost(ctx context.Context, req ApplyBoostRequest) (*BoostResult, error)
}

// BoostQuoteRequest holds input for a boost quote.
type BoostQuoteRequest struct {
	WexelID   int64
	TokenMint string
	Amount    int64
	Now       time.Time
}

// ApplyBoostRequest holds validated input for a boost deposit.
type ApplyBoostRequest struct {
	WexelID   int64
	Caller    string
	TokenMint string
	Amount    int64
	TxHash    string
	Now       time.Time
}

// BoostResult is the outcome of ApplyBoost.
type BoostResult struct {
	Boost     *domain.Boost `json:"boost,omitempty"`
	Wexel     *domain.Wexel `json:"wexel"`
	Duplicate bool          `json:"duplicate"`
}

// CollateralService opens and repays loans against wexels.
type CollateralService interface {
	Quote(ctx context.Context, wexelID int64) (*LoanQuote, error)
	Open(ctx context.Context, req OpenCollateralRequest) (*CollateralResult, error)
	Repay(ctx context.Context, req RepayRequest) (*CollateralResult, error)
}

// LoanQuote is the loan available against a wexel.
type LoanQuote struct {
	WexelID          int64 `json:"wexel_id"`
	Principal        int64 `json:"principal"`
	LTVBP            int   `json:"ltv_bp"`
	LoanAmount       int64 `json:"loan_amount"`
	IsCollateralized bool  `json:"is_collateralized"`
}

// OpenCollateralRequest holds validated input for opening a loan.
type OpenCollateralRequest struct {
	WexelID int64
	Caller  string
	TxHash  string
	Now     time.Time
}

// RepayRequest holds validated input for repaying a loan.
type RepayRequest struct {
	WexelID int64
	Caller  string
	Amount  int64
	TxHash  string
	Now     time.Time
}

// CollateralResult is the position after open or repay.
type CollateralResult struct {
	Position  *domain.CollateralPosition `json:"position,omitempty"`
	Duplicate bool                       `json:"duplicate"`
}

// MarketplaceService manages resale listings.
type MarketplaceService interface {
	CreateListing(ctx context.Context, req CreateListingRequest) (*domain.Listing, error)
	Buy(ctx context.Context, req BuyRequest) (*Settlement, error)
	Cancel(ctx context.Context, req CancelListingRequest) (*domain.Listing, error)
	ExpireListings(ctx context.Context, now time.Time) (int, error)
}

// CreateListingRequest holds validated input for a new listing.
type CreateListingRequest struct {
	WexelID  int64
	Caller   string
	AskPrice int64
	Auction  bool
	MinBid   *int64
	ExpiryTs *time.Time
	Now      time.Time
}

// BuyRequest holds validated input for buying a listing.
type BuyRequest struct {
	ListingID uuid.UUID
	WexelID   int64 // optional; when set must match the listing
	Buyer     string
	Price     int64
	TxHash    string
	Now       time.Time
}

// Settlement is the outcome of a sale.
type Settlement struct {
	Listing       *domain.Listing `json:"listing,omitempty"`
	Wexel         *domain.Wexel   `json:"wexel,omitempty"`
	PreviousOwner string          `json:"previous_owner,omitempty"`
	Duplicate     bool            `json:"duplicate"`
}

// CancelListingRequest holds input for cancelling a listing.
type CancelListingRequest struct {
	ListingID uuid.UUID
	Caller    string
	Now       time.Time
}

// DepositService manages pools, deposit confirmation and redemption.
type DepositService interface {
	CreatePool(ctx context.Context, req CreatePoolRequest) (*domain.Pool, error)
	SetPoolActive(ctx context.Context, id int64, active bool) (*domain.Pool, error)
	GetPool(ctx context.Context, id int64) (*domain.Pool, error)
	ListPools(ctx context.Context, activeOnly bool) ([]domain.Pool, error)
	ConfirmDeposit(ctx context.Context, req DepositRequest) (*DepositResult, error)
	Redeem(ctx context.Context, req RedeemRequest) (*DepositResult, error)
}

// CreatePoolRequest holds validated input for a new pool. Zero boost
// parameters take the defaults.
type CreatePoolRequest struct {
	ID            int64
	APYBaseBP     int
	LockMonths    int
	MinDeposit    int64
	BoostTargetBP *int
	BoostMaxBP    *int
	Now           time.Time
}

// DepositRequest confirms a deposit and mints the wexel.
type DepositRequest struct {
	WexelID   int64
	PoolID    int64
	Owner     string
	Principal int64
	StartTs   time.Time
	TxHash    string
	Now       time.Time
}

// RedeemRequest finalizes a matured wexel.
type RedeemRequest struct {
	WexelID int64
	Caller  string
	TxHash  string
	Now     time.Time
}

// DepositResult carries the wexel after deposit or redemption.
type DepositResult struct {
	Wexel     *domain.Wexel `json:"wexel"`
	Duplicate bool          `json:"duplicate"`
}

// QueryService is the read-only surface.
type QueryService interface {
	GetWexel(ctx context.Context, id int64) (*domain.WexelSnapshot, error)
	EstimateRewards(ctx context.Context, id int64, now time.Time) (*domain.Accrual, error)
	EstimateLoan(ctx context.Context, id int64) (*LoanQuote, error)
	ListActiveListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	Portfolio(ctx context.Context, owner string, now time.Time) (*Portfolio, error)
	BoostStats(ctx context.Context, id int64) (*domain.BoostStats, error)
	ListClaims(ctx context.Context, id int64) ([]domain.Claim, error)
	ListBoosts(ctx context.Context, id int64) ([]domain.Boost, error)
}

// Portfolio aggregates the wexels held by one wallet.
type Portfolio struct {
	Owner          string           `json:"owner"`
	Wexels         []domain.Accrual `json:"wexels"`
	TotalPrincipal int64            `json:"total_principal"`
	TotalPending   int64            `json:"total_pending"`
	TotalClaimed   int64            `json:"total_claimed"`
	Collateralized int              `json:"collateralized"`
}

// Reconciler applies chain events to the ledger exactly once.
type Reconciler interface {
	Apply(ctx context.Context, ev domain.LedgerEvent) (domain.Outcome, error)
}

// PriceAdminService lets operators pin a market token's price while the
// upstream feeds are unavailable or wrong.
type PriceAdminService interface {
	SetManualPrice(ctx context.Context, req ManualPriceRequest) (*domain.PriceQuote, error)
}

// ManualPriceRequest holds validated input for a price override.
type ManualPriceRequest struct {
	Mint     string
	PriceUSD int64
	Reason   string
	Operator string
	Now      time.Time
}
