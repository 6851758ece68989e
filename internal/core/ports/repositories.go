package ports

import (
	"context"
	"time"

	"wexel-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// LedgerTx is the view of the store inside a per-wexel unit of work. Getters
// return (nil, nil) when the row does not exist. Writes are staged and become
// visible to other readers only when the unit of work commits.
type LedgerTx interface {
	GetWexel(ctx context.Context, id int64) (*domain.Wexel, error)
	CreateWexel(ctx context.Context, w *domain.Wexel) error
	UpdateWexel(ctx context.Context, w *domain.Wexel) error

	GetPool(ctx context.Context, id int64) (*domain.Pool, error)

	// GetLatestPosition returns the open position if any, else the most recent one.
	GetLatestPosition(ctx context.Context, wexelID int64) (*domain.CollateralPosition, error)
	CreatePosition(ctx context.Context, p *domain.CollateralPosition) error
	UpdatePosition(ctx context.Context, p *domain.CollateralPosition) error

	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	GetActiveListing(ctx context.Context, wexelID int64) (*domain.Listing, error)
	CreateListing(ctx context.Context, l *domain.Listing) error
	UpdateListing(ctx context.Context, l *domain.Listing) error

	GetClaimByTxHash(ctx context.Context, txHash string) (*domain.Claim, error)
	CreateClaim(ctx context.Context, c *domain.Claim) error

	SumBoostValue(ctx context.Context, wexelID int64) (int64, error)
	CreateBoost(ctx context.Context, b *domain.Boost) error

	IsProcessed(ctx context.Context, key domain.ProcessedKey) (bool, error)
	MarkProcessed(ctx context.Context, ev *domain.ProcessedEvent) error
}

// LedgerStore is the durable ledger. WithinWexel serializes every mutation of
// one wexel against every other mutation of the same wexel and commits all
// writes staged by fn atomically. If fn returns an error nothing is written.
type LedgerStore interface {
	WithinWexel(ctx context.Context, wexelID int64, fn func(ctx context.Context, tx LedgerTx) error) error

	CreatePool(ctx context.Context, p *domain.Pool) error
	UpdatePool(ctx context.Context, p *domain.Pool) error
	GetPool(ctx context.Context, id int64) (*domain.Pool, error)
	ListPools(ctx context.Context, activeOnly bool) ([]domain.Pool, error)

	GetWexel(ctx context.Context, id int64) (*domain.Wexel, error)
	Snapshot(ctx context.Context, wexelID int64) (*domain.WexelSnapshot, error)
	ListWexelsByOwner(ctx context.Context, owner string) ([]domain.Wexel, error)

	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListActiveListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	ListExpiredListings(ctx context.Context, now time.Time, limit int) ([]domain.Listing, error)

	ListClaims(ctx context.Context, wexelID int64) ([]domain.Claim, error)
	ListBoosts(ctx context.Context, wexelID int64) ([]domain.Boost, error)

	// IsProcessed reads committed state without taking the wexel's lock. The
	// answer is advisory; only the check inside WithinWexel is authoritative.
	IsProcessed(ctx context.Context, key domain.ProcessedKey) (bool, error)
}
