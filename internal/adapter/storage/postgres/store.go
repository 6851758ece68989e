// Package postgres implements the durable ledger on PostgreSQL via pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Store implements ports.LedgerStore. Units of work are serialized per wexel
// with a transaction-scoped advisory lock keyed by the wexel id.
type Store struct {
	pool Pool
	log  zerolog.Logger
}

// NewStore creates a new PostgreSQL-backed ledger store.
func NewStore(pool Pool, log zerolog.Logger) *Store {
	return &Store{pool: pool, log: log}
}

// WithinWexel runs fn inside a transaction holding the wexel's advisory lock.
// The lock is released when the transaction ends.
func (s *Store) WithinWexel(ctx context.Context, wexelID int64, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, wexelID); err != nil {
		s.rollback(ctx, tx, wexelID)
		return fmt.Errorf("lock wexel %d: %w", wexelID, err)
	}

	if err := fn(ctx, &ledgerTx{q: tx}); err != nil {
		s.rollback(ctx, tx, wexelID)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return translate("commit transaction", err)
	}
	return nil
}

func (s *Store) rollback(ctx context.Context, tx pgx.Tx, wexelID int64) {
	if err := tx.Rollback(ctx); err != nil {
		s.log.Error().Err(err).Int64("wexel_id", wexelID).Msg("rollback failed")
	}
}

// CreatePool inserts a pool. A zero ID is assigned from the sequence.
func (s *Store) CreatePool(ctx context.Context, p *domain.Pool) error {
	query := `
		INSERT INTO pools (id, apy_base_bp, lock_months, min_deposit, boost_target_bp, boost_max_bp,
			is_active, created_at, updated_at)
		VALUES (COALESCE($1, nextval('pools_id_seq')), $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id *int64
	if p.ID != 0 {
		id = &p.ID
	}
	err := s.pool.QueryRow(ctx, query,
		id, p.APYBaseBP, p.LockMonths, p.MinDeposit, p.BoostTargetBP, p.BoostMaxBP,
		p.IsActive, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return translate("insert pool", err)
	}
	return nil
}

func (s *Store) UpdatePool(ctx context.Context, p *domain.Pool) error {
	query := `
		UPDATE pools
		SET apy_base_bp = $2, lock_months = $3, min_deposit = $4, boost_target_bp = $5,
			boost_max_bp = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query,
		p.ID, p.APYBaseBP, p.LockMonths, p.MinDeposit, p.BoostTargetBP, p.BoostMaxBP, p.IsActive,
	)
	if err != nil {
		return translate("update pool", err)
	}
	return requireAffected("update pool", tag)
}

func (s *Store) GetPool(ctx context.Context, id int64) (*domain.Pool, error) {
	return getPool(ctx, s.pool, id)
}

func (s *Store) ListPools(ctx context.Context, activeOnly bool) ([]domain.Pool, error) {
	query := `SELECT ` + poolColumns + ` FROM pools WHERE ($1 = FALSE OR is_active) ORDER BY id`

	rows, err := s.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	pools, err := collect(rows, scanPool)
	if err != nil {
		return nil, fmt.Errorf("scan pools: %w", err)
	}
	return pools, nil
}

func (s *Store) GetWexel(ctx context.Context, id int64) (*domain.Wexel, error) {
	return getWexel(ctx, s.pool, id)
}

func (s *Store) IsProcessed(ctx context.Context, key domain.ProcessedKey) (bool, error) {
	return isProcessed(ctx, s.pool, key)
}

// Snapshot reads the wexel and its gating rows in one repeatable-read
// transaction so the parts are mutually consistent.
func (s *Store) Snapshot(ctx context.Context, wexelID int64) (*domain.WexelSnapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	w, err := getWexel(ctx, tx, wexelID)
	if err != nil || w == nil {
		return nil, err
	}
	snap := &domain.WexelSnapshot{Wexel: *w}

	if snap.Pool, err = getPool(ctx, tx, w.PoolID); err != nil {
		return nil, err
	}

	posQuery := `SELECT ` + positionColumns + ` FROM collateral_positions WHERE wexel_id = $1 AND NOT repaid`
	if snap.Position, err = noRows(scanPosition(tx.QueryRow(ctx, posQuery, wexelID))); err != nil {
		return nil, fmt.Errorf("get open position: %w", err)
	}

	lt := &ledgerTx{q: tx}
	if snap.ActiveListing, err = lt.GetActiveListing(ctx, wexelID); err != nil {
		return nil, err
	}
	if snap.BoostValueUSD, err = sumBoostValue(ctx, tx, wexelID); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Store) ListWexelsByOwner(ctx context.Context, owner string) ([]domain.Wexel, error) {
	query := `
		SELECT ` + wexelColumns + `
		FROM wexels
		WHERE owner_solana = $1 OR owner_tron = $1
		ORDER BY id`

	rows, err := s.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list wexels by owner: %w", err)
	}
	wexels, err := collect(rows, scanWexel)
	if err != nil {
		return nil, fmt.Errorf("scan wexels: %w", err)
	}
	return wexels, nil
}

func (s *Store) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return getListing(ctx, s.pool, id)
}

// ListActiveListings returns active listings newest first. Nil filter fields
// are ignored.
func (s *Store) ListActiveListings(ctx context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	query := `
		SELECT l.id, l.wexel_id, l.seller, l.ask_price, l.auction, l.min_bid, l.expiry_ts, l.status,
			l.buyer, l.sold_price, l.tx_hash, l.created_at, l.updated_at
		FROM listings l
		JOIN wexels w ON w.id = l.wexel_id
		WHERE l.status = 'active'
			AND ($1::BIGINT IS NULL OR w.pool_id = $1)
			AND ($2::INTEGER IS NULL OR w.apy_base_bp + w.apy_boost_bp >= $2)
			AND ($3::BIGINT IS NULL OR l.ask_price <= $3)
		ORDER BY l.created_at DESC, l.id
		LIMIT $4 OFFSET $5`

	rows, err := s.pool.Query(ctx, query, f.PoolID, f.MinAPYBP, f.MaxPrice, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	listings, err := collect(rows, scanListing)
	if err != nil {
		return nil, fmt.Errorf("scan listings: %w", err)
	}
	return listings, nil
}

// ListExpiredListings returns active listings whose expiry is at or before now.
func (s *Store) ListExpiredListings(ctx context.Context, now time.Time, limit int) ([]domain.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE status = 'active' AND expiry_ts IS NOT NULL AND expiry_ts <= $1
		ORDER BY expiry_ts
		LIMIT $2`

	rows, err := s.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired listings: %w", err)
	}
	listings, err := collect(rows, scanListing)
	if err != nil {
		return nil, fmt.Errorf("scan listings: %w", err)
	}
	return listings, nil
}

func (s *Store) ListClaims(ctx context.Context, wexelID int64) ([]domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE wexel_id = $1 ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, wexelID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	claims, err := collect(rows, scanClaim)
	if err != nil {
		return nil, fmt.Errorf("scan claims: %w", err)
	}
	return claims, nil
}

func (s *Store) ListBoosts(ctx context.Context, wexelID int64) ([]domain.Boost, error) {
	query := `SELECT ` + boostColumns + ` FROM boosts WHERE wexel_id = $1 ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, wexelID)
	if err != nil {
		return nil, fmt.Errorf("list boosts: %w", err)
	}
	boosts, err := collect(rows, scanBoost)
	if err != nil {
		return nil, fmt.Errorf("scan boosts: %w", err)
	}
	return boosts, nil
}
