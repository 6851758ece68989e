package postgres

import (
	"errors"

	"wexel-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	poolColumns = `id, apy_base_bp, lock_months, min_deposit, boost_target_bp, boost_max_bp,
		is_active, created_at, updated_at`

	wexelColumns = `id, owner_solana, owner_tron, pool_id, principal, apy_base_bp, apy_boost_bp,
		start_ts, end_ts, is_collateralized, total_claimed, finalized_at, created_at, updated_at`

	positionColumns = `id, wexel_id, loan_amount, start_ts, repaid, repaid_amount, repaid_at,
		tx_hash, created_at, updated_at`

	listingColumns = `id, wexel_id, seller, ask_price, auction, min_bid, expiry_ts, status,
		buyer, sold_price, tx_hash, created_at, updated_at`

	claimColumns = `id, wexel_id, amount, claim_type, tx_hash, created_at`

	boostColumns = `id, wexel_id, token_mint, amount, price_usd, value_usd, apy_boost_bp,
		tx_hash, created_at`
)

// noRows turns pgx.ErrNoRows into the (nil, nil) not-found convention.
func noRows[T any](v *T, err error) (*T, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func scanPool(row rowScanner) (*domain.Pool, error) {
	var p domain.Pool
	err := row.Scan(
		&p.ID, &p.APYBaseBP, &p.LockMonths, &p.MinDeposit, &p.BoostTargetBP, &p.BoostMaxBP,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return &p, err
}

func scanWexel(row rowScanner) (*domain.Wexel, error) {
	var w domain.Wexel
	err := row.Scan(
		&w.ID, &w.OwnerSolana, &w.OwnerTron, &w.PoolID, &w.Principal, &w.APYBaseBP, &w.APYBoostBP,
		&w.StartTs, &w.EndTs, &w.IsCollateralized, &w.TotalClaimed, &w.FinalizedAt,
		&w.CreatedAt, &w.UpdatedAt,
	)
	return &w, err
}

func scanPosition(row rowScanner) (*domain.CollateralPosition, error) {
	var p domain.CollateralPosition
	err := row.Scan(
		&p.ID, &p.WexelID, &p.LoanAmount, &p.StartTs, &p.Repaid, &p.RepaidAmount, &p.RepaidAt,
		&p.TxHash, &p.CreatedAt, &p.UpdatedAt,
	)
	return &p, err
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var (
		l      domain.Listing
		status string
	)
	err := row.Scan(
		&l.ID, &l.WexelID, &l.Seller, &l.AskPrice, &l.Auction, &l.MinBid, &l.ExpiryTs, &status,
		&l.Buyer, &l.SoldPrice, &l.TxHash, &l.CreatedAt, &l.UpdatedAt,
	)
	l.Status = domain.ListingStatus(status)
	return &l, err
}

func scanClaim(row rowScanner) (*domain.Claim, error) {
	var (
		c         domain.Claim
		claimType string
	)
	err := row.Scan(&c.ID, &c.WexelID, &c.Amount, &claimType, &c.TxHash, &c.CreatedAt)
	c.ClaimType = domain.ClaimType(claimType)
	return &c, err
}

func scanBoost(row rowScanner) (*domain.Boost, error) {
	var b domain.Boost
	err := row.Scan(
		&b.ID, &b.WexelID, &b.TokenMint, &b.Amount, &b.PriceUSD, &b.ValueUSD, &b.APYBoostBP,
		&b.TxHash, &b.CreatedAt,
	)
	return &b, err
}

// collect drains rows through scan. Rows are always closed.
func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}
