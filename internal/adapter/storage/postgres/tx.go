package postgres

import (
	"context"
	"fmt"

	"wexel-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// ledgerTx implements ports.LedgerTx on top of a pgx transaction that holds
// the wexel's advisory lock.
type ledgerTx struct {
	q querier
}

func (t *ledgerTx) GetWexel(ctx context.Context, id int64) (*domain.Wexel, error) {
	return getWexel(ctx, t.q, id)
}

func (t *ledgerTx) CreateWexel(ctx context.Context, w *domain.Wexel) error {
	query := `
		INSERT INTO wexels (` + wexelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := t.q.Exec(ctx, query,
		w.ID, w.OwnerSolana, w.OwnerTron, w.PoolID, w.Principal, w.APYBaseBP, w.APYBoostBP,
		w.StartTs, w.EndTs, w.IsCollateralized, w.TotalClaimed, w.FinalizedAt,
		w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return translate("insert wexel", err)
	}
	return nil
}

func (t *ledgerTx) UpdateWexel(ctx context.Context, w *domain.Wexel) error {
	query := `
		UPDATE wexels
		SET owner_solana = $2, owner_tron = $3, apy_boost_bp = $4, is_collateralized = $5,
			total_claimed = $6, finalized_at = $7, updated_at = $8
		WHERE id = $1`

	tag, err := t.q.Exec(ctx, query,
		w.ID, w.OwnerSolana, w.OwnerTron, w.APYBoostBP, w.IsCollateralized,
		w.TotalClaimed, w.FinalizedAt, w.UpdatedAt,
	)
	if err != nil {
		return translate("update wexel", err)
	}
	return requireAffected("update wexel", tag)
}

func (t *ledgerTx) GetPool(ctx context.Context, id int64) (*domain.Pool, error) {
	return getPool(ctx, t.q, id)
}

func (t *ledgerTx) GetLatestPosition(ctx context.Context, wexelID int64) (*domain.CollateralPosition, error) {
	query := `
		SELECT ` + positionColumns + `
		FROM collateral_positions
		WHERE wexel_id = $1
		ORDER BY repaid ASC, created_at DESC
		LIMIT 1`

	p, err := noRows(scanPosition(t.q.QueryRow(ctx, query, wexelID)))
	if err != nil {
		return nil, fmt.Errorf("get latest position: %w", err)
	}
	return p, nil
}

func (t *ledgerTx) CreatePosition(ctx context.Context, p *domain.CollateralPosition) error {
	query := `
		INSERT INTO collateral_positions (` + positionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := t.q.Exec(ctx, query,
		p.ID, p.WexelID, p.LoanAmount, p.StartTs, p.Repaid, p.RepaidAmount, p.RepaidAt,
		p.TxHash, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return translate("insert position", err)
	}
	return nil
}

func (t *ledgerTx) UpdatePosition(ctx context.Context, p *domain.CollateralPosition) error {
	query := `
		UPDATE collateral_positions
		SET repaid = $2, repaid_amount = $3, repaid_at = $4, updated_at = $5
		WHERE id = $1`

	tag, err := t.q.Exec(ctx, query, p.ID, p.Repaid, p.RepaidAmount, p.RepaidAt, p.UpdatedAt)
	if err != nil {
		return translate("update position", err)
	}
	return requireAffected("update position", tag)
}

func (t *ledgerTx) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return getListing(ctx, t.q, id)
}

func (t *ledgerTx) GetActiveListing(ctx context.Context, wexelID int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE wexel_id = $1 AND status = 'active'`

	l, err := noRows(scanListing(t.q.QueryRow(ctx, query, wexelID)))
	if err != nil {
		return nil, fmt.Errorf("get active listing: %w", err)
	}
	return l, nil
}

func (t *ledgerTx) CreateListing(ctx context.Context, l *domain.Listing) error {
	query := `
		INSERT INTO listings (` + listingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := t.q.Exec(ctx, query,
		l.ID, l.WexelID, l.Seller, l.AskPrice, l.Auction, l.MinBid, l.ExpiryTs, string(l.Status),
		l.Buyer, l.SoldPrice, l.TxHash, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return translate("insert listing", err)
	}
	return nil
}

func (t *ledgerTx) UpdateListing(ctx context.Context, l *domain.Listing) error {
	query := `
		UPDATE listings
		SET status = $2, buyer = $3, sold_price = $4, tx_hash = $5, updated_at = $6
		WHERE id = $1`

	tag, err := t.q.Exec(ctx, query, l.ID, string(l.Status), l.Buyer, l.SoldPrice, l.TxHash, l.UpdatedAt)
	if err != nil {
		return translate("update listing", err)
	}
	return requireAffected("update listing", tag)
}

func (t *ledgerTx) GetClaimByTxHash(ctx context.Context, txHash string) (*domain.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE tx_hash = $1`

	c, err := noRows(scanClaim(t.q.QueryRow(ctx, query, txHash)))
	if err != nil {
		return nil, fmt.Errorf("get claim by tx hash: %w", err)
	}
	return c, nil
}

func (t *ledgerTx) CreateClaim(ctx context.Context, c *domain.Claim) error {
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := t.q.Exec(ctx, query, c.ID, c.WexelID, c.Amount, string(c.ClaimType), c.TxHash, c.CreatedAt)
	if err != nil {
		return translate("insert claim", err)
	}
	return nil
}

func (t *ledgerTx) SumBoostValue(ctx context.Context, wexelID int64) (int64, error) {
	return sumBoostValue(ctx, t.q, wexelID)
}

func (t *ledgerTx) CreateBoost(ctx context.Context, b *domain.Boost) error {
	query := `
		INSERT INTO boosts (` + boostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := t.q.Exec(ctx, query,
		b.ID, b.WexelID, b.TokenMint, b.Amount, b.PriceUSD, b.ValueUSD, b.APYBoostBP,
		b.TxHash, b.CreatedAt,
	)
	if err != nil {
		return translate("insert boost", err)
	}
	return nil
}

func (t *ledgerTx) IsProcessed(ctx context.Context, key domain.ProcessedKey) (bool, error) {
	return isProcessed(ctx, t.q, key)
}

func isProcessed(ctx context.Context, q querier, key domain.ProcessedKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM processed_events WHERE wexel_id = $1 AND kind = $2 AND tx_hash = $3
		)`

	var exists bool
	if err := q.QueryRow(ctx, query, key.WexelID, string(key.Kind), key.TxHash).Scan(&exists); err != nil {
		return false, fmt.Errorf("check processed event: %w", err)
	}
	return exists, nil
}

func (t *ledgerTx) MarkProcessed(ctx context.Context, ev *domain.ProcessedEvent) error {
	query := `
		INSERT INTO processed_events (wexel_id, kind, tx_hash, processed_at)
		VALUES ($1, $2, $3, $4)`

	_, err := t.q.Exec(ctx, query, ev.WexelID, string(ev.Kind), ev.TxHash, ev.ProcessedAt)
	if err != nil {
		return translate("insert processed event", err)
	}
	return nil
}

func getWexel(ctx context.Context, q querier, id int64) (*domain.Wexel, error) {
	query := `SELECT ` + wexelColumns + ` FROM wexels WHERE id = $1`

	w, err := noRows(scanWexel(q.QueryRow(ctx, query, id)))
	if err != nil {
		return nil, fmt.Errorf("get wexel: %w", err)
	}
	return w, nil
}

func getPool(ctx context.Context, q querier, id int64) (*domain.Pool, error) {
	query := `SELECT ` + poolColumns + ` FROM pools WHERE id = $1`

	p, err := noRows(scanPool(q.QueryRow(ctx, query, id)))
	if err != nil {
		return nil, fmt.Errorf("get pool: %w", err)
	}
	return p, nil
}

func getListing(ctx context.Context, q querier, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	l, err := noRows(scanListing(q.QueryRow(ctx, query, id)))
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func sumBoostValue(ctx context.Context, q querier, wexelID int64) (int64, error) {
	var total int64
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(value_usd), 0)::BIGINT FROM boosts WHERE wexel_id = $1`, wexelID).
		Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum boost value: %w", err)
	}
	return total, nil
}

