package memory

import (
	"context"
	"fmt"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ledgerTx stages writes for one unit of work. Reads see staged rows first,
// then committed rows.
type ledgerTx struct {
	s         *Store
	wexels    map[int64]*domain.Wexel
	positions map[uuid.UUID]*domain.CollateralPosition
	listings  map[uuid.UUID]*domain.Listing
	claims    []domain.Claim
	boosts    []domain.Boost
	processed []domain.ProcessedEvent
}

var _ ports.LedgerTx = (*ledgerTx)(nil)

func newTx(s *Store) *ledgerTx {
	return &ledgerTx{
		s:         s,
		wexels:    make(map[int64]*domain.Wexel),
		positions: make(map[uuid.UUID]*domain.CollateralPosition),
		listings:  make(map[uuid.UUID]*domain.Listing),
	}
}

func (t *ledgerTx) GetWexel(_ context.Context, id int64) (*domain.Wexel, error) {
	if w, ok := t.wexels[id]; ok {
		cp := *w
		return &cp, nil
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	w, ok := t.s.wexels[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (t *ledgerTx) CreateWexel(ctx context.Context, w *domain.Wexel) error {
	existing, _ := t.GetWexel(ctx, w.ID)
	if existing != nil {
		return fmt.Errorf("wexel %d: %w", w.ID, ports.ErrUniqueViolation)
	}
	cp := *w
	t.wexels[w.ID] = &cp
	return nil
}

func (t *ledgerTx) UpdateWexel(ctx context.Context, w *domain.Wexel) error {
	existing, _ := t.GetWexel(ctx, w.ID)
	if existing == nil {
		return fmt.Errorf("wexel %d: %w", w.ID, ports.ErrRowNotFound)
	}
	cp := *w
	t.wexels[w.ID] = &cp
	return nil
}

func (t *ledgerTx) GetPool(ctx context.Context, id int64) (*domain.Pool, error) {
	return t.s.GetPool(ctx, id)
}

func (t *ledgerTx) GetLatestPosition(_ context.Context, wexelID int64) (*domain.CollateralPosition, error) {
	merged := make(map[uuid.UUID]domain.CollateralPosition)
	t.s.mu.RLock()
	for id, p := range t.s.positions {
		if p.WexelID == wexelID {
			merged[id] = p
		}
	}
	t.s.mu.RUnlock()
	for id, p := range t.positions {
		if p.WexelID == wexelID {
			merged[id] = *p
		}
	}

	var latest *domain.CollateralPosition
	for _, p := range merged {
		if p.IsOpen() {
			return &p, nil
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = &p
		}
	}
	return latest, nil
}

func (t *ledgerTx) CreatePosition(_ context.Context, p *domain.CollateralPosition) error {
	cp := *p
	t.positions[p.ID] = &cp
	return nil
}

func (t *ledgerTx) UpdatePosition(_ context.Context, p *domain.CollateralPosition) error {
	if _, ok := t.positions[p.ID]; !ok {
		t.s.mu.RLock()
		_, ok = t.s.positions[p.ID]
		t.s.mu.RUnlock()
		if !ok {
			return fmt.Errorf("position %s: %w", p.ID, ports.ErrRowNotFound)
		}
	}
	cp := *p
	t.positions[p.ID] = &cp
	return nil
}

func (t *ledgerTx) GetListing(_ context.Context, id uuid.UUID) (*domain.Listing, error) {
	if l, ok := t.listings[id]; ok {
		cp := *l
		return &cp, nil
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	l, ok := t.s.listings[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (t *ledgerTx) GetActiveListing(_ context.Context, wexelID int64) (*domain.Listing, error) {
	for _, l := range t.listings {
		if l.WexelID == wexelID && l.IsActive() {
			cp := *l
			return &cp, nil
		}
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	for id, l := range t.s.listings {
		if l.WexelID != wexelID || !l.IsActive() {
			continue
		}
		if _, staged := t.listings[id]; staged {
			continue
		}
		return &l, nil
	}
	return nil, nil
}

func (t *ledgerTx) CreateListing(_ context.Context, l *domain.Listing) error {
	cp := *l
	t.listings[l.ID] = &cp
	return nil
}

func (t *ledgerTx) UpdateListing(ctx context.Context, l *domain.Listing) error {
	existing, _ := t.GetListing(ctx, l.ID)
	if existing == nil {
		return fmt.Errorf("listing %s: %w", l.ID, ports.ErrRowNotFound)
	}
	cp := *l
	t.listings[l.ID] = &cp
	return nil
}

func (t *ledgerTx) GetClaimByTxHash(_ context.Context, txHash string) (*domain.Claim, error) {
	for _, c := range t.claims {
		if c.TxHash != nil && *c.TxHash == txHash {
			cp := c
			return &cp, nil
		}
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	idx, ok := t.s.claimByTx[txHash]
	if !ok {
		return nil, nil
	}
	c := t.s.claims[idx]
	return &c, nil
}

func (t *ledgerTx) CreateClaim(_ context.Context, c *domain.Claim) error {
	t.claims = append(t.claims, *c)
	return nil
}

func (t *ledgerTx) SumBoostValue(_ context.Context, wexelID int64) (int64, error) {
	staged := lo.Filter(t.boosts, func(b domain.Boost, _ int) bool { return b.WexelID == wexelID })
	sum, err := sumBoostValue(0, staged)
	if err != nil {
		return 0, err
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	return sumBoostValue(sum, t.s.boosts[wexelID])
}

func (t *ledgerTx) CreateBoost(_ context.Context, b *domain.Boost) error {
	t.boosts = append(t.boosts, *b)
	return nil
}

func (t *ledgerTx) IsProcessed(_ context.Context, key domain.ProcessedKey) (bool, error) {
	for _, ev := range t.processed {
		if ev.Key() == key {
			return true, nil
		}
	}
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	_, ok := t.s.processed[key]
	return ok, nil
}

func (t *ledgerTx) MarkProcessed(_ context.Context, ev *domain.ProcessedEvent) error {
	t.processed = append(t.processed, *ev)
	return nil
}
