// Package memory provides an in-process LedgerStore for development and tests.
// It is not durable.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Store implements ports.LedgerStore with maps guarded by a RWMutex.
// Per-wexel mutexes serialize units of work; staged writes are applied under
// the store-wide write lock so readers never observe a partial commit.
type Store struct {
	mu         sync.RWMutex
	pools      map[int64]domain.Pool
	nextPoolID int64
	wexels     map[int64]domain.Wexel
	positions  map[uuid.UUID]domain.CollateralPosition
	listings   map[uuid.UUID]domain.Listing
	claims     []domain.Claim
	claimByTx  map[string]int
	boosts     map[int64][]domain.Boost
	processed  map[domain.ProcessedKey]domain.ProcessedEvent

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		pools:     make(map[int64]domain.Pool),
		wexels:    make(map[int64]domain.Wexel),
		positions: make(map[uuid.UUID]domain.CollateralPosition),
		listings:  make(map[uuid.UUID]domain.Listing),
		claimByTx: make(map[string]int),
		boosts:    make(map[int64][]domain.Boost),
		processed: make(map[domain.ProcessedKey]domain.ProcessedEvent),
		locks:     make(map[int64]*sync.Mutex),
	}
}

func (s *Store) wexelLock(id int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// WithinWexel runs fn holding the wexel's lock and commits its staged writes.
func (s *Store) WithinWexel(ctx context.Context, wexelID int64, fn func(ctx context.Context, tx ports.LedgerTx) error) error {
	l := s.wexelLock(wexelID)
	l.Lock()
	defer l.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tx := newTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) commit(tx *ledgerTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkConstraints(tx); err != nil {
		return err
	}

	for id, w := range tx.wexels {
		s.wexels[id] = *w
	}
	for id, p := range tx.positions {
		s.positions[id] = *p
	}
	for id, l := range tx.listings {
		s.listings[id] = *l
	}
	for _, c := range tx.claims {
		s.claims = append(s.claims, c)
		if c.TxHash != nil {
			s.claimByTx[*c.TxHash] = len(s.claims) - 1
		}
	}
	for _, b := range tx.boosts {
		s.boosts[b.WexelID] = append(s.boosts[b.WexelID], b)
	}
	for _, ev := range tx.processed {
		s.processed[ev.Key()] = ev
	}
	return nil
}

// checkConstraints enforces the cross-row uniqueness rules against the
// committed state. Caller holds s.mu.
func (s *Store) checkConstraints(tx *ledgerTx) error {
	for id, p := range tx.positions {
		if !p.IsOpen() {
			continue
		}
		for otherID, other := range s.positions {
			if otherID != id && other.WexelID == p.WexelID && other.IsOpen() {
				if staged, ok := tx.positions[otherID]; ok && !staged.IsOpen() {
					continue
				}
				return fmt.Errorf("open position for wexel %d: %w", p.WexelID, ports.ErrUniqueViolation)
			}
		}
	}
	for id, l := range tx.listings {
		if !l.IsActive() {
			continue
		}
		for otherID, other := range s.listings {
			if otherID != id && other.WexelID == l.WexelID && other.IsActive() {
				if staged, ok := tx.listings[otherID]; ok && !staged.IsActive() {
					continue
				}
				return fmt.Errorf("active listing for wexel %d: %w", l.WexelID, ports.ErrUniqueViolation)
			}
		}
	}
	for _, c := range tx.claims {
		if c.TxHash == nil {
			continue
		}
		if _, ok := s.claimByTx[*c.TxHash]; ok {
			return fmt.Errorf("claim tx_hash %s: %w", *c.TxHash, ports.ErrUniqueViolation)
		}
	}
	for _, ev := range tx.processed {
		if _, ok := s.processed[ev.Key()]; ok {
			return fmt.Errorf("processed event %s: %w", ev.Key(), ports.ErrUniqueViolation)
		}
	}
	return nil
}

// CreatePool inserts a pool. A zero ID is assigned from the sequence.
func (s *Store) CreatePool(_ context.Context, p *domain.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == 0 {
		s.nextPoolID++
		for {
			if _, taken := s.pools[s.nextPoolID]; !taken {
				break
			}
			s.nextPoolID++
		}
		p.ID = s.nextPoolID
	}
	if _, ok := s.pools[p.ID]; ok {
		return fmt.Errorf("pool %d: %w", p.ID, ports.ErrUniqueViolation)
	}
	s.pools[p.ID] = *p
	return nil
}

func (s *Store) UpdatePool(_ context.Context, p *domain.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[p.ID]; !ok {
		return fmt.Errorf("pool %d: %w", p.ID, ports.ErrRowNotFound)
	}
	s.pools[p.ID] = *p
	return nil
}

func (s *Store) GetPool(_ context.Context, id int64) (*domain.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pools[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) ListPools(_ context.Context, activeOnly bool) ([]domain.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pools := lo.Filter(lo.Values(s.pools), func(p domain.Pool, _ int) bool {
		return !activeOnly || p.IsActive
	})
	sort.Slice(pools, func(i, j int) bool { return pools[i].ID < pools[j].ID })
	return pools, nil
}

func (s *Store) GetWexel(_ context.Context, id int64) (*domain.Wexel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wexels[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (s *Store) IsProcessed(_ context.Context, key domain.ProcessedKey) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.processed[key]
	return ok, nil
}

// Snapshot reads the wexel and its gating rows under one read lock.
func (s *Store) Snapshot(_ context.Context, wexelID int64) (*domain.WexelSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wexels[wexelID]
	if !ok {
		return nil, nil
	}
	snap := &domain.WexelSnapshot{Wexel: w}
	if p, ok := s.pools[w.PoolID]; ok {
		snap.Pool = &p
	}
	snap.Position = s.openPositionLocked(wexelID)
	snap.ActiveListing = s.activeListingLocked(wexelID)
	sum, err := sumBoostValue(0, s.boosts[wexelID])
	if err != nil {
		return nil, err
	}
	snap.BoostValueUSD = sum
	return snap, nil
}

// sumBoostValue adds the boosts' USD values to sum, failing on overflow.
func sumBoostValue(sum int64, boosts []domain.Boost) (int64, error) {
	for _, b := range boosts {
		var err error
		if sum, err = domain.Add(sum, b.ValueUSD); err != nil {
			return 0, fmt.Errorf("sum boost value: %w", err)
		}
	}
	return sum, nil
}

func (s *Store) ListWexelsByOwner(_ context.Context, owner string) ([]domain.Wexel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wexels := lo.Filter(lo.Values(s.wexels), func(w domain.Wexel, _ int) bool {
		return w.IsOwnedBy(owner)
	})
	sort.Slice(wexels, func(i, j int) bool { return wexels[i].ID < wexels[j].ID })
	return wexels, nil
}

func (s *Store) GetListing(_ context.Context, id uuid.UUID) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// ListActiveListings returns active listings newest first.
func (s *Store) ListActiveListings(_ context.Context, f domain.ListingFilter) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := lo.Filter(lo.Values(s.listings), func(l domain.Listing, _ int) bool {
		if !l.IsActive() {
			return false
		}
		if f.MaxPrice != nil && l.AskPrice > *f.MaxPrice {
			return false
		}
		w, ok := s.wexels[l.WexelID]
		if !ok {
			return false
		}
		if f.PoolID != nil && w.PoolID != *f.PoolID {
			return false
		}
		if f.MinAPYBP != nil && w.TotalAPYBP() < *f.MinAPYBP {
			return false
		}
		return true
	})
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ID.String() < listings[j].ID.String()
		}
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return paginate(listings, f.Offset, f.Limit), nil
}

// ListExpiredListings returns active listings whose expiry is at or before now.
func (s *Store) ListExpiredListings(_ context.Context, now time.Time, limit int) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := lo.Filter(lo.Values(s.listings), func(l domain.Listing, _ int) bool {
		return l.IsActive() && l.IsExpiredAt(now)
	})
	sort.Slice(listings, func(i, j int) bool { return listings[i].ExpiryTs.Before(*listings[j].ExpiryTs) })
	return paginate(listings, 0, limit), nil
}

func (s *Store) ListClaims(_ context.Context, wexelID int64) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(s.claims, func(c domain.Claim, _ int) bool { return c.WexelID == wexelID }), nil
}

func (s *Store) ListBoosts(_ context.Context, wexelID int64) ([]domain.Boost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Boost(nil), s.boosts[wexelID]...), nil
}

func (s *Store) openPositionLocked(wexelID int64) *domain.CollateralPosition {
	for _, p := range s.positions {
		if p.WexelID == wexelID && p.IsOpen() {
			return &p
		}
	}
	return nil
}

func (s *Store) activeListingLocked(wexelID int64) *domain.Listing {
	for _, l := range s.listings {
		if l.WexelID == wexelID && l.IsActive() {
			return &l
		}
	}
	return nil
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
