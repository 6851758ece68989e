package service

import (
	"context"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

const maxListingPageSize = 200

// QueryServiceImpl implements ports.QueryService. Every read goes through a
// committed snapshot and never blocks writers.
type QueryServiceImpl struct {
	store      ports.LedgerStore
	collateral ports.CollateralService
	log        zerolog.Logger
}

// NewQueryService creates a new QueryServiceImpl.
func NewQueryService(store ports.LedgerStore, collateral ports.CollateralService, log zerolog.Logger) *QueryServiceImpl {
	return &QueryServiceImpl{
		store:      store,
		collateral: collateral,
		log:        log,
	}
}

func (s *QueryServiceImpl) GetWexel(ctx context.Context, id int64) (*domain.WexelSnapshot, error) {
	snap, err := s.store.Snapshot(ctx, id)
	if err != nil {
		return nil, storeError(s.log, "snapshot wexel", err)
	}
	if snap == nil {
		return nil, apperror.ErrWexelNotFound()
	}
	return snap, nil
}

// EstimateRewards evaluates the accrual formula at now without settling.
func (s *QueryServiceImpl) EstimateRewards(ctx context.Context, id int64, now time.Time) (*domain.Accrual, error) {
	if err := requireNow(now); err != nil {
		return nil, err
	}
	w, err := s.store.GetWexel(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWexelNotFound()
	}
	acc, err := domain.ComputeAccrual(w, now)
	if err != nil {
		return nil, arithmetic(s.log, "accrual", err)
	}
	return &acc, nil
}

func (s *QueryServiceImpl) EstimateLoan(ctx context.Context, id int64) (*ports.LoanQuote, error) {
	return s.collateral.Quote(ctx, id)
}

func (s *QueryServiceImpl) ListActiveListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if filter.Limit <= 0 || filter.Limit > maxListingPageSize {
		filter.Limit = maxListingPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	listings, err := s.store.ListActiveListings(ctx, filter)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list listings: %w", err))
	}
	return listings, nil
}

// Portfolio sums accruals across the owner's live wexels. Finalized wexels
// are excluded.
func (s *QueryServiceImpl) Portfolio(ctx context.Context, owner string, now time.Time) (*ports.Portfolio, error) {
	if err := requireNow(now); err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, apperror.Validation("owner is required")
	}
	wexels, err := s.store.ListWexelsByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list wexels: %w", err))
	}

	p := &ports.Portfolio{Owner: owner, Wexels: make([]domain.Accrual, 0, len(wexels))}
	for i := range wexels {
		w := &wexels[i]
		if w.IsFinalized() {
			continue
		}
		acc, err := domain.ComputeAccrual(w, now)
		if err != nil {
			return nil, arithmetic(s.log, "accrual", err)
		}
		if p.TotalPrincipal, err = domain.Add(p.TotalPrincipal, w.Principal); err != nil {
			return nil, arithmetic(s.log, "portfolio principal", err)
		}
		if p.TotalPending, err = domain.Add(p.TotalPending, acc.Pending); err != nil {
			return nil, arithmetic(s.log, "portfolio pending", err)
		}
		if p.TotalClaimed, err = domain.Add(p.TotalClaimed, w.TotalClaimed); err != nil {
			return nil, arithmetic(s.log, "portfolio claimed", err)
		}
		if w.IsCollateralized {
			p.Collateralized++
		}
		p.Wexels = append(p.Wexels, acc)
	}
	return p, nil
}

func (s *QueryServiceImpl) BoostStats(ctx context.Context, id int64) (*domain.BoostStats, error) {
	snap, err := s.GetWexel(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap.Pool == nil {
		return nil, apperror.ErrPoolNotFound()
	}
	boosts, err := s.store.ListBoosts(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list boosts: %w", err))
	}
	stats, err := domain.ComputeBoostStats(&snap.Wexel, snap.Pool, boosts)
	if err != nil {
		return nil, arithmetic(s.log, "boost stats", err)
	}
	return &stats, nil
}

func (s *QueryServiceImpl) ListClaims(ctx context.Context, id int64) ([]domain.Claim, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	claims, err := s.store.ListClaims(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list claims: %w", err))
	}
	return claims, nil
}

func (s *QueryServiceImpl) ListBoosts(ctx context.Context, id int64) ([]domain.Boost, error) {
	if err := s.exists(ctx, id); err != nil {
		return nil, err
	}
	boosts, err := s.store.ListBoosts(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list boosts: %w", err))
	}
	return boosts, nil
}

func (s *QueryServiceImpl) exists(ctx context.Context, id int64) error {
	w, err := s.store.GetWexel(ctx, id)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
	}
	if w == nil {
		return apperror.ErrWexelNotFound()
	}
	return nil
}
