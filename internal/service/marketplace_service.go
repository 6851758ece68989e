package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const expirySweepBatch = 500

// MarketplaceServiceImpl implements ports.MarketplaceService.
type MarketplaceServiceImpl struct {
	store    ports.LedgerStore
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewMarketplaceService creates a new MarketplaceServiceImpl.
func NewMarketplaceService(store ports.LedgerStore, notifier ports.Notifier, log zerolog.Logger) *MarketplaceServiceImpl {
	return &MarketplaceServiceImpl{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// CreateListing offers the caller's wexel for sale. Collateralized wexels are
// never listable.
func (s *MarketplaceServiceImpl) CreateListing(ctx context.Context, req ports.CreateListingRequest) (*domain.Listing, error) {
	if err := validateListingInput(req); err != nil {
		return nil, err
	}

	var (
		listing *domain.Listing
		box     outbox
	)
	err := s.store.WithinWexel(ctx, req.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		w, err := loadMutableWexel(ctx, tx, req.WexelID)
		if err != nil {
			return err
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}
		if w.IsCollateralized {
			return apperror.ErrCollateralizedWexel()
		}
		active, err := tx.GetActiveListing(ctx, w.ID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get active listing: %w", err))
		}
		if active != nil {
			return apperror.ErrAlreadyListed()
		}

		listing = &domain.Listing{
			ID:        uuid.New(),
			WexelID:   w.ID,
			Seller:    w.Owner(),
			AskPrice:  req.AskPrice,
			Auction:   req.Auction,
			MinBid:    req.MinBid,
			ExpiryTs:  req.ExpiryTs,
			Status:    domain.ListingStatusActive,
			CreatedAt: req.Now,
			UpdatedAt: req.Now,
		}
		if err := tx.CreateListing(ctx, listing); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("create listing: %w", err))
		}
		box.add(domain.NotifyListingCreated, w, listing, req.Now)
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("listing_id", listing.ID.String()).
		Int64("wexel_id", req.WexelID).
		Int64("ask_price", req.AskPrice).
		Msg("listing created successfully")

	return listing, nil
}

// Buy settles a sale: the listing is marked sold and ownership moves to the
// buyer in the same commit. A listing found past its expiry is transitioned
// to expired and the purchase is rejected.
func (s *MarketplaceServiceImpl) Buy(ctx context.Context, req ports.BuyRequest) (*ports.Settlement, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	if req.Buyer == "" {
		return nil, apperror.Validation("buyer is required")
	}
	if req.Price <= 0 {
		return nil, apperror.Validation("price must be > 0")
	}

	found, err := s.store.GetListing(ctx, req.ListingID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get listing: %w", err))
	}
	if found == nil {
		return nil, apperror.ErrListingNotFound()
	}
	if req.WexelID != 0 && req.WexelID != found.WexelID {
		return nil, apperror.Validation("listing does not belong to wexel")
	}

	var (
		result  ports.Settlement
		expired bool
		box     outbox
	)
	err = s.store.WithinWexel(ctx, found.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		l, err := tx.GetListing(ctx, req.ListingID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get listing: %w", err))
		}
		if l == nil {
			return apperror.ErrListingNotFound()
		}

		dup, err := alreadyApplied(ctx, tx, domain.EventListingSold, l.WexelID, req.TxHash)
		if err != nil {
			return err
		}
		if dup {
			w, err := tx.GetWexel(ctx, l.WexelID)
			if err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
			}
			result = ports.Settlement{Listing: l, Wexel: w, Duplicate: true}
			return nil
		}

		if !l.IsActive() {
			return apperror.ErrListingNotActive()
		}
		if l.IsExpiredAt(req.Now) {
			l.Status = domain.ListingStatusExpired
			l.UpdatedAt = req.Now
			if err := tx.UpdateListing(ctx, l); err != nil {
				return apperror.ErrDatabaseError(fmt.Errorf("expire listing: %w", err))
			}
			expired = true
			return nil
		}

		w, err := loadMutableWexel(ctx, tx, l.WexelID)
		if err != nil {
			return err
		}
		if w.IsCollateralized {
			return apperror.ErrCollateralizedWexel()
		}
		if w.IsOwnedBy(req.Buyer) {
			return apperror.Validation("buyer already owns the wexel")
		}
		if req.Price < l.AskPrice {
			return apperror.ErrPriceTooLow()
		}

		previous := w.Owner()
		w.SetOwner(req.Buyer)
		w.UpdatedAt = req.Now

		buyer, price := req.Buyer, req.Price
		l.Status = domain.ListingStatusSold
		l.Buyer = &buyer
		l.SoldPrice = &price
		l.TxHash = strPtr(req.TxHash)
		l.UpdatedAt = req.Now

		if err := tx.UpdateListing(ctx, l); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update listing: %w", err))
		}
		if err := tx.UpdateWexel(ctx, w); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("update wexel: %w", err))
		}
		if err := markApplied(ctx, tx, domain.EventListingSold, w.ID, req.TxHash, req.Now); err != nil {
			return err
		}

		box.add(domain.NotifyListingSold, w, l, req.Now)
		result = ports.Settlement{Listing: l, Wexel: w, PreviousOwner: previous}
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}
	if expired {
		s.log.Info().Str("listing_id", req.ListingID.String()).Msg("listing expired at purchase")
		return nil, apperror.ErrListingExpired()
	}
	if result.Duplicate {
		s.log.Info().Str("listing_id", req.ListingID.String()).Str("tx_hash", req.TxHash).Msg("duplicate sale ignored")
		return &result, nil
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("listing_id", req.ListingID.String()).
		Int64("wexel_id", result.Wexel.ID).
		Int64("price", req.Price).
		Msg("listing sold successfully")

	return &result, nil
}

// Cancel withdraws an active listing. Only the current owner may cancel.
func (s *MarketplaceServiceImpl) Cancel(ctx context.Context, req ports.CancelListingRequest) (*domain.Listing, error) {
	if err := requireNow(req.Now); err != nil {
		return nil, err
	}
	found, err := s.store.GetListing(ctx, req.ListingID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get listing: %w", err))
	}
	if found == nil {
		return nil, apperror.ErrListingNotFound()
	}

	var (
		listing *domain.Listing
		box     outbox
	)
	err = s.store.WithinWexel(ctx, found.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
		l, err := tx.GetListing(ctx, req.ListingID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get listing: %w", err))
		}
		if l == nil {
			return apperror.ErrListingNotFound()
		}
		w, err := tx.GetWexel(ctx, l.WexelID)
		if err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
		}
		if w == nil {
			return apperror.ErrWexelNotFound()
		}
		if err := requireOwner(w, req.Caller); err != nil {
			return err
		}
		if !l.IsActive() {
			return apperror.ErrListingNotActive()
		}

		l.Status = domain.ListingStatusCancelled
		l.UpdatedAt = req.Now
		if err := tx.UpdateListing(ctx, l); err != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("cancel listing: %w", err))
		}
		box.add(domain.NotifyListingCancelled, w, l, req.Now)
		listing = l
		return nil
	})
	if err != nil {
		return nil, asAppError(err)
	}

	box.flush(ctx, s.notifier, s.log)

	s.log.Info().
		Str("listing_id", listing.ID.String()).
		Int64("wexel_id", listing.WexelID).
		Msg("listing cancelled successfully")

	return listing, nil
}

// ExpireListings transitions active listings whose expiry has passed. Each
// listing is re-checked inside its wexel's unit of work.
func (s *MarketplaceServiceImpl) ExpireListings(ctx context.Context, now time.Time) (int, error) {
	if err := requireNow(now); err != nil {
		return 0, err
	}
	candidates, err := s.store.ListExpiredListings(ctx, now, expirySweepBatch)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list expired listings: %w", err))
	}

	var (
		expired int
		errs    []error
	)
	for _, c := range candidates {
		var box outbox
		err := s.store.WithinWexel(ctx, c.WexelID, func(ctx context.Context, tx ports.LedgerTx) error {
			l, err := tx.GetListing(ctx, c.ID)
			if err != nil {
				return err
			}
			if l == nil || !l.IsActive() || !l.IsExpiredAt(now) {
				return nil
			}
			w, err := tx.GetWexel(ctx, l.WexelID)
			if err != nil {
				return err
			}
			l.Status = domain.ListingStatusExpired
			l.UpdatedAt = now
			if err := tx.UpdateListing(ctx, l); err != nil {
				return err
			}
			if w != nil {
				box.add(domain.NotifyListingExpired, w, l, now)
			}
			expired++
			return nil
		})
		if err != nil {
			s.log.Warn().Err(err).Str("listing_id", c.ID.String()).Msg("failed to expire listing")
			errs = append(errs, err)
			continue
		}
		box.flush(ctx, s.notifier, s.log)
	}

	if expired > 0 {
		s.log.Info().Int("expired", expired).Msg("expired listings swept")
	}
	if len(errs) > 0 {
		return expired, apperror.InternalError(errors.Join(errs...))
	}
	return expired, nil
}

func validateListingInput(req ports.CreateListingRequest) error {
	if err := requireNow(req.Now); err != nil {
		return err
	}
	if req.AskPrice <= 0 {
		return apperror.Validation("ask_price must be > 0")
	}
	if req.MinBid != nil {
		if !req.Auction {
			return apperror.Validation("min_bid requires an auction listing")
		}
		if *req.MinBid <= 0 || *req.MinBid > req.AskPrice {
			return apperror.Validation("min_bid must be in (0, ask_price]")
		}
	}
	if req.ExpiryTs != nil && !req.ExpiryTs.After(req.Now) {
		return apperror.Validation("expiry_ts must be in the future")
	}
	return nil
}
