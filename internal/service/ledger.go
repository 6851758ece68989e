package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// outbox collects notifications inside a unit of work. They are published
// only after the commit succeeds.
type outbox struct {
	items []domain.Notification
}

func (o *outbox) add(typ domain.NotificationType, w *domain.Wexel, data any, at time.Time) {
	o.items = append(o.items, domain.Notification{
		Type:       typ,
		WexelID:    w.ID,
		Owner:      w.Owner(),
		Data:       data,
		OccurredAt: at,
	})
}

// flush publishes best-effort. A failed publish never affects the ledger.
func (o *outbox) flush(ctx context.Context, n ports.Notifier, log zerolog.Logger) {
	if n == nil {
		return
	}
	for _, item := range o.items {
		if err := n.Notify(ctx, item); err != nil {
			log.Warn().Err(err).
				Str("type", string(item.Type)).
				Int64("wexel_id", item.WexelID).
				Msg("failed to publish notification")
		}
	}
	o.items = nil
}

// loadMutableWexel reads the wexel inside a unit of work and rejects
// finalized wexels.
func loadMutableWexel(ctx context.Context, tx ports.LedgerTx, id int64) (*domain.Wexel, error) {
	w, err := tx.GetWexel(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wexel: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrWexelNotFound()
	}
	if w.IsFinalized() {
		return nil, apperror.ErrWexelFinalized()
	}
	return w, nil
}

func requireOwner(w *domain.Wexel, caller string) error {
	if !w.IsOwnedBy(caller) {
		return apperror.ErrUnauthorized()
	}
	return nil
}

func requireNow(now time.Time) error {
	if now.IsZero() {
		return apperror.Validation("now is required")
	}
	return nil
}

// alreadyApplied reports whether the tx hash was applied for this kind. An
// empty hash is never a duplicate.
func alreadyApplied(ctx context.Context, tx ports.LedgerTx, kind domain.EventKind, wexelID int64, txHash string) (bool, error) {
	if txHash == "" {
		return false, nil
	}
	seen, err := tx.IsProcessed(ctx, domain.ProcessedKey{WexelID: wexelID, Kind: kind, TxHash: txHash})
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("check processed: %w", err))
	}
	return seen, nil
}

// markApplied records the tx hash in the same commit as the mutation.
func markApplied(ctx context.Context, tx ports.LedgerTx, kind domain.EventKind, wexelID int64, txHash string, now time.Time) error {
	if txHash == "" {
		return nil
	}
	ev := &domain.ProcessedEvent{WexelID: wexelID, Kind: kind, TxHash: txHash, ProcessedAt: now}
	if err := tx.MarkProcessed(ctx, ev); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("mark processed: %w", err))
	}
	return nil
}

// arithmetic maps a checked-math failure to the ledger's Overflow error. Any
// overflow means the ledger state is unsound and the operation must stop.
func arithmetic(log zerolog.Logger, op string, err error) error {
	if errors.Is(err, domain.ErrOverflow) || errors.Is(err, domain.ErrNegativeOperand) {
		log.Error().Err(err).Str("op", op).Msg("ledger arithmetic failed")
		return apperror.ErrOverflow(op)
	}
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

// storeError maps a failed store read. Sums the store overflowed on surface as
// arithmetic errors rather than database errors.
func storeError(log zerolog.Logger, op string, err error) error {
	if errors.Is(err, domain.ErrOverflow) {
		return arithmetic(log, op, err)
	}
	return apperror.ErrDatabaseError(fmt.Errorf("%s: %w", op, err))
}

// asAppError passes AppErrors through and wraps anything else from the store.
func asAppError(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.ErrDatabaseError(err)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
