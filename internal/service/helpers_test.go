package service

import (
	"context"
	"testing"
	"time"

	"wexel-ledger/internal/adapter/storage/memory"
	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/internal/core/ports/mocks"
	"wexel-ledger/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	solOwner  = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	solBuyer  = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	tronOwner = "TLa2f6VPqDgRE67v1736s7bJ8Ray5wYjU7"

	laikaMint  = "LaikaMint1111111111111111111111111111111111"
	takaraMint = "TakaraMint111111111111111111111111111111111"

	principal = int64(1_000_000_000) // $1,000
	day       = 24 * time.Hour
)

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var testTokens = map[string]domain.BoostToken{
	laikaMint:  {Mint: laikaMint, Symbol: "LAIKA", Class: domain.TokenClassDiscountedMarket, DiscountBP: 1500},
	takaraMint: {Mint: takaraMint, Symbol: "TAKARA", Class: domain.TokenClassFixedInternal, FixedPriceUSD: 1_000_000},
}

// ledgerFixture wires every engine over one in-memory store.
type ledgerFixture struct {
	ctrl        *gomock.Controller
	store       *memory.Store
	prices      *mocks.MockPriceSource
	notifier    *mocks.MockNotifier
	accrual     *AccrualServiceImpl
	boosts      *BoostServiceImpl
	collateral  *CollateralServiceImpl
	marketplace *MarketplaceServiceImpl
	deposits    *DepositServiceImpl
	query       *QueryServiceImpl
}

func setupLedger(t *testing.T) *ledgerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	tokens := mocks.NewMockTokenRegistry(ctrl)
	tokens.EXPECT().Token(gomock.Any()).DoAndReturn(func(mint string) (domain.BoostToken, bool) {
		tok, ok := testTokens[mint]
		return tok, ok
	}).AnyTimes()

	f := &ledgerFixture{
		ctrl:     ctrl,
		store:    memory.NewStore(),
		prices:   mocks.NewMockPriceSource(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	log := zerolog.Nop()
	f.accrual = NewAccrualService(f.store, f.notifier, log)
	f.boosts = NewBoostService(f.store, f.prices, tokens, f.notifier, 5*time.Minute, log)
	f.collateral = NewCollateralService(f.store, f.notifier, 0, log)
	f.marketplace = NewMarketplaceService(f.store, f.notifier, log)
	f.deposits = NewDepositService(f.store, f.notifier, log)
	f.query = NewQueryService(f.store, f.collateral, log)
	return f
}

// quiet accepts any number of notifications.
func (f *ledgerFixture) quiet() *ledgerFixture {
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return f
}

// seedPool creates pool 1: 18% APY, 12 months, $100 minimum.
func (f *ledgerFixture) seedPool(t *testing.T) *domain.Pool {
	t.Helper()
	pool, err := f.deposits.CreatePool(context.Background(), ports.CreatePoolRequest{
		APYBaseBP:  1800,
		LockMonths: 12,
		MinDeposit: 100_000_000,
		Now:        t0,
	})
	require.NoError(t, err)
	return pool
}

// seedWexel confirms a $1,000 deposit into pool 1 starting at t0.
func (f *ledgerFixture) seedWexel(t *testing.T, id int64, owner string) *domain.Wexel {
	t.Helper()
	res, err := f.deposits.ConfirmDeposit(context.Background(), ports.DepositRequest{
		WexelID:   id,
		PoolID:    1,
		Owner:     owner,
		Principal: principal,
		StartTs:   t0,
		Now:       t0,
	})
	require.NoError(t, err)
	return res.Wexel
}

func (f *ledgerFixture) wexel(t *testing.T, id int64) *domain.Wexel {
	t.Helper()
	w, err := f.store.GetWexel(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, w)
	return w
}

func ptr[T any](v T) *T { return &v }

// assertAppError checks that err is an AppError with the expected code.
func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
