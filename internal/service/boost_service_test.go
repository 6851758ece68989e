package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func laikaQuote(price int64, at time.Time) *domain.PriceQuote {
	return &domain.PriceQuote{Mint: laikaMint, PriceUSD: price, ObservedAt: at, Source: "test"}
}

func TestBoostService_ApplyBoost_TargetReachesCap_ScenarioC(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)

	// Fixed-internal tokens never consult the price source.
	res, err := f.boosts.ApplyBoost(context.Background(), ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: takaraMint, Amount: 300_000_000, Now: t0.Add(day),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300_000_000), res.Boost.ValueUSD)
	assert.Equal(t, 500, res.Boost.APYBoostBP)
	assert.Equal(t, 500, res.Wexel.APYBoostBP)
	assert.Equal(t, 500, f.wexel(t, 1).APYBoostBP)
}

func TestBoostService_ApplyBoost_CumulativeIncrements(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()

	apply := func(amount int64) *ports.BoostResult {
		res, err := f.boosts.ApplyBoost(ctx, ports.ApplyBoostRequest{
			WexelID: 1, Caller: solOwner, TokenMint: takaraMint, Amount: amount, Now: t0.Add(day),
		})
		require.NoError(t, err)
		return res
	}

	first := apply(100_000_000)
	assert.Equal(t, 166, first.Boost.APYBoostBP)
	assert.Equal(t, 166, first.Wexel.APYBoostBP)

	second := apply(100_000_000)
	assert.Equal(t, 167, second.Boost.APYBoostBP)
	assert.Equal(t, 333, second.Wexel.APYBoostBP)

	// Over-deposit is recorded but never exceeds the cap.
	third := apply(400_000_000)
	assert.Equal(t, 167, third.Boost.APYBoostBP)
	assert.Equal(t, 500, third.Wexel.APYBoostBP)

	fourth := apply(100_000_000)
	assert.Equal(t, 0, fourth.Boost.APYBoostBP)
	assert.Equal(t, 500, fourth.Wexel.APYBoostBP)

	boosts, err := f.store.ListBoosts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, boosts, 4)
}

func TestBoostService_ApplyBoost_DiscountedMarketPrice(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	now := t0.Add(day)

	f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(laikaQuote(2_000_000, now.Add(-time.Minute)), nil)

	res, err := f.boosts.ApplyBoost(context.Background(), ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 50_000_000, Now: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000), res.Boost.PriceUSD)
	assert.Equal(t, int64(85_000_000), res.Boost.ValueUSD)
	assert.Equal(t, 141, res.Wexel.APYBoostBP)
}

func TestBoostService_ApplyBoost_RaisesAccrualRate(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)

	_, err := f.boosts.ApplyBoost(context.Background(), ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: takaraMint, Amount: 300_000_000, Now: t0,
	})
	require.NoError(t, err)

	// floor(1e9 × 2300 / 3_650_000)
	acc, err := f.query.EstimateRewards(context.Background(), 1, t0.Add(day))
	require.NoError(t, err)
	assert.Equal(t, 2300, acc.TotalAPYBP)
	assert.Equal(t, int64(630_136), acc.DailyReward)
}

func TestBoostService_ApplyBoost_PriceUnavailable(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()
	now := t0.Add(day)

	tests := []struct {
		name  string
		quote *domain.PriceQuote
		err   error
	}{
		{"source error", nil, errors.New("oracle down")},
		{"no quote", nil, nil},
		{"zero price", laikaQuote(0, now), nil},
		{"stale", laikaQuote(2_000_000, now.Add(-10*time.Minute)), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(tt.quote, tt.err)
			_, err := f.boosts.ApplyBoost(ctx, ports.ApplyBoostRequest{
				WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 50_000_000, Now: now,
			})
			assertAppError(t, err, "PRC_001")
		})
	}

	assert.Equal(t, 0, f.wexel(t, 1).APYBoostBP)
	boosts, err := f.store.ListBoosts(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, boosts)
}

func TestBoostService_ApplyBoost_Errors(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()
	now := t0.Add(day)

	tests := []struct {
		name string
		req  ports.ApplyBoostRequest
		code string
	}{
		{"unsupported token", ports.ApplyBoostRequest{WexelID: 1, Caller: solOwner, TokenMint: "Unknown", Amount: 1, Now: now}, "BST_001"},
		{"zero amount", ports.ApplyBoostRequest{WexelID: 1, Caller: solOwner, TokenMint: takaraMint, Now: now}, "VAL_001"},
		{"missing mint", ports.ApplyBoostRequest{WexelID: 1, Caller: solOwner, Amount: 1, Now: now}, "VAL_001"},
		{"not owner", ports.ApplyBoostRequest{WexelID: 1, Caller: solBuyer, TokenMint: takaraMint, Amount: 1_000_000, Now: now}, "AUTH_001"},
		{"unknown wexel", ports.ApplyBoostRequest{WexelID: 7, Caller: solOwner, TokenMint: takaraMint, Amount: 1_000_000, Now: now}, "WXL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.boosts.ApplyBoost(ctx, tt.req)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestBoostService_ApplyBoost_WorthlessDeposit(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	now := t0.Add(day)

	// floor(1 × 8500 / 10000) == 0
	f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(laikaQuote(1, now), nil)
	_, err := f.boosts.ApplyBoost(context.Background(), ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 1_000_000, Now: now,
	})
	assertAppError(t, err, "VAL_001")
}

func TestBoostService_ApplyBoost_DuplicateTxHashSkipsPricing(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()
	now := t0.Add(day)
	req := ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 50_000_000, TxHash: "boost-tx-1", Now: now,
	}

	f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(laikaQuote(2_000_000, now), nil).Times(1)

	first, err := f.boosts.ApplyBoost(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	second, err := f.boosts.ApplyBoost(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.Equal(t, first.Wexel.APYBoostBP, second.Wexel.APYBoostBP)

	boosts, err := f.store.ListBoosts(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, boosts, 1)
}

func TestBoostService_ApplyBoost_PricesOutsideWexelLock(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()
	now := t0.Add(day)

	f.prices.EXPECT().Price(gomock.Any(), laikaMint).DoAndReturn(
		func(ctx context.Context, _ string) (*domain.PriceQuote, error) {
			acquired := make(chan struct{})
			go func() {
				_ = f.store.WithinWexel(ctx, 1, func(context.Context, ports.LedgerTx) error {
					close(acquired)
					return nil
				})
			}()
			select {
			case <-acquired:
			case <-time.After(time.Second):
				t.Error("price source called while the wexel lock is held")
			}
			return laikaQuote(2_000_000, now), nil
		})

	res, err := f.boosts.ApplyBoost(ctx, ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 50_000_000, TxHash: "boost-tx-lock", Now: now,
	})
	require.NoError(t, err)
	assert.Equal(t, 141, res.Wexel.APYBoostBP)
}

func TestBoostService_ApplyBoost_StaleAtApplyTime(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	now := t0.Add(day)

	// Fresh when fetched, too old for the event's timestamp.
	f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(laikaQuote(2_000_000, now.Add(-6*time.Minute)), nil)

	_, err := f.boosts.ApplyBoost(context.Background(), ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 50_000_000, Now: now,
	})
	assertAppError(t, err, "PRC_001")
	assert.Equal(t, 0, f.wexel(t, 1).APYBoostBP)
}

func TestBoostService_ApplyBoost_ReplayDuringOutageIsDuplicate(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()
	now := t0.Add(day)
	req := ports.ApplyBoostRequest{
		WexelID: 1, Caller: solOwner, TokenMint: laikaMint, Amount: 50_000_000, TxHash: "boost-tx-2", Now: now,
	}

	gomock.InOrder(
		f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(laikaQuote(2_000_000, now), nil),
		f.prices.EXPECT().Price(gomock.Any(), laikaMint).Return(nil, errors.New("oracle down")).AnyTimes(),
	)

	_, err := f.boosts.ApplyBoost(ctx, req)
	require.NoError(t, err)

	res, err := f.boosts.ApplyBoost(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
}

func TestBoostService_CalculateBoost_DoesNotMutate(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()

	quote, err := f.boosts.CalculateBoost(ctx, ports.BoostQuoteRequest{
		WexelID: 1, TokenMint: takaraMint, Amount: 150_000_000, Now: t0.Add(day),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300_000_000), quote.TargetValueUSD)
	assert.Equal(t, int64(150_000_000), quote.ValueUSD)
	assert.Equal(t, 250, quote.NewBoostBP)
	assert.Equal(t, 250, quote.IncrementalBP)
	assert.Equal(t, int64(1_000_000), quote.PriceUSD)

	assert.Equal(t, 0, f.wexel(t, 1).APYBoostBP)
	boosts, err := f.store.ListBoosts(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, boosts)

	_, err = f.boosts.CalculateBoost(ctx, ports.BoostQuoteRequest{WexelID: 1, TokenMint: "nope", Amount: 1, Now: t0})
	assertAppError(t, err, "BST_001")
}
