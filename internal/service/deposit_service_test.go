package service

import (
	"context"
	"testing"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositService_CreatePool_Defaults(t *testing.T) {
	f := setupLedger(t).quiet()
	pool := f.seedPool(t)

	assert.Equal(t, int64(1), pool.ID)
	assert.Equal(t, domain.DefaultBoostTargetBP, pool.BoostTargetBP)
	assert.Equal(t, domain.DefaultBoostMaxBP, pool.BoostMaxBP)
	assert.True(t, pool.IsActive)

	custom, err := f.deposits.CreatePool(context.Background(), ports.CreatePoolRequest{
		APYBaseBP: 1200, LockMonths: 6, BoostTargetBP: ptr(0), BoostMaxBP: ptr(300), Now: t0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, custom.BoostTargetBP)
	assert.Equal(t, 300, custom.BoostMaxBP)
}

func TestDepositService_CreatePool_Errors(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	ctx := context.Background()

	_, err := f.deposits.CreatePool(ctx, ports.CreatePoolRequest{APYBaseBP: 1800, LockMonths: 0, Now: t0})
	assertAppError(t, err, "VAL_001")

	_, err = f.deposits.CreatePool(ctx, ports.CreatePoolRequest{APYBaseBP: 1800, LockMonths: 12, BoostTargetBP: ptr(10_001), Now: t0})
	assertAppError(t, err, "VAL_001")

	_, err = f.deposits.CreatePool(ctx, ports.CreatePoolRequest{ID: 1, APYBaseBP: 1800, LockMonths: 12, Now: t0})
	assertAppError(t, err, "WXL_008")
}

func TestDepositService_SetPoolActive(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	ctx := context.Background()

	pool, err := f.deposits.SetPoolActive(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, pool.IsActive)

	active, err := f.deposits.ListPools(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := f.deposits.ListPools(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = f.deposits.ConfirmDeposit(ctx, ports.DepositRequest{WexelID: 1, PoolID: 1, Owner: solOwner, Principal: principal, Now: t0})
	assertAppError(t, err, "WXL_006")

	_, err = f.deposits.SetPoolActive(ctx, 9, true)
	assertAppError(t, err, "WXL_005")
}

func TestDepositService_ConfirmDeposit(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)

	w := f.seedWexel(t, 42, tronOwner)
	assert.Equal(t, int64(42), w.ID)
	assert.Equal(t, 1800, w.APYBaseBP)
	assert.Equal(t, t0.Add(360*day), w.EndTs)
	require.NotNil(t, w.OwnerTron)
	assert.Nil(t, w.OwnerSolana)
}

func TestDepositService_ConfirmDeposit_Errors(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()

	tests := []struct {
		name string
		req  ports.DepositRequest
		code string
	}{
		{"existing wexel", ports.DepositRequest{WexelID: 1, PoolID: 1, Owner: solOwner, Principal: principal, Now: t0}, "WXL_003"},
		{"below minimum", ports.DepositRequest{WexelID: 2, PoolID: 1, Owner: solOwner, Principal: 99_999_999, Now: t0}, "WXL_007"},
		{"unknown pool", ports.DepositRequest{WexelID: 2, PoolID: 3, Owner: solOwner, Principal: principal, Now: t0}, "WXL_005"},
		{"missing owner", ports.DepositRequest{WexelID: 2, PoolID: 1, Principal: principal, Now: t0}, "VAL_001"},
		{"zero principal", ports.DepositRequest{WexelID: 2, PoolID: 1, Owner: solOwner, Now: t0}, "VAL_001"},
		{"zero id", ports.DepositRequest{PoolID: 1, Owner: solOwner, Principal: principal, Now: t0}, "VAL_001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.deposits.ConfirmDeposit(ctx, tt.req)
			assertAppError(t, err, tt.code)
		})
	}
}

func TestDepositService_ConfirmDeposit_DuplicateTxHash(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	ctx := context.Background()
	req := ports.DepositRequest{WexelID: 1, PoolID: 1, Owner: solOwner, Principal: principal, TxHash: "dep-1", Now: t0}

	_, err := f.deposits.ConfirmDeposit(ctx, req)
	require.NoError(t, err)
	res, err := f.deposits.ConfirmDeposit(ctx, req)
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, principal, res.Wexel.Principal)
}

func TestDepositService_Redeem(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()
	maturity := t0.Add(360 * day)

	_, err := f.deposits.Redeem(ctx, ports.RedeemRequest{WexelID: 1, Caller: solOwner, Now: maturity.Add(-1)})
	assertAppError(t, err, "WXL_004")

	l := f.list(t, 1, 900_000_000, 0)

	res, err := f.deposits.Redeem(ctx, ports.RedeemRequest{WexelID: 1, Caller: solOwner, TxHash: "redeem-1", Now: maturity})
	require.NoError(t, err)
	require.NotNil(t, res.Wexel.FinalizedAt)
	// 360 full days of 493,150 are settled as the final claim.
	assert.Equal(t, int64(360*493_150), res.Wexel.TotalClaimed)

	claims, err := f.store.ListClaims(ctx, 1)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, int64(360*493_150), claims[0].Amount)

	listing, err := f.store.GetListing(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusCancelled, listing.Status)

	dup, err := f.deposits.Redeem(ctx, ports.RedeemRequest{WexelID: 1, Caller: solOwner, TxHash: "redeem-1", Now: maturity})
	require.NoError(t, err)
	assert.True(t, dup.Duplicate)

	// Finalized wexels reject every mutation.
	_, err = f.accrual.Claim(ctx, ports.ClaimRequest{WexelID: 1, Caller: solOwner, Now: maturity.Add(day)})
	assertAppError(t, err, "WXL_002")
	_, err = f.collateral.Open(ctx, ports.OpenCollateralRequest{WexelID: 1, Caller: solOwner, Now: maturity})
	assertAppError(t, err, "WXL_002")
	_, err = f.marketplace.CreateListing(ctx, ports.CreateListingRequest{WexelID: 1, Caller: solOwner, AskPrice: 1, Now: maturity})
	assertAppError(t, err, "WXL_002")
	_, err = f.boosts.ApplyBoost(ctx, ports.ApplyBoostRequest{WexelID: 1, Caller: solOwner, TokenMint: takaraMint, Amount: 1_000_000, Now: maturity})
	assertAppError(t, err, "WXL_002")
	_, err = f.deposits.Redeem(ctx, ports.RedeemRequest{WexelID: 1, Caller: solOwner, Now: maturity})
	assertAppError(t, err, "WXL_002")
}

func TestDepositService_Redeem_Collateralized(t *testing.T) {
	f := setupLedger(t).quiet()
	f.seedPool(t)
	f.seedWexel(t, 1, solOwner)
	ctx := context.Background()

	_, err := f.collateral.Open(ctx, ports.OpenCollateralRequest{WexelID: 1, Caller: solOwner, Now: t0})
	require.NoError(t, err)

	_, err = f.deposits.Redeem(ctx, ports.RedeemRequest{WexelID: 1, Caller: solOwner, Now: t0.Add(400 * day)})
	assertAppError(t, err, "COL_005")
	assert.False(t, f.wexel(t, 1).IsFinalized())
}
