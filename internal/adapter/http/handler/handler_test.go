package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/internal/core/ports/mocks"
	"wexel-ledger/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userWallet  = "So11111111111111111111111111111111111111112"
	adminWallet = "TXYZopYRdj2D9XRtbG411XZZ3kM5VkAeBf"
	userToken   = "user-token"
	adminToken  = "admin-token"
)

var (
	testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	txHash  = strings.Repeat("ab", 32)
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type testEnv struct {
	router      *gin.Engine
	deposits    *mocks.MockDepositService
	accrual     *mocks.MockAccrualService
	boosts      *mocks.MockBoostService
	collateral  *mocks.MockCollateralService
	marketplace *mocks.MockMarketplaceService
	query       *mocks.MockQueryService
	reconciler  *mocks.MockReconciler
	prices      *mocks.MockPriceAdminService
	audit       *bytes.Buffer
}

func newTestEnv(t *testing.T, checkers ...ports.HealthChecker) *testEnv {
	ctrl := gomock.NewController(t)

	tokens := mocks.NewMockTokenService(ctrl)
	tokens.EXPECT().Validate(userToken).Return(&ports.TokenClaims{Wallet: userWallet}, nil).AnyTimes()
	tokens.EXPECT().Validate(adminToken).Return(&ports.TokenClaims{Wallet: adminWallet}, nil).AnyTimes()
	tokens.EXPECT().Validate(gomock.Any()).Return(nil, errors.New("bad token")).AnyTimes()

	env := &testEnv{
		deposits:    mocks.NewMockDepositService(ctrl),
		accrual:     mocks.NewMockAccrualService(ctrl),
		boosts:      mocks.NewMockBoostService(ctrl),
		collateral:  mocks.NewMockCollateralService(ctrl),
		marketplace: mocks.NewMockMarketplaceService(ctrl),
		query:       mocks.NewMockQueryService(ctrl),
		reconciler:  mocks.NewMockReconciler(ctrl),
		prices:      mocks.NewMockPriceAdminService(ctrl),
		audit:       &bytes.Buffer{},
	}
	auditLog := zerolog.New(env.audit)
	env.router = SetupRouter(RouterDeps{
		Deposits:       env.deposits,
		Accrual:        env.accrual,
		Boosts:         env.boosts,
		Collateral:     env.collateral,
		Marketplace:    env.marketplace,
		Query:          env.query,
		Reconciler:     env.reconciler,
		Prices:         env.prices,
		TokenSvc:       tokens,
		Clock:          fixedClock{testNow},
		Admins:         []string{adminWallet},
		HealthCheckers: checkers,
		Logger:         zerolog.Nop(),
		AuditLogger:    &auditLog,
	})
	return env
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = strings.NewReader(s)
		} else {
			b, _ := json.Marshal(body)
			r = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	d, ok := decode(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "data is not an object: %s", w.Body.String())
	return d
}

func testWexel() *domain.Wexel {
	w := &domain.Wexel{
		ID:        7,
		PoolID:    1,
		Principal: 1_000_000_000,
		APYBaseBP: 1800,
		StartTs:   testNow.AddDate(0, -1, 0),
		EndTs:     testNow.AddDate(0, 11, 0),
	}
	w.SetOwner(userWallet)
	return w
}

// --- Health ---

func TestHealthCheck_Healthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()

	env := newTestEnv(t, pg)
	w := env.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	pg := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Ping(gomock.Any()).Return(nil)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	nats := mocks.NewMockHealthChecker(ctrl)
	nats.EXPECT().Ping(gomock.Any()).Return(errors.New("disconnected"))
	nats.EXPECT().Name().Return("nats").AnyTimes()

	env := newTestEnv(t, pg, nats)
	w := env.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["nats"].(map[string]interface{})["status"])
	assert.Equal(t, "healthy", deps["postgresql"].(map[string]interface{})["status"])
}

func TestSwagger(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/swagger/spec", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Wexel Ledger API")

	w = env.do(http.MethodGet, "/swagger", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

// --- Pools ---

func TestListPools_DefaultsToActive(t *testing.T) {
	env := newTestEnv(t)
	env.deposits.EXPECT().ListPools(gomock.Any(), true).Return([]domain.Pool{
		{ID: 1, APYBaseBP: 1850, LockMonths: 12, BoostMaxBP: 500, IsActive: true},
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/pools", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["data"].([]interface{})
	require.Len(t, items, 1)
	pool := items[0].(map[string]interface{})
	assert.Equal(t, "18.50", pool["apy_base_percent"])
	assert.Equal(t, "5.00", pool["boost_max_percent"])
}

func TestListPools_InvalidActive(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/pools?active=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePool_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]interface{}{"apy_base_bp": 1800, "lock_months": 12}

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, "/api/v1/admin/pools", "", body).Code)
	assert.Equal(t, http.StatusForbidden, env.do(http.MethodPost, "/api/v1/admin/pools", userToken, body).Code)
}

func TestCreatePool_Success(t *testing.T) {
	env := newTestEnv(t)
	target := 2500
	env.deposits.EXPECT().CreatePool(gomock.Any(), ports.CreatePoolRequest{
		APYBaseBP:     1800,
		LockMonths:    12,
		MinDeposit:    100_000_000,
		BoostTargetBP: &target,
		Now:           testNow,
	}).Return(&domain.Pool{ID: 3, APYBaseBP: 1800, LockMonths: 12, BoostTargetBP: 2500, IsActive: true}, nil)

	w := env.do(http.MethodPost, "/api/v1/admin/pools", adminToken, map[string]interface{}{
		"apy_base_bp":     1800,
		"lock_months":     12,
		"min_deposit":     100_000_000,
		"boost_target_bp": 2500,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 3, data(t, w)["id"])
	assert.Contains(t, env.audit.String(), `"action":"pool.create"`)
}

func TestSetPoolActive(t *testing.T) {
	env := newTestEnv(t)
	env.deposits.EXPECT().SetPoolActive(gomock.Any(), int64(3), false).
		Return(&domain.Pool{ID: 3, LockMonths: 12}, nil)

	w := env.do(http.MethodPatch, "/api/v1/admin/pools/3", adminToken, map[string]bool{"active": false})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPatch, "/api/v1/admin/pools/3", adminToken, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "active is required")
}

// --- Wexel reads ---

func TestGetWexel(t *testing.T) {
	env := newTestEnv(t)
	w := testWexel()
	env.query.EXPECT().GetWexel(gomock.Any(), int64(7)).Return(&domain.WexelSnapshot{
		Wexel:         *w,
		Pool:          &domain.Pool{ID: 1, APYBaseBP: 1800, LockMonths: 12},
		BoostValueUSD: 2_500_000,
	}, nil)

	resp := env.do(http.MethodGet, "/api/v1/wexels/7", "", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	d := data(t, resp)
	wexel := d["wexel"].(map[string]interface{})
	assert.Equal(t, userWallet, wexel["owner"])
	assert.Equal(t, "18.00", wexel["total_apy_percent"])
	assert.Equal(t, "2.500000", d["boost_value"])
}

func TestGetWexel_BadID(t *testing.T) {
	env := newTestEnv(t)
	for _, id := range []string{"abc", "0", "-4"} {
		w := env.do(http.MethodGet, "/api/v1/wexels/"+id, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %s", id)
	}
}

func TestGetWexel_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().GetWexel(gomock.Any(), int64(99)).Return(nil, apperror.ErrWexelNotFound())

	w := env.do(http.MethodGet, "/api/v1/wexels/99", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "WXL_001", decode(t, w)["error_code"])
}

func TestRewards_UsesClock(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().EstimateRewards(gomock.Any(), int64(7), testNow).
		Return(&domain.Accrual{WexelID: 7, TotalAPYBP: 2050, Pending: 49_315}, nil)

	w := env.do(http.MethodGet, "/api/v1/wexels/7/rewards", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, w)
	assert.EqualValues(t, 49_315, d["pending"])
	assert.Equal(t, "20.50", d["total_apy_percent"])
}

func TestLoanQuote(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().EstimateLoan(gomock.Any(), int64(7)).
		Return(&ports.LoanQuote{WexelID: 7, Principal: 1_000_000, LTVBP: 6000, LoanAmount: 600_000}, nil)

	w := env.do(http.MethodGet, "/api/v1/wexels/7/loan-quote", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 600_000, data(t, w)["loan_amount"])
}

func TestBoostQuote(t *testing.T) {
	env := newTestEnv(t)
	env.boosts.EXPECT().CalculateBoost(gomock.Any(), ports.BoostQuoteRequest{
		WexelID: 7, TokenMint: userWallet, Amount: 5_000_000, Now: testNow,
	}).Return(&domain.BoostQuote{WexelID: 7, IncrementalBP: 120}, nil)

	w := env.do(http.MethodGet, "/api/v1/wexels/7/boosts/quote?token_mint="+userWallet+"&amount=5000000", "", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 120, data(t, w)["apy_boost_bp"])
}

func TestBoostQuote_MissingParams(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/wexels/7/boosts/quote?amount=5", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBoostStats(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().BoostStats(gomock.Any(), int64(7)).Return(&domain.BoostStats{
		WexelID: 7, ProgressBP: 5000, CurrentBoostBP: 250, RemainingUSD: 150_000_000,
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/wexels/7/boosts/stats", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, w)
	assert.Equal(t, "2.50", d["current_boost_percent"])
	assert.Equal(t, "50.00", d["progress_percent"])
	assert.Equal(t, "150.000000", d["remaining_value"])
}

func TestListClaimsAndBoosts(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().ListClaims(gomock.Any(), int64(7)).Return([]domain.Claim{{ID: uuid.New(), WexelID: 7, Amount: 10}}, nil)
	env.query.EXPECT().ListBoosts(gomock.Any(), int64(7)).Return([]domain.Boost{}, nil)

	w := env.do(http.MethodGet, "/api/v1/wexels/7/claims", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"], 1)

	w = env.do(http.MethodGet, "/api/v1/wexels/7/boosts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["data"])
}

// --- Owner actions ---

func TestClaim_RequiresToken(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/wexels/7/claims", "", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/v1/wexels/7/claims", "forged", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClaim_FullPending(t *testing.T) {
	env := newTestEnv(t)
	env.accrual.EXPECT().Claim(gomock.Any(), ports.ClaimRequest{
		WexelID: 7,
		Caller:  userWallet,
		TxHash:  txHash,
		Now:     testNow,
	}).Return(&ports.ClaimResult{Claim: &domain.Claim{ID: uuid.New(), WexelID: 7, Amount: 49_315}}, nil)

	w := env.do(http.MethodPost, "/api/v1/wexels/7/claims", userToken, map[string]interface{}{"tx_hash": txHash})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 49_315, data(t, w)["claim"].(map[string]interface{})["amount"])
	assert.Contains(t, env.audit.String(), `"action":"rewards.claim"`)
}

func TestClaim_PartialDaily(t *testing.T) {
	env := newTestEnv(t)
	env.accrual.EXPECT().Claim(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req ports.ClaimRequest) (*ports.ClaimResult, error) {
			require.NotNil(t, req.Amount)
			assert.Equal(t, int64(1000), *req.Amount)
			assert.Equal(t, domain.ClaimTypeDaily, req.ClaimType)
			return &ports.ClaimResult{Claim: &domain.Claim{Amount: 1000}}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/wexels/7/claims", userToken, map[string]interface{}{"amount": 1000, "claim_type": "daily"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestClaim_DuplicateReturns200(t *testing.T) {
	env := newTestEnv(t)
	env.accrual.EXPECT().Claim(gomock.Any(), gomock.Any()).
		Return(&ports.ClaimResult{Claim: &domain.Claim{Amount: 5}, Duplicate: true}, nil)

	w := env.do(http.MethodPost, "/api/v1/wexels/7/claims", userToken, map[string]interface{}{"tx_hash": txHash})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Header().Get("Idempotent-Replayed"))
}

func TestClaim_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nothing to claim", apperror.ErrNothingToClaim(), http.StatusConflict, "CLM_001"},
		{"exceeds pending", apperror.ErrClaimExceedsPending(), http.StatusUnprocessableEntity, "CLM_002"},
		{"not owner", apperror.ErrUnauthorized(), http.StatusForbidden, "AUTH_001"},
		{"finalized", apperror.ErrWexelFinalized(), http.StatusConflict, "WXL_002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.accrual.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := env.do(http.MethodPost, "/api/v1/wexels/7/claims", userToken, map[string]interface{}{})

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w)["error_code"])
			assert.Empty(t, env.audit.String(), "failed requests are not audited")
		})
	}
}

func TestClaim_InvalidBody(t *testing.T) {
	env := newTestEnv(t)
	for _, body := range []interface{}{
		map[string]interface{}{"amount": -1},
		map[string]interface{}{"claim_type": "weekly"},
		map[string]interface{}{"tx_hash": "not a hash"},
		"{not json",
	} {
		w := env.do(http.MethodPost, "/api/v1/wexels/7/claims", userToken, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}

func TestApplyBoost(t *testing.T) {
	env := newTestEnv(t)
	env.boosts.EXPECT().ApplyBoost(gomock.Any(), ports.ApplyBoostRequest{
		WexelID: 7, Caller: userWallet, TokenMint: userWallet, Amount: 10_000_000, Now: testNow,
	}).Return(&ports.BoostResult{Wexel: testWexel(), Boost: &domain.Boost{APYBoostBP: 100}}, nil)

	w := env.do(http.MethodPost, "/api/v1/wexels/7/boosts", userToken, map[string]interface{}{
		"token_mint": userWallet,
		"amount":     10_000_000,
	})

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestApplyBoost_PriceUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.boosts.EXPECT().ApplyBoost(gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrPriceUnavailable("SOL", errors.New("timeout")))

	w := env.do(http.MethodPost, "/api/v1/wexels/7/boosts", userToken, map[string]interface{}{
		"token_mint": userWallet,
		"amount":     1,
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "PRC_001", decode(t, w)["error_code"])
}

func TestOpenCollateral_EmptyBody(t *testing.T) {
	env := newTestEnv(t)
	env.collateral.EXPECT().Open(gomock.Any(), ports.OpenCollateralRequest{
		WexelID: 7, Caller: userWallet, Now: testNow,
	}).Return(&ports.CollateralResult{Position: &domain.CollateralPosition{ID: uuid.New(), WexelID: 7, LoanAmount: 600}}, nil)

	w := env.do(http.MethodPost, "/api/v1/wexels/7/collateral", userToken, nil)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestOpenCollateral_Listed(t *testing.T) {
	env := newTestEnv(t)
	env.collateral.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrListedWexel())

	w := env.do(http.MethodPost, "/api/v1/wexels/7/collateral", userToken, map[string]string{"tx_hash": txHash})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MKT_006", decode(t, w)["error_code"])
}

func TestRepay(t *testing.T) {
	env := newTestEnv(t)
	env.collateral.EXPECT().Repay(gomock.Any(), ports.RepayRequest{
		WexelID: 7, Caller: userWallet, Amount: 600, TxHash: txHash, Now: testNow,
	}).Return(&ports.CollateralResult{Position: &domain.CollateralPosition{Repaid: true}}, nil)

	w := env.do(http.MethodPost, "/api/v1/wexels/7/collateral/repay", userToken, map[string]interface{}{"amount": 600, "tx_hash": txHash})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/v1/wexels/7/collateral/repay", userToken, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "amount is required")
}

func TestRedeem(t *testing.T) {
	env := newTestEnv(t)
	finalized := testWexel()
	at := testNow
	finalized.FinalizedAt = &at
	env.deposits.EXPECT().Redeem(gomock.Any(), ports.RedeemRequest{
		WexelID: 7, Caller: userWallet, Now: testNow,
	}).Return(&ports.DepositResult{Wexel: finalized}, nil)

	w := env.do(http.MethodPost, "/api/v1/wexels/7/redeem", userToken, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, data(t, w)["wexel"].(map[string]interface{})["finalized"])
}

func TestRedeem_NotMatured(t *testing.T) {
	env := newTestEnv(t)
	env.deposits.EXPECT().Redeem(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotMatured())

	w := env.do(http.MethodPost, "/api/v1/wexels/7/redeem", userToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Portfolio ---

func TestPortfolio_ByAddress(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().Portfolio(gomock.Any(), adminWallet, testNow).Return(&ports.Portfolio{
		Owner:  adminWallet,
		Wexels: []domain.Accrual{{WexelID: 7, TotalAPYBP: 1800}},
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/owners/"+adminWallet+"/portfolio", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	d := data(t, w)
	assert.Equal(t, adminWallet, d["owner"])
	assert.Equal(t, "18.00", d["wexels"].([]interface{})[0].(map[string]interface{})["total_apy_percent"])
}

func TestPortfolio_InvalidAddress(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/owners/0xnotbase58/portfolio", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolio_Me(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().Portfolio(gomock.Any(), userWallet, testNow).Return(&ports.Portfolio{Owner: userWallet}, nil)

	w := env.do(http.MethodGet, "/api/v1/me/portfolio", userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/v1/me/portfolio", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Marketplace ---

func TestListListings_Filters(t *testing.T) {
	env := newTestEnv(t)
	env.query.EXPECT().ListActiveListings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, f domain.ListingFilter) ([]domain.Listing, error) {
			require.NotNil(t, f.PoolID)
			require.NotNil(t, f.MinAPYBP)
			require.NotNil(t, f.MaxPrice)
			assert.Equal(t, int64(2), *f.PoolID)
			assert.Equal(t, 1500, *f.MinAPYBP)
			assert.Equal(t, int64(900), *f.MaxPrice)
			assert.Equal(t, 10, f.Limit)
			assert.Equal(t, 20, f.Offset)
			return []domain.Listing{{ID: uuid.New(), WexelID: 7, AskPrice: 800, Status: domain.ListingStatusActive}}, nil
		})

	w := env.do(http.MethodGet, "/api/v1/listings?pool_id=2&min_apy_bp=1500&max_price=900&limit=10&offset=20", "", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decode(t, w)["page"].(map[string]interface{})
	assert.EqualValues(t, 10, page["limit"])
	assert.EqualValues(t, 20, page["offset"])
	assert.EqualValues(t, 1, page["count"])
}

func TestListListings_LimitTooLarge(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/listings?limit=1000", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateListing(t *testing.T) {
	env := newTestEnv(t)
	expiry := testNow.Add(48 * time.Hour)
	env.marketplace.EXPECT().CreateListing(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req ports.CreateListingRequest) (*domain.Listing, error) {
			assert.Equal(t, int64(7), req.WexelID)
			assert.Equal(t, userWallet, req.Caller)
			assert.Equal(t, int64(1_200_000), req.AskPrice)
			require.NotNil(t, req.ExpiryTs)
			assert.True(t, expiry.Equal(*req.ExpiryTs))
			assert.Equal(t, testNow, req.Now)
			return &domain.Listing{ID: uuid.New(), WexelID: 7, AskPrice: req.AskPrice, Status: domain.ListingStatusActive}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/wexels/7/listings", userToken, map[string]interface{}{
		"ask_price": 1_200_000,
		"expiry_ts": expiry.Format(time.RFC3339),
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "active", data(t, w)["status"])
}

func TestCreateListing_Collateralized(t *testing.T) {
	env := newTestEnv(t)
	env.marketplace.EXPECT().CreateListing(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrCollateralizedWexel())

	w := env.do(http.MethodPost, "/api/v1/wexels/7/listings", userToken, map[string]interface{}{"ask_price": 5})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "COL_005", decode(t, w)["error_code"])
}

func TestBuyListing(t *testing.T) {
	env := newTestEnv(t)
	listingID := uuid.New()
	env.marketplace.EXPECT().Buy(gomock.Any(), ports.BuyRequest{
		ListingID: listingID, Buyer: userWallet, Price: 1_200_000, TxHash: txHash, Now: testNow,
	}).Return(&ports.Settlement{Listing: &domain.Listing{ID: listingID, Status: domain.ListingStatusSold}, PreviousOwner: adminWallet}, nil)

	w := env.do(http.MethodPost, "/api/v1/listings/"+listingID.String()+"/buy", userToken, map[string]interface{}{
		"price":   1_200_000,
		"tx_hash": txHash,
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, adminWallet, data(t, w)["previous_owner"])
	assert.Contains(t, env.audit.String(), listingID.String())
}

func TestBuyListing_Expired(t *testing.T) {
	env := newTestEnv(t)
	env.marketplace.EXPECT().Buy(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrListingExpired())

	w := env.do(http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/buy", userToken, map[string]interface{}{"price": 1})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MKT_005", decode(t, w)["error_code"])
}

func TestBuyListing_BadListingID(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/listings/not-a-uuid/buy", userToken, map[string]interface{}{"price": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelListing(t *testing.T) {
	env := newTestEnv(t)
	listingID := uuid.New()
	env.marketplace.EXPECT().Cancel(gomock.Any(), ports.CancelListingRequest{
		ListingID: listingID, Caller: userWallet, Now: testNow,
	}).Return(&domain.Listing{ID: listingID, Status: domain.ListingStatusCancelled}, nil)

	w := env.do(http.MethodDelete, "/api/v1/listings/"+listingID.String(), userToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", data(t, w)["status"])
}

// --- Operator routes ---

func TestIngestEvent(t *testing.T) {
	env := newTestEnv(t)
	env.reconciler.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, ev domain.LedgerEvent) (domain.Outcome, error) {
			assert.Equal(t, domain.EventDepositConfirmed, ev.Kind)
			assert.Equal(t, int64(7), ev.WexelID)
			assert.Equal(t, testNow, ev.ObservedAt, "observed_at defaults to the ledger clock")
			assert.JSONEq(t, `{"pool_id":1}`, string(ev.Payload))
			return domain.Outcome{Key: ev.Key()}, nil
		})

	w := env.do(http.MethodPost, "/api/v1/admin/events", adminToken, map[string]interface{}{
		"kind":     "deposit_confirmed",
		"wexel_id": 7,
		"tx_hash":  txHash,
		"payload":  map[string]int{"pool_id": 1},
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, false, data(t, w)["duplicate"])
}

func TestIngestEvent_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.reconciler.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(domain.Outcome{Duplicate: true}, nil)

	w := env.do(http.MethodPost, "/api/v1/admin/events", adminToken, map[string]interface{}{
		"kind":        "redeemed",
		"wexel_id":    7,
		"tx_hash":     txHash,
		"payload":     map[string]string{},
		"observed_at": testNow.Format(time.RFC3339),
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, data(t, w)["duplicate"])
}

func TestIngestEvent_ForbiddenForUsers(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/admin/events", userToken, map[string]interface{}{})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSweepExpired(t *testing.T) {
	env := newTestEnv(t)
	env.marketplace.EXPECT().ExpireListings(gomock.Any(), testNow).Return(3, nil)

	w := env.do(http.MethodPost, "/api/v1/admin/listings/expire", adminToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, data(t, w)["expired"])
}

func TestSetManualPrice(t *testing.T) {
	env := newTestEnv(t)
	env.prices.EXPECT().SetManualPrice(gomock.Any(), ports.ManualPriceRequest{
		Mint:     userWallet,
		PriceUSD: 2_000_000,
		Reason:   "coingecko outage",
		Operator: adminWallet,
		Now:      testNow,
	}).Return(&domain.PriceQuote{Mint: userWallet, PriceUSD: 2_000_000, ObservedAt: testNow, Source: domain.PriceSourceManual}, nil)

	w := env.do(http.MethodPost, "/api/v1/admin/prices", adminToken, map[string]interface{}{
		"mint": userWallet, "price_usd": 2_000_000, "reason": "coingecko outage",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "manual", data(t, w)["source"])
	assert.Contains(t, env.audit.String(), `"action":"price.override"`)
	assert.Contains(t, env.audit.String(), `"note":"coingecko outage"`)
	assert.Contains(t, env.audit.String(), `"resource_id":"`+userWallet+`"`)
}

func TestSetManualPrice_Validation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/v1/admin/prices", adminToken, map[string]interface{}{
		"mint": userWallet, "price_usd": 2_000_000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/admin/prices", userToken, map[string]interface{}{
		"mint": userWallet, "price_usd": 1, "reason": "outage",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, env.audit.String(), "price.override")
}

