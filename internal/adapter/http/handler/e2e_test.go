package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wexel-ledger/config"
	"wexel-ledger/internal/adapter/http/handler"
	"wexel-ledger/internal/adapter/pricing"
	"wexel-ledger/internal/adapter/storage/memory"
	redisStorage "wexel-ledger/internal/adapter/storage/redis"
	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerWallet    = "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"
	buyerWallet    = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	operatorWallet = "TLa2f6VPqDgRE67v1736s7bJ8Ray5wYjU7"
	takaraMint     = "TakaraMint111111111111111111111111111111111"

	principal   = int64(1_000_000_000)
	dailyReward = int64(493_150) // floor(1e9 × 1800 / 3_650_000)
)

var e2eNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

type testApp struct {
	server *httptest.Server
	tokens map[string]string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	registry, err := pricing.NewRegistry([]config.BoostTokenConfig{
		{Mint: takaraMint, Symbol: "TAKARA", Class: string(domain.TokenClassFixedInternal), FixedPriceUSD: 1_000_000},
	})
	require.NoError(t, err)

	log := zerolog.Nop()
	store := memory.NewStore()
	deposits := service.NewDepositService(store, nil, log)
	accrual := service.NewAccrualService(store, nil, log)
	boosts := service.NewBoostService(store, nil, registry, nil, time.Minute, log)
	collateral := service.NewCollateralService(store, nil, 0, log)
	marketplace := service.NewMarketplaceService(store, nil, log)
	query := service.NewQueryService(store, collateral, log)
	reconciler := service.NewReconcilerService(service.ReconcilerDeps{
		Deposits:    deposits,
		Accrual:     accrual,
		Boosts:      boosts,
		Collateral:  collateral,
		Marketplace: marketplace,
		Cache:       redisStorage.NewProcessedEventCache(rdb),
		CacheTTL:    time.Hour,
	}, log)
	tokenSvc := service.NewJWTTokenService("e2e-secret-key-with-enough-entropy", time.Hour, "wexel-ledger")

	router := handler.SetupRouter(handler.RouterDeps{
		Deposits:       deposits,
		Accrual:        accrual,
		Boosts:         boosts,
		Collateral:     collateral,
		Marketplace:    marketplace,
		Query:          query,
		Reconciler:     reconciler,
		TokenSvc:       tokenSvc,
		Clock:          stubClock{e2eNow},
		Admins:         []string{operatorWallet},
		RateLimiter:    redisStorage.NewRateLimitStore(rdb),
		Logger:         log,
	})

	app := &testApp{server: httptest.NewServer(router), tokens: map[string]string{}}
	t.Cleanup(app.server.Close)
	for _, w := range []string{ownerWallet, buyerWallet, operatorWallet} {
		tok, _, err := tokenSvc.Generate(w)
		require.NoError(t, err)
		app.tokens[w] = tok
	}
	return app
}

type apiResponse struct {
	status int
	header http.Header
	Data   json.RawMessage `json:"data"`
	Code   string          `json:"error_code"`
}

func (a *testApp) call(t *testing.T, method, path, wallet string, body any) apiResponse {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if wallet != "" {
		req.Header.Set("Authorization", "Bearer "+a.tokens[wallet])
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := apiResponse{status: resp.StatusCode, header: resp.Header}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func txHash(n int) string { return fmt.Sprintf("0x%064x", n) }

// seed creates pool 1 and confirms wexel 1 for ownerWallet, started 30 days
// before e2eNow.
func (a *testApp) seed(t *testing.T) {
	t.Helper()
	resp := a.call(t, http.MethodPost, "/api/v1/admin/pools", operatorWallet, map[string]any{
		"id":          1,
		"apy_base_bp": 1800,
		"lock_months": 12,
		"min_deposit": 100_000_000,
	})
	require.Equal(t, http.StatusCreated, resp.status, resp.Code)

	start := e2eNow.Add(-30 * 24 * time.Hour)
	resp = a.call(t, http.MethodPost, "/api/v1/admin/events", operatorWallet, map[string]any{
		"kind":     "deposit_confirmed",
		"wexel_id": 1,
		"tx_hash":  txHash(1),
		"payload": map[string]any{
			"pool_id":   1,
			"owner":     ownerWallet,
			"principal": principal,
			"start_ts":  start,
		},
	})
	require.Equal(t, http.StatusCreated, resp.status, resp.Code)
}

func TestLedgerLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.seed(t)

	// Redelivered deposit is acknowledged without effect.
	resp := app.call(t, http.MethodPost, "/api/v1/admin/events", operatorWallet, map[string]any{
		"kind":     "deposit_confirmed",
		"wexel_id": 1,
		"tx_hash":  txHash(1),
		"payload":  map[string]any{"pool_id": 1, "owner": ownerWallet, "principal": principal},
	})
	require.Equal(t, http.StatusOK, resp.status)
	var ev struct{ Duplicate bool }
	require.NoError(t, json.Unmarshal(resp.Data, &ev))
	assert.True(t, ev.Duplicate)

	// 30 full days accrued.
	resp = app.call(t, http.MethodGet, "/api/v1/wexels/1/rewards", "", nil)
	require.Equal(t, http.StatusOK, resp.status)
	var acc domain.Accrual
	require.NoError(t, json.Unmarshal(resp.Data, &acc))
	assert.Equal(t, int64(30), acc.DaysElapsed)
	assert.Equal(t, 30*dailyReward, acc.Pending)

	// Claim everything; replaying the same tx hash returns the original claim.
	claimBody := map[string]any{"tx_hash": txHash(2)}
	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/claims", ownerWallet, claimBody)
	require.Equal(t, http.StatusCreated, resp.status, resp.Code)
	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/claims", ownerWallet, claimBody)
	require.Equal(t, http.StatusOK, resp.status)
	assert.Equal(t, "true", resp.header.Get("Idempotent-Replayed"))

	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/claims", ownerWallet, map[string]any{})
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "CLM_001", resp.Code)

	// Boost with a fixed-price token.
	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/boosts", ownerWallet, map[string]any{
		"token_mint": takaraMint,
		"amount":     150_000_000,
		"tx_hash":    txHash(3),
	})
	require.Equal(t, http.StatusCreated, resp.status, resp.Code)

	// List, then collateral is refused while the listing is active.
	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/listings", ownerWallet, map[string]any{"ask_price": 1_100_000_000})
	require.Equal(t, http.StatusCreated, resp.status, resp.Code)
	var listing domain.Listing
	require.NoError(t, json.Unmarshal(resp.Data, &listing))

	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/collateral", ownerWallet, nil)
	assert.Equal(t, http.StatusConflict, resp.status)
	assert.Equal(t, "MKT_006", resp.Code)

	// Under-priced purchase is rejected; a full-price one moves ownership.
	resp = app.call(t, http.MethodPost, "/api/v1/listings/"+listing.ID.String()+"/buy", buyerWallet, map[string]any{"price": 1_000_000_000})
	assert.Equal(t, "MKT_004", resp.Code)

	resp = app.call(t, http.MethodPost, "/api/v1/listings/"+listing.ID.String()+"/buy", buyerWallet, map[string]any{
		"price":   1_100_000_000,
		"tx_hash": txHash(4),
	})
	require.Equal(t, http.StatusOK, resp.status, resp.Code)

	resp = app.call(t, http.MethodGet, "/api/v1/wexels/1", "", nil)
	require.Equal(t, http.StatusOK, resp.status)
	var snap struct {
		Wexel struct {
			Owner      string `json:"owner"`
			APYBoostBP int    `json:"apy_boost_bp"`
		} `json:"wexel"`
		ActiveListing *domain.Listing `json:"active_listing"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &snap))
	assert.Equal(t, buyerWallet, snap.Wexel.Owner)
	assert.Greater(t, snap.Wexel.APYBoostBP, 0)
	assert.Nil(t, snap.ActiveListing)

	// The seller has lost authority.
	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/collateral", ownerWallet, nil)
	assert.Equal(t, http.StatusForbidden, resp.status)
	assert.Equal(t, "AUTH_001", resp.Code)

	// New owner borrows and repays.
	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/collateral", buyerWallet, map[string]any{"tx_hash": txHash(5)})
	require.Equal(t, http.StatusCreated, resp.status, resp.Code)
	var col struct {
		Position domain.CollateralPosition `json:"position"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &col))
	assert.Equal(t, principal*domain.DefaultLTVBP/10_000, col.Position.LoanAmount)

	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/redeem", buyerWallet, nil)
	assert.Equal(t, http.StatusConflict, resp.status, "not matured and collateralized")

	resp = app.call(t, http.MethodPost, "/api/v1/wexels/1/collateral/repay", buyerWallet, map[string]any{"amount": col.Position.LoanAmount})
	require.Equal(t, http.StatusOK, resp.status, resp.Code)

	resp = app.call(t, http.MethodGet, "/api/v1/me/portfolio", buyerWallet, nil)
	require.Equal(t, http.StatusOK, resp.status)
	var portfolio struct {
		Wexels         []json.RawMessage `json:"wexels"`
		TotalPrincipal int64             `json:"total_principal"`
		Collateralized int               `json:"collateralized"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &portfolio))
	assert.Len(t, portfolio.Wexels, 1)
	assert.Equal(t, principal, portfolio.TotalPrincipal)
	assert.Zero(t, portfolio.Collateralized)
}

// TestConcurrentClaims fires partial claims at one wexel in parallel. The sum
// of accepted claims never exceeds what has accrued.
func TestConcurrentClaims(t *testing.T) {
	app := newTestApp(t)
	app.seed(t)

	const (
		workers = 20
		amount  = int64(1_000_000)
	)
	pending := 30 * dailyReward
	wantOK := int(pending / amount)

	var (
		wg       sync.WaitGroup
		ok       atomic.Int32
		rejected atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := app.call(t, http.MethodPost, "/api/v1/wexels/1/claims", ownerWallet, map[string]any{
				"amount":  amount,
				"tx_hash": txHash(100 + i),
			})
			switch resp.status {
			case http.StatusCreated:
				ok.Add(1)
			case http.StatusUnprocessableEntity:
				rejected.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(wantOK), ok.Load())
	assert.Equal(t, int32(workers-wantOK), rejected.Load())

	resp := app.call(t, http.MethodGet, "/api/v1/wexels/1/rewards", "", nil)
	var acc domain.Accrual
	require.NoError(t, json.Unmarshal(resp.Data, &acc))
	assert.Equal(t, int64(wantOK)*amount, acc.TotalClaimed)
	assert.Equal(t, pending-int64(wantOK)*amount, acc.Pending)
}

func TestAdminRoutesRequireAllowlistedWallet(t *testing.T) {
	app := newTestApp(t)

	resp := app.call(t, http.MethodPost, "/api/v1/admin/listings/expire", ownerWallet, nil)
	assert.Equal(t, http.StatusForbidden, resp.status)

	resp = app.call(t, http.MethodPost, "/api/v1/admin/listings/expire", operatorWallet, nil)
	require.Equal(t, http.StatusOK, resp.status)
	var sweep struct{ Expired int }
	require.NoError(t, json.Unmarshal(resp.Data, &sweep))
	assert.Zero(t, sweep.Expired)
}
