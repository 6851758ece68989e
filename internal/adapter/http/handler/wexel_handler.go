package handler

import (
	"wexel-ledger/internal/adapter/http/dto"
	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"
	"wexel-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// WexelHandler handles per-wexel reads and owner actions.
type WexelHandler struct {
	query      ports.QueryService
	accrual    ports.AccrualService
	boosts     ports.BoostService
	collateral ports.CollateralService
	deposits   ports.DepositService
	clock      ports.Clock
}

// WexelServices groups the services behind WexelHandler.
type WexelServices struct {
	Query      ports.QueryService
	Accrual    ports.AccrualService
	Boosts     ports.BoostService
	Collateral ports.CollateralService
	Deposits   ports.DepositService
}

// NewWexelHandler creates a new WexelHandler.
func NewWexelHandler(svc WexelServices, clock ports.Clock) *WexelHandler {
	return &WexelHandler{
		query:      svc.Query,
		accrual:    svc.Accrual,
		boosts:     svc.Boosts,
		collateral: svc.Collateral,
		deposits:   svc.Deposits,
		clock:      clock,
	}
}

// Get handles GET /api/v1/wexels/:id.
func (h *WexelHandler) Get(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	snap, err := h.query.GetWexel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewSnapshotResponse(snap))
}

// Rewards handles GET /api/v1/wexels/:id/rewards.
func (h *WexelHandler) Rewards(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	acc, err := h.query.EstimateRewards(c.Request.Context(), id, h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewAccrualResponse(acc))
}

// LoanQuote handles GET /api/v1/wexels/:id/loan-quote.
func (h *WexelHandler) LoanQuote(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	quote, err := h.query.EstimateLoan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, quote)
}

// ListClaims handles GET /api/v1/wexels/:id/claims.
func (h *WexelHandler) ListClaims(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	claims, err := h.query.ListClaims(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, claims)
}

// ListBoosts handles GET /api/v1/wexels/:id/boosts.
func (h *WexelHandler) ListBoosts(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	boosts, err := h.query.ListBoosts(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, boosts)
}

// BoostStats handles GET /api/v1/wexels/:id/boosts/stats.
func (h *WexelHandler) BoostStats(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	stats, err := h.query.BoostStats(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewBoostStatsResponse(stats))
}

// BoostQuote handles GET /api/v1/wexels/:id/boosts/quote.
func (h *WexelHandler) BoostQuote(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var q dto.BoostQuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, validation(err))
		return
	}

	quote, err := h.boosts.CalculateBoost(c.Request.Context(), ports.BoostQuoteRequest{
		WexelID:   id,
		TokenMint: q.TokenMint,
		Amount:    q.Amount,
		Now:       h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, quote)
}

// Portfolio handles GET /api/v1/owners/:address/portfolio and
// GET /api/v1/me/portfolio.
func (h *WexelHandler) Portfolio(c *gin.Context) {
	owner := c.Param("address")
	if owner == "" {
		wallet, err := caller(c)
		if err != nil {
			response.Error(c, err)
			return
		}
		owner = wallet
	} else if !dto.IsWallet(owner) {
		response.Error(c, apperror.Validation("address is not a valid wallet"))
		return
	}

	p, err := h.query.Portfolio(c.Request.Context(), owner, h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPortfolioResponse(p))
}

// Claim handles POST /api/v1/wexels/:id/claims.
func (h *WexelHandler) Claim(c *gin.Context) {
	id, wallet, ok := h.ownerAction(c)
	if !ok {
		return
	}
	var req dto.ClaimRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.accrual.Claim(c.Request.Context(), ports.ClaimRequest{
		WexelID:   id,
		Caller:    wallet,
		Amount:    req.Amount,
		ClaimType: domain.ClaimType(req.ClaimType),
		TxHash:    req.TxHash,
		Now:       h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Applied(c, result.Duplicate, result)
}

// ApplyBoost handles POST /api/v1/wexels/:id/boosts.
func (h *WexelHandler) ApplyBoost(c *gin.Context) {
	id, wallet, ok := h.ownerAction(c)
	if !ok {
		return
	}
	var req dto.ApplyBoostRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.boosts.ApplyBoost(c.Request.Context(), ports.ApplyBoostRequest{
		WexelID:   id,
		Caller:    wallet,
		TokenMint: req.TokenMint,
		Amount:    req.Amount,
		TxHash:    req.TxHash,
		Now:       h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Applied(c, result.Duplicate, result)
}

// OpenCollateral handles POST /api/v1/wexels/:id/collateral.
func (h *WexelHandler) OpenCollateral(c *gin.Context) {
	id, wallet, ok := h.ownerAction(c)
	if !ok {
		return
	}
	var req dto.OpenCollateralRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.collateral.Open(c.Request.Context(), ports.OpenCollateralRequest{
		WexelID: id,
		Caller:  wallet,
		TxHash:  req.TxHash,
		Now:     h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Applied(c, result.Duplicate, result)
}

// Repay handles POST /api/v1/wexels/:id/collateral/repay.
func (h *WexelHandler) Repay(c *gin.Context) {
	id, wallet, ok := h.ownerAction(c)
	if !ok {
		return
	}
	var req dto.RepayRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.collateral.Repay(c.Request.Context(), ports.RepayRequest{
		WexelID: id,
		Caller:  wallet,
		Amount:  req.Amount,
		TxHash:  req.TxHash,
		Now:     h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Redeem handles POST /api/v1/wexels/:id/redeem.
func (h *WexelHandler) Redeem(c *gin.Context) {
	id, wallet, ok := h.ownerAction(c)
	if !ok {
		return
	}
	var req dto.RedeemRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.deposits.Redeem(c.Request.Context(), ports.RedeemRequest{
		WexelID: id,
		Caller:  wallet,
		TxHash:  req.TxHash,
		Now:     h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"wexel":     dto.NewWexelResponse(result.Wexel),
		"duplicate": result.Duplicate,
	})
}

// ownerAction resolves the wexel id and the caller for a mutating route,
// writing the error response itself on failure.
func (h *WexelHandler) ownerAction(c *gin.Context) (int64, string, bool) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return 0, "", false
	}
	wallet, err := caller(c)
	if err != nil {
		response.Error(c, err)
		return 0, "", false
	}
	return id, wallet, true
}
