package handler

import (
	"wexel-ledger/internal/adapter/http/dto"
	"wexel-ledger/internal/adapter/http/middleware"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// PriceHandler handles operator price overrides.
type PriceHandler struct {
	prices ports.PriceAdminService
	clock  ports.Clock
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(prices ports.PriceAdminService, clock ports.Clock) *PriceHandler {
	return &PriceHandler{prices: prices, clock: clock}
}

// SetManual handles POST /api/v1/admin/prices.
func (h *PriceHandler) SetManual(c *gin.Context) {
	var req dto.ManualPriceRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.prices.SetManualPrice(c.Request.Context(), ports.ManualPriceRequest{
		Mint:     req.Mint,
		PriceUSD: req.PriceUSD,
		Reason:   req.Reason,
		Operator: middleware.Wallet(c),
		Now:      h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxAuditResource, quote.Mint)
	c.Set(middleware.CtxAuditNote, req.Reason)
	response.Created(c, quote)
}
