package handler

import (
	"strconv"

	"wexel-ledger/internal/adapter/http/dto"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/apperror"
	"wexel-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// PoolHandler handles pool endpoints.
type PoolHandler struct {
	deposits ports.DepositService
	clock    ports.Clock
}

// NewPoolHandler creates a new PoolHandler.
func NewPoolHandler(deposits ports.DepositService, clock ports.Clock) *PoolHandler {
	return &PoolHandler{deposits: deposits, clock: clock}
}

// List handles GET /api/v1/pools. ?active=false includes closed pools.
func (h *PoolHandler) List(c *gin.Context) {
	activeOnly := true
	if raw := c.Query("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, apperror.Validation("active must be a boolean"))
			return
		}
		activeOnly = v
	}

	pools, err := h.deposits.ListPools(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPoolList(pools))
}

// Get handles GET /api/v1/pools/:id.
func (h *PoolHandler) Get(c *gin.Context) {
	id, err := positiveIDParam(c, "id", "pool id")
	if err != nil {
		response.Error(c, err)
		return
	}
	pool, err := h.deposits.GetPool(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPoolResponse(pool))
}

// Create handles POST /api/v1/admin/pools.
func (h *PoolHandler) Create(c *gin.Context) {
	var req dto.CreatePoolRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	pool, err := h.deposits.CreatePool(c.Request.Context(), ports.CreatePoolRequest{
		ID:            req.ID,
		APYBaseBP:     req.APYBaseBP,
		LockMonths:    req.LockMonths,
		MinDeposit:    req.MinDeposit,
		BoostTargetBP: req.BoostTargetBP,
		BoostMaxBP:    req.BoostMaxBP,
		Now:           h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewPoolResponse(pool))
}

// SetActive handles PATCH /api/v1/admin/pools/:id.
func (h *PoolHandler) SetActive(c *gin.Context) {
	id, err := positiveIDParam(c, "id", "pool id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SetPoolActiveRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	pool, err := h.deposits.SetPoolActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPoolResponse(pool))
}
