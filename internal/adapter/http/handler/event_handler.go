package handler

import (
	"wexel-ledger/internal/adapter/http/dto"
	"wexel-ledger/internal/core/domain"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler exposes the operator endpoints: manual event ingestion for
// replays the message bus missed, and an on-demand expiry sweep.
type EventHandler struct {
	reconciler  ports.Reconciler
	marketplace ports.MarketplaceService
	clock       ports.Clock
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(reconciler ports.Reconciler, marketplace ports.MarketplaceService, clock ports.Clock) *EventHandler {
	return &EventHandler{reconciler: reconciler, marketplace: marketplace, clock: clock}
}

// Ingest handles POST /api/v1/admin/events.
func (h *EventHandler) Ingest(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, validation(err))
		return
	}

	ev := domain.LedgerEvent{
		Kind:       domain.EventKind(req.Kind),
		WexelID:    req.WexelID,
		TxHash:     req.TxHash,
		Payload:    req.Payload,
		ObservedAt: h.clock.Now(),
	}
	if req.ObservedAt != nil {
		ev.ObservedAt = req.ObservedAt.UTC()
	}

	out, err := h.reconciler.Apply(c.Request.Context(), ev)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Applied(c, out.Duplicate, dto.EventResponse{
		Kind:      ev.Kind,
		WexelID:   ev.WexelID,
		TxHash:    ev.TxHash,
		Duplicate: out.Duplicate,
	})
}

// SweepExpired handles POST /api/v1/admin/listings/expire.
func (h *EventHandler) SweepExpired(c *gin.Context) {
	n, err := h.marketplace.ExpireListings(c.Request.Context(), h.clock.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SweepResponse{Expired: n})
}
