package handler

import (
	"wexel-ledger/internal/adapter/http/dto"
	"wexel-ledger/internal/core/ports"
	"wexel-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles marketplace endpoints.
type ListingHandler struct {
	marketplace ports.MarketplaceService
	query       ports.QueryService
	clock       ports.Clock
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(marketplace ports.MarketplaceService, query ports.QueryService, clock ports.Clock) *ListingHandler {
	return &ListingHandler{marketplace: marketplace, query: query, clock: clock}
}

// List handles GET /api/v1/listings.
func (h *ListingHandler) List(c *gin.Context) {
	var q dto.ListingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, validation(err))
		return
	}
	filter := q.Filter()

	listings, err := h.query.ListActiveListings(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paged(c, listings, filter.Limit, filter.Offset, len(listings))
}

// Create handles POST /api/v1/wexels/:id/listings.
func (h *ListingHandler) Create(c *gin.Context) {
	id, err := wexelIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	wallet, err := caller(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CreateListingRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	listing, err := h.marketplace.CreateListing(c.Request.Context(), ports.CreateListingRequest{
		WexelID:  id,
		Caller:   wallet,
		AskPrice: req.AskPrice,
		Auction:  req.Auction,
		MinBid:   req.MinBid,
		ExpiryTs: req.ExpiryTs,
		Now:      h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, listing)
}

// Buy handles POST /api/v1/listings/:listing_id/buy. The caller is the buyer.
func (h *ListingHandler) Buy(c *gin.Context) {
	listingID, err := listingIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	wallet, err := caller(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.BuyListingRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.marketplace.Buy(c.Request.Context(), ports.BuyRequest{
		ListingID: listingID,
		Buyer:     wallet,
		Price:     req.Price,
		TxHash:    req.TxHash,
		Now:       h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// Cancel handles DELETE /api/v1/listings/:listing_id.
func (h *ListingHandler) Cancel(c *gin.Context) {
	listingID, err := listingIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	wallet, err := caller(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	listing, err := h.marketplace.Cancel(c.Request.Context(), ports.CancelListingRequest{
		ListingID: listingID,
		Caller:    wallet,
		Now:       h.clock.Now(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, listing)
}
