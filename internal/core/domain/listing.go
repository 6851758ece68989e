package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus represents the lifecycle state of a marketplace listing.
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusSold      ListingStatus = "sold"
	ListingStatusCancelled ListingStatus = "cancelled"
	ListingStatusExpired   ListingStatus = "expired"
)

// Listing offers a wexel for resale.
type Listing struct {
	ID        uuid.UUID     `json:"id"`
	WexelID   int64         `json:"wexel_id"`
	Seller    string        `json:"seller"`
	AskPrice  int64         `json:"ask_price"`
	Auction   bool          `json:"auction"`
	MinBid    *int64        `json:"min_bid,omitempty"`
	ExpiryTs  *time.Time    `json:"expiry_ts,omitempty"`
	Status    ListingStatus `json:"status"`
	Buyer     *string       `json:"buyer,omitempty"`
	SoldPrice *int64        `json:"sold_price,omitempty"`
	TxHash    *string       `json:"tx_hash,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// IsActive reports whether the listing can still be bought or cancelled.
func (l *Listing) IsActive() bool {
	return l.Status == ListingStatusActive
}

// IsTerminal returns true if the listing is in a final state.
func (l *Listing) IsTerminal() bool {
	return l.Status == ListingStatusSold ||
		l.Status == ListingStatusCancelled ||
		l.Status == ListingStatusExpired
}

// IsExpiredAt reports whether an expiry is set and now has reached it.
func (l *Listing) IsExpiredAt(now time.Time) bool {
	return l.ExpiryTs != nil && !now.Before(*l.ExpiryTs)
}

// ListingFilter narrows the active listing query.
type ListingFilter struct {
	PoolID   *int64
	MinAPYBP *int
	MaxPrice *int64
	Limit    int
	Offset   int
}
