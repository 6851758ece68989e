package domain

import "time"

// NotificationType is the subject suffix of a post-commit notification.
type NotificationType string

const (
	NotifyWexelCreated     NotificationType = "wexel.created"
	NotifyWexelRedeemed    NotificationType = "wexel.redeemed"
	NotifyClaimCreated     NotificationType = "claim.created"
	NotifyBoostApplied     NotificationType = "boost.applied"
	NotifyCollateralOpened NotificationType = "collateral.opened"
	NotifyCollateralRepaid NotificationType = "collateral.repaid"
	NotifyListingCreated   NotificationType = "listing.created"
	NotifyListingSold      NotificationType = "listing.sold"
	NotifyListingCancelled NotificationType = "listing.cancelled"
	NotifyListingExpired   NotificationType = "listing.expired"
)

// Notification is emitted after a ledger mutation commits. Delivery is
// best-effort and never affects the committed state.
type Notification struct {
	Type       NotificationType `json:"type"`
	WexelID    int64            `json:"wexel_id"`
	Owner      string           `json:"owner,omitempty"`
	Data       any              `json:"data,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
