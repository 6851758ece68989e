package domain

// WexelSnapshot is a consistent read of a wexel and the rows that gate its
// operations, taken at a single point between commits.
type WexelSnapshot struct {
	Wexel         Wexel               `json:"wexel"`
	Pool          *Pool               `json:"pool,omitempty"`
	Position      *CollateralPosition `json:"position,omitempty"`
	ActiveListing *Listing            `json:"active_listing,omitempty"`
	BoostValueUSD int64               `json:"boost_value_usd"`
}
