package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditAction names a ledger mutation made over HTTP.
type AuditAction string

const (
	AuditPoolCreate      AuditAction = "pool.create"
	AuditPoolStatus      AuditAction = "pool.status"
	AuditClaim           AuditAction = "rewards.claim"
	AuditBoost           AuditAction = "boost.apply"
	AuditCollateralOpen  AuditAction = "collateral.open"
	AuditCollateralRepay AuditAction = "collateral.repay"
	AuditRedeem          AuditAction = "wexel.redeem"
	AuditListingCreate   AuditAction = "listing.create"
	AuditListingBuy      AuditAction = "listing.buy"
	AuditListingCancel   AuditAction = "listing.cancel"
	AuditEventIngest     AuditAction = "event.ingest"
	AuditListingSweep    AuditAction = "listing.sweep"
	AuditPriceOverride   AuditAction = "price.override"
)

// CtxAuditResource and CtxAuditNote let a handler name the resource and add a
// free-text note to its audit line.
const (
	CtxAuditResource = "audit_resource"
	CtxAuditNote     = "audit_note"
)

// auditRoutes keys on "METHOD route-pattern".
var auditRoutes = map[string]AuditAction{
	"POST /api/v1/admin/pools":                 AuditPoolCreate,
	"PATCH /api/v1/admin/pools/:id":            AuditPoolStatus,
	"POST /api/v1/wexels/:id/claims":           AuditClaim,
	"POST /api/v1/wexels/:id/boosts":           AuditBoost,
	"POST /api/v1/wexels/:id/collateral":       AuditCollateralOpen,
	"POST /api/v1/wexels/:id/collateral/repay": AuditCollateralRepay,
	"POST /api/v1/wexels/:id/redeem":           AuditRedeem,
	"POST /api/v1/wexels/:id/listings":         AuditListingCreate,
	"POST /api/v1/listings/:listing_id/buy":    AuditListingBuy,
	"DELETE /api/v1/listings/:listing_id":      AuditListingCancel,
	"POST /api/v1/admin/events":                AuditEventIngest,
	"POST /api/v1/admin/listings/expire":       AuditListingSweep,
	"POST /api/v1/admin/prices":                AuditPriceOverride,
}

// AuditLog writes one line per successful mutation to the audit logger.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		action := mapRouteToAction(c.Request.Method, c.FullPath())
		if action == "" {
			return
		}

		ev := log.Info().
			Str("action", string(action)).
			Str("wallet", Wallet(c)).
			Str("resource_id", resourceID(c)).
			Str("request_id", c.GetString(CtxRequestID)).
			Str("client_ip", c.ClientIP()).
			Int("status", status)
		if note := c.GetString(CtxAuditNote); note != "" {
			ev = ev.Str("note", note)
		}
		ev.Msg("audit")
	}
}

func mapRouteToAction(method, route string) AuditAction {
	if route == "" {
		return ""
	}
	return auditRoutes[method+" "+route]
}

func resourceID(c *gin.Context) string {
	if id := c.GetString(CtxAuditResource); id != "" {
		return id
	}
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Param("listing_id")
}
