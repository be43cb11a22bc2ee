package middleware

import (
	"context"
	"net/http"

	"link2pay-backend/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// SnapshotFunc loads one evaluation of the caller's account state.
type SnapshotFunc func(ctx context.Context, userID uint) access.Snapshot

// RequireActiveAccess blocks protected routes unless the account has an
// active subscription or a running trial. Denials carry an upgrade prompt
// pointing the client at billing setup; the fail-closed snapshot from a
// fetch failure denies the same way an expired trial does.
func RequireActiveAccess(load SnapshotFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		snap := load(c.Request.Context(), userID)
		if snap.Allowed() {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
			"error":     "Subscription or trial required",
			"directive": snap.Directive,
			"stage":     snap.Stage,
			"upgrade":   "/billing/subscribe",
		})
	}
}
