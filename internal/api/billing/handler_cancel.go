package billing

import (
	"net/http"
	"time"

	"link2pay-backend/config"
	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/infra/paystack"

	"github.com/gin-gonic/gin"
)

// Cancel disables the Paystack subscription and marks the account cancelled.
// The webhook will confirm, but the record is updated immediately so the
// client sees the cancellation without waiting for Paystack.
func Cancel(c *gin.Context) {
	userID := c.GetUint("user_id")
	ctx := c.Request.Context()

	accountStore := accounts.NewStore(database.DB)
	acct, err := accountStore.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No account found"})
		return
	}
	if acct.PaystackSubscriptionCode == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No active subscription"})
		return
	}

	var input struct {
		EmailToken string `json:"email_token"`
	}
	_ = c.ShouldBindJSON(&input)

	client := paystack.NewClient(config.PAYSTACK_SECRET_KEY)
	if err := client.DisableSubscription(ctx, *acct.PaystackSubscriptionCode, input.EmailToken); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to cancel with billing provider"})
		return
	}

	now := time.Now()
	err = accountStore.Update(ctx, userID, map[string]interface{}{
		"has_active_subscription": false,
		"subscription_status":     accounts.StatusCancelled,
		"cancelled_at":            now,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cancellation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cancelled_at": now})
}
