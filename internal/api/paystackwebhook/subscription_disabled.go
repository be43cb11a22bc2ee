package paystackwebhooks

import (
	"fmt"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/infra/paystack"

	"github.com/gin-gonic/gin"
)

type subscriptionDisabledData struct {
	SubscriptionCode string `json:"subscription_code"`
	Status           string `json:"status"`
	Customer         struct {
		Email string `json:"email"`
	} `json:"customer"`
}

func handleSubscriptionDisabled(c *gin.Context, data *subscriptionDisabledData) error {
	acct, err := findAccountForEvent(data.Customer.Email, data.SubscriptionCode)
	if err != nil || acct == nil {
		return nil
	}

	// non-renewing subscriptions stay active until the paid period ends;
	// only a terminal status drops access.
	if paystack.NormalizeStatus(data.Status) == "active" {
		return nil
	}

	updates := map[string]interface{}{
		"has_active_subscription": false,
		"subscription_status":     accounts.StatusCancelled,
	}
	if acct.CancelledAt == nil {
		updates["cancelled_at"] = time.Now()
	}

	if err := database.DB.Model(&accounts.Account{}).
		Where("id = ?", acct.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to record cancellation: %w", err)
	}

	return nil
}
