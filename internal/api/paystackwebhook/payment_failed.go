package paystackwebhooks

import (
	"fmt"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"

	"github.com/gin-gonic/gin"
)

type paymentFailedData struct {
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Subscription struct {
		SubscriptionCode string `json:"subscription_code"`
	} `json:"subscription"`
}

// handlePaymentFailed counts the failed charge. Hitting the threshold
// suspends the account: the subscription flag drops and the status tag moves
// to expired, so the gate sends the merchant to the payment wall.
func handlePaymentFailed(c *gin.Context, data *paymentFailedData) error {
	acct, err := findAccountForEvent(data.Customer.Email, data.Subscription.SubscriptionCode)
	if err != nil || acct == nil {
		return nil
	}

	updates, _ := billingFailureUpdates(acct.BillingFailures)

	if err := database.DB.Model(&accounts.Account{}).
		Where("id = ?", acct.ID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to record billing failure: %w", err)
	}

	return nil
}

// billingFailureUpdates counts one more failed charge and, at the threshold,
// suspends the subscription. Returns the field updates and whether the
// account was suspended.
func billingFailureUpdates(currentFailures int) (map[string]interface{}, bool) {
	failures := currentFailures + 1
	updates := map[string]interface{}{
		"billing_failures": failures,
	}
	if failures >= accounts.BillingFailureThreshold {
		updates["has_active_subscription"] = false
		updates["subscription_status"] = accounts.StatusExpired
		return updates, true
	}
	return updates, false
}

func findAccountForEvent(email, subscriptionCode string) (*accounts.Account, error) {
	var acct accounts.Account

	if subscriptionCode != "" {
		if err := database.DB.Where("paystack_subscription_code = ?", subscriptionCode).First(&acct).Error; err == nil {
			return &acct, nil
		}
	}

	if email != "" {
		err := database.DB.
			Joins("JOIN users ON users.id = accounts.user_id").
			Where("users.email = ?", email).
			First(&acct).Error
		if err == nil {
			return &acct, nil
		}
	}

	return nil, nil
}
