package paystackwebhooks

import (
	"fmt"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/billing"
	"link2pay-backend/internal/domain/plans"
	"link2pay-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type chargeSuccessData struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"` // kobo/cents
	Channel   string  `json:"channel"`
	PaidAt    string  `json:"paid_at"`
	Customer  struct {
		Email        string `json:"email"`
		CustomerCode string `json:"customer_code"`
	} `json:"customer"`
	Plan struct {
		PlanCode string `json:"plan_code"`
	} `json:"plan"`
	Subscription struct {
		SubscriptionCode string `json:"subscription_code"`
		Status           string `json:"status"`
	} `json:"subscription"`
}

// handleChargeSuccess activates the subscription: this is the only path that
// sets has_active_subscription to true. Resets the failure counter and
// records the payment.
func handleChargeSuccess(c *gin.Context, data *chargeSuccessData) error {
	if data.Customer.Email == "" {
		return fmt.Errorf("charge missing customer email")
	}

	var user users.User
	if err := database.DB.Where("email = ?", data.Customer.Email).First(&user).Error; err != nil {
		// Acknowledge to avoid retries if the user is gone.
		return nil
	}

	updates := map[string]interface{}{
		"has_active_subscription": true,
		"subscription_status":     accounts.StatusActive,
		"billing_failures":        0,
		"cancelled_at":            nil,
		"paystack_customer_code":  data.Customer.CustomerCode,
	}
	if data.Subscription.SubscriptionCode != "" {
		updates["paystack_subscription_code"] = data.Subscription.SubscriptionCode
	}

	var planID *uint
	if data.Plan.PlanCode != "" {
		var plan plans.Plan
		if err := database.DB.Where("paystack_plan_code = ?", data.Plan.PlanCode).First(&plan).Error; err == nil {
			updates["plan_id"] = plan.ID
			planID = &plan.ID
		}
	}

	res := database.DB.Model(&accounts.Account{}).
		Where("user_id = ?", user.ID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to activate subscription: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Billing completed before any trial was started: the successful
		// charge itself creates the account record.
		acct := accounts.Account{
			UserID:                user.ID,
			HasActiveSubscription: true,
			SubscriptionStatus:    accounts.StatusActive,
			PlanID:                planID,
		}
		if data.Customer.CustomerCode != "" {
			code := data.Customer.CustomerCode
			acct.PaystackCustomerCode = &code
		}
		if data.Subscription.SubscriptionCode != "" {
			sub := data.Subscription.SubscriptionCode
			acct.PaystackSubscriptionCode = &sub
		}
		if err := database.DB.Create(&acct).Error; err != nil {
			return fmt.Errorf("failed to create account from charge: %w", err)
		}
	}

	payment := billing.Payment{
		UserID:            user.ID,
		PlanID:            planID,
		PaystackReference: data.Reference,
		AmountZAR:         data.Amount / 100.0,
		Status:            "success",
		Channel:           data.Channel,
	}
	if data.Subscription.SubscriptionCode != "" {
		sub := data.Subscription.SubscriptionCode
		payment.PaystackSubscriptionCode = &sub
	}
	if t, err := time.Parse(time.RFC3339, data.PaidAt); err == nil {
		payment.PaidAt = &t
	}

	if err := database.DB.Create(&payment).Error; err != nil {
		// Duplicate reference on webhook redelivery: already recorded.
		fmt.Println("payment record skipped:", err)
	}

	return nil
}
