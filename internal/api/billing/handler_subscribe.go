package billing

import (
	"errors"
	"fmt"
	"net/http"

	"link2pay-backend/config"
	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/plans"
	"link2pay-backend/internal/infra/paystack"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Subscribe starts a Paystack checkout for a plan and returns the hosted
// authorization URL. Activation itself happens on the charge.success webhook.
func Subscribe(c *gin.Context) {
	email := c.GetString("email")
	userID := c.GetUint("user_id")
	ctx := c.Request.Context()

	var input struct {
		PlanID uint `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plan plans.Plan
	if err := database.DB.First(&plan, input.PlanID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan not found"})
		return
	}

	client := paystack.NewClient(config.PAYSTACK_SECRET_KEY)
	accountStore := accounts.NewStore(database.DB)

	acct, err := accountStore.Get(ctx, userID)
	if err != nil && !errors.Is(err, accounts.ErrNotFound) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not load account"})
		return
	}

	// First billing-setup action creates the account record.
	if acct == nil {
		acct = &accounts.Account{
			UserID:             userID,
			SubscriptionStatus: accounts.StatusTrial,
		}
		if err := accountStore.Insert(ctx, acct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
	}

	if acct.PaystackCustomerCode == nil {
		code, err := client.CreateCustomer(ctx, email, acct.BusinessName)
		if err != nil {
			fmt.Println("Paystack customer create failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Billing provider unavailable"})
			return
		}
		if err := accountStore.Update(ctx, userID, map[string]interface{}{
			"paystack_customer_code": code,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save billing customer"})
			return
		}
	}

	reference := fmt.Sprintf("l2p-%d-%s", userID, uuid.NewString())
	authURL, err := client.InitializeSubscription(ctx, email, plan.PaystackPlanCode, reference)
	if err != nil {
		fmt.Println("Paystack initialize failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start checkout"})
		return
	}

	if err := accountStore.Update(ctx, userID, map[string]interface{}{
		"plan_id": plan.ID,
	}); err != nil {
		fmt.Println("plan pre-assignment failed:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"authorization_url": authURL,
		"reference":         reference,
	})
}
