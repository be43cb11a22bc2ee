package billing

import (
	"errors"
	"net/http"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/store"

	"github.com/gin-gonic/gin"
)

// StartTrial opens the 7-day trial window. Creates the account record if
// this is the first billing-setup action; a trial can only ever be started
// once per account.
func StartTrial(c *gin.Context) {
	userID := c.GetUint("user_id")
	ctx := c.Request.Context()

	var input struct {
		BusinessName string `json:"business_name"`
	}
	_ = c.ShouldBindJSON(&input)

	accountStore := accounts.NewStore(database.DB)
	acct, err := accountStore.Get(ctx, userID)
	if err != nil && !errors.Is(err, accounts.ErrNotFound) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not load account"})
		return
	}

	if acct != nil && acct.TrialUsed {
		c.JSON(http.StatusConflict, gin.H{"error": "Trial already used"})
		return
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, accounts.TrialDays)

	if acct == nil {
		acct = &accounts.Account{
			UserID:             userID,
			BusinessName:       input.BusinessName,
			TrialStartedAt:     &now,
			TrialEndsAt:        &trialEnd,
			TrialUsed:          true,
			SubscriptionStatus: accounts.StatusTrial,
		}
		if err := accountStore.Insert(ctx, acct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		if _, err := store.EnsureStoreHandle(database.DB, acct); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate store handle"})
			return
		}
	} else {
		err := accountStore.Update(ctx, userID, map[string]interface{}{
			"trial_started_at":    now,
			"trial_ends_at":       trialEnd,
			"trial_used":          true,
			"subscription_status": accounts.StatusTrial,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start trial"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"trial_started_at": now,
		"trial_ends_at":    trialEnd,
	})
}
