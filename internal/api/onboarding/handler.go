package onboarding

import (
	"log"
	"net/http"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/onboarding"

	"github.com/gin-gonic/gin"
)

// Tracker is wired at startup with the analytics publisher.
var Tracker *onboarding.Tracker

// GetSteps evaluates every step predicate for the caller's onboarding flavor
// and returns their states. Clients poll this during the guided walkthrough.
func GetSteps(c *gin.Context) {
	userID := c.GetUint("user_id")
	ctx := c.Request.Context()

	store := accounts.NewStore(database.DB)
	acct, err := store.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not set up yet"})
		return
	}

	choice := acct.OnboardingChoice
	if choice == "" {
		choice = accounts.ChoicePhysicalProducts
	}

	source := onboarding.NewSource(database.DB)
	states := onboarding.EvaluateAll(ctx, source, userID, choice)

	if Tracker != nil {
		Tracker.RecordCompletions(ctx, userID, choice, states)
	}

	c.JSON(http.StatusOK, gin.H{
		"choice": choice,
		"steps":  states,
	})
}

// SetChoice records which guided-setup sequence the merchant wants.
func SetChoice(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		Choice string `json:"choice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Choice != accounts.ChoicePhysicalProducts && input.Choice != accounts.ChoiceBookings {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Choice must be physical_products or bookings"})
		return
	}

	store := accounts.NewStore(database.DB)
	if err := store.Update(c.Request.Context(), userID, map[string]interface{}{
		"onboarding_choice": input.Choice,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save choice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"choice": input.Choice})
}

// Complete marks the guided setup finished.
func Complete(c *gin.Context) {
	finishOnboarding(c)
}

// Skip is equivalent to Complete from the state machine's point of view:
// both leave onboarding behind for good.
func Skip(c *gin.Context) {
	finishOnboarding(c)
}

func finishOnboarding(c *gin.Context) {
	userID := c.GetUint("user_id")

	store := accounts.NewStore(database.DB)
	err := store.Update(c.Request.Context(), userID, map[string]interface{}{
		"onboarding_completed":    true,
		"first_sign_in_completed": true,
	})
	if err != nil {
		// Optimistic: the client proceeds either way, the flags are
		// re-applied on the next successful write.
		log.Printf("onboarding completion write failed for user %d: %v", userID, err)
	}

	c.JSON(http.StatusOK, gin.H{"onboarding_completed": true})
}
