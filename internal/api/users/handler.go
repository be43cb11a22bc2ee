package users

import (
	"context"
	"log"
	"net/http"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/access"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// Session-start evaluations are bounded so a slow store never leaves the
// client stuck on a loading screen.
const meFetchTimeout = 5 * time.Second

// GetCurrentUser returns the user together with one evaluation of the
// account state. Every gating decision in the response comes from the same
// snapshot.
func GetCurrentUser(c *gin.Context) {
	email := c.GetString("email")
	userID := c.GetUint("user_id")
	if email == "" || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), meFetchTimeout)
	defer cancel()

	loader := access.NewLoader(accounts.NewStore(database.DB))
	snap := loader.Load(ctx, userID)

	if snap.FlipFirstSignIn {
		applyFirstSignInFlip(ctx, userID, &snap)
	}

	var plan *PlanDTO
	if snap.Account != nil {
		plan = BuildPlanDTO(snap.Account.Plan)
	}

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Billing: BillingDTO{
			Plan:         plan,
			Subscription: BuildSubscriptionDTO(snap.Account),
			Trial:        BuildTrialDTO(snap.Status, snap.Account),
		},
		Access:     BuildAccessDTO(snap),
		Onboarding: BuildOnboardingDTO(snap),
	}

	c.JSON(http.StatusOK, resp)
}

// applyFirstSignInFlip persists the one-shot first-sign-in acknowledgement.
// Idempotent: the update sets the flag to true no matter how often it runs.
// A failed write is logged and the in-memory snapshot still reflects the
// transition, so the client is not blocked.
func applyFirstSignInFlip(ctx context.Context, userID uint, snap *access.Snapshot) {
	store := accounts.NewStore(database.DB)
	if err := store.Update(ctx, userID, map[string]interface{}{
		"first_sign_in_completed": true,
	}); err != nil {
		log.Printf("first_sign_in flip failed for user %d: %v", userID, err)
	}
	if snap.Account != nil {
		snap.Account.FirstSignInCompleted = true
	}
	snap.FlipFirstSignIn = false
}
