package admin

import (
	"net/http"
	"time"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/access"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/billing"
	"link2pay-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type userRow struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
	Stage    string `json:"stage"`
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	now := time.Now()
	rows := make([]userRow, 0, len(all))
	for _, u := range all {
		var acct accounts.Account
		var acctPtr *accounts.Account
		if err := database.DB.Where("user_id = ?", u.ID).First(&acct).Error; err == nil {
			acctPtr = &acct
		}
		rows = append(rows, userRow{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Verified: u.IsVerified,
			Stage:    string(access.StageOf(now, acctPtr)),
		})
	}

	c.JSON(http.StatusOK, rows)
}

func GetUserDetails(c *gin.Context) {
	var user users.User
	if err := database.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var acctPtr *accounts.Account
	var acct accounts.Account
	if err := database.DB.Preload("Plan").Where("user_id = ?", user.ID).First(&acct).Error; err == nil {
		acctPtr = &acct
	}

	snap := access.Evaluate(time.Now(), acctPtr)

	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"account":   acctPtr,
		"stage":     snap.Stage,
		"status":    snap.Status,
		"directive": snap.Directive,
	})
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.
		Preload("User").
		Preload("Plan").
		Order("created_at DESC").
		Limit(200).
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
