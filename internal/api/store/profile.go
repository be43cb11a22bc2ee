package store

import (
	"net/http"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	storedomain "link2pay-backend/internal/domain/store"

	"github.com/gin-gonic/gin"
)

// UpdateProfile saves the storefront identity and payment-method fields.
// Completing business name + WhatsApp number (the handle is generated) is
// what finishes the customize_store onboarding step; filling any payment
// field finishes setup_payments.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	ctx := c.Request.Context()

	var input struct {
		BusinessName   string `json:"business_name"`
		WhatsAppNumber string `json:"whatsapp_number"`

		PayfastMerchantID string `json:"payfast_merchant_id"`
		SnapscanLink      string `json:"snapscan_link"`
		CapitecPaylink    string `json:"capitec_paylink"`
		EFTDetails        string `json:"eft_details"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountStore := accounts.NewStore(database.DB)
	acct, err := accountStore.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not set up yet"})
		return
	}

	updates := map[string]interface{}{}
	if input.BusinessName != "" {
		updates["business_name"] = input.BusinessName
	}
	if input.WhatsAppNumber != "" {
		updates["whatsapp_number"] = input.WhatsAppNumber
	}
	if input.PayfastMerchantID != "" {
		updates["payfast_merchant_id"] = input.PayfastMerchantID
	}
	if input.SnapscanLink != "" {
		updates["snapscan_link"] = input.SnapscanLink
	}
	if input.CapitecPaylink != "" {
		updates["capitec_paylink"] = input.CapitecPaylink
	}
	if input.EFTDetails != "" {
		updates["eft_details"] = input.EFTDetails
	}

	if len(updates) > 0 {
		if err := accountStore.Update(ctx, userID, updates); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		if input.BusinessName != "" {
			acct.BusinessName = input.BusinessName
		}
	}

	handle, err := storedomain.EnsureStoreHandle(database.DB, acct)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate store handle"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"store_handle":   handle,
		"storefront_url": storedomain.BuildStorefrontURL(handle),
	})
}
