package store

import (
	"net/http"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/catalog"
	storedomain "link2pay-backend/internal/domain/store"

	"github.com/gin-gonic/gin"
)

// GetStorefront is the public read of a merchant's store by handle: profile,
// visible sections, and in-stock products. No auth, no gating - an expired
// merchant's storefront stays reachable, only their dashboard is locked.
func GetStorefront(c *gin.Context) {
	handle := c.Param("handle")

	var acct accounts.Account
	if err := database.DB.Where("store_handle = ?", handle).First(&acct).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
		return
	}

	var sections []storedomain.StoreSection
	database.DB.
		Where("user_id = ? AND visible = ?", acct.UserID, true).
		Order("sort_index ASC").
		Find(&sections)

	var products []catalog.Product
	database.DB.
		Where("user_id = ? AND in_stock = ?", acct.UserID, true).
		Order("created_at DESC").
		Find(&products)

	c.JSON(http.StatusOK, gin.H{
		"business_name":   acct.BusinessName,
		"logo_url":        acct.LogoURL,
		"whatsapp_number": acct.WhatsAppNumber,
		"payment_methods": gin.H{
			"payfast_merchant_id": acct.PayfastMerchantID,
			"snapscan_link":       acct.SnapscanLink,
			"capitec_paylink":     acct.CapitecPaylink,
			"eft_details":         acct.EFTDetails,
		},
		"sections": sections,
		"products": products,
	})
}
