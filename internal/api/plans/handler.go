package plans

import (
	"net/http"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func ListPlans(c *gin.Context) {
	var all []plans.Plan
	if err := database.DB.Order("price_zar ASC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}
	c.JSON(http.StatusOK, all)
}
