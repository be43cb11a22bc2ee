package store

import (
	"encoding/json"
	"net/http"

	"link2pay-backend/database"
	storedomain "link2pay-backend/internal/domain/store"

	"github.com/gin-gonic/gin"
)

func ListSections(c *gin.Context) {
	userID := c.GetUint("user_id")

	var sections []storedomain.StoreSection
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("sort_index ASC").
		Find(&sections).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sections"})
		return
	}

	c.JSON(http.StatusOK, sections)
}

func UpsertSection(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		ID        string          `json:"id"`
		Type      string          `json:"type" binding:"required"`
		SortIndex int             `json:"sort_index"`
		Visible   *bool           `json:"visible"`
		Props     json.RawMessage `json:"props"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visible := true
	if input.Visible != nil {
		visible = *input.Visible
	}
	props := input.Props
	if len(props) == 0 {
		props = json.RawMessage("{}")
	}

	if input.ID != "" {
		var section storedomain.StoreSection
		if err := database.DB.
			Where("id = ? AND user_id = ?", input.ID, userID).
			First(&section).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
			return
		}
		updates := map[string]interface{}{
			"type":       input.Type,
			"sort_index": input.SortIndex,
			"visible":    visible,
			"props":      props,
		}
		if err := database.DB.Model(&section).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update section"})
			return
		}
		c.JSON(http.StatusOK, section)
		return
	}

	section := storedomain.StoreSection{
		UserID:    userID,
		Type:      input.Type,
		SortIndex: input.SortIndex,
		Visible:   visible,
		Props:     props,
	}
	if err := database.DB.Create(&section).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create section"})
		return
	}

	c.JSON(http.StatusCreated, section)
}

func DeleteSection(c *gin.Context) {
	userID := c.GetUint("user_id")

	res := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&storedomain.StoreSection{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete section"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Section not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
