package store

import (
	"net/http"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

func ListProducts(c *gin.Context) {
	userID := c.GetUint("user_id")

	var products []catalog.Product
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

func CreateProduct(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		Name     string  `json:"name" binding:"required"`
		PriceZAR float64 `json:"price_zar" binding:"required"`
		ImageURL string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := catalog.Product{
		UserID:   userID,
		Name:     input.Name,
		PriceZAR: input.PriceZAR,
		ImageURL: input.ImageURL,
		InStock:  true,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func UpdateProduct(c *gin.Context) {
	userID := c.GetUint("user_id")

	var product catalog.Product
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var input struct {
		Name     *string  `json:"name"`
		PriceZAR *float64 `json:"price_zar"`
		ImageURL *string  `json:"image_url"`
		InStock  *bool    `json:"in_stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.PriceZAR != nil {
		updates["price_zar"] = *input.PriceZAR
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.InStock != nil {
		updates["in_stock"] = *input.InStock
	}

	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func DeleteProduct(c *gin.Context) {
	userID := c.GetUint("user_id")

	res := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		Delete(&catalog.Product{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
