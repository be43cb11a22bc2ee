package store

import (
	"net/http"
	"path/filepath"
	"strings"

	"link2pay-backend/database"
	"link2pay-backend/internal/domain/accounts"
	"link2pay-backend/internal/domain/media"
	"link2pay-backend/internal/infra/uploads"

	"github.com/gin-gonic/gin"
)

// Uploader is wired at startup; nil means uploads are disabled.
var Uploader *uploads.Uploader

const maxLogoSize = 5 * 1024 * 1024 // 5MB

var allowedLogoExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// POST /store/logo
// form-data: file=<image>
func UploadLogo(c *gin.Context) {
	userID := c.GetUint("user_id")

	if Uploader == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Uploads not configured"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExt[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only jpg/jpeg/png/webp allowed"})
		return
	}
	if file.Size > maxLogoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5MB)"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot open uploaded file"})
		return
	}
	defer f.Close()

	url, publicID, err := Uploader.UploadLogo(c.Request.Context(), f, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	image := media.Image{
		UserID:   userID,
		Kind:     "logo",
		PublicID: publicID,
		URL:      url,
	}
	if err := database.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	accountStore := accounts.NewStore(database.DB)
	if err := accountStore.Update(c.Request.Context(), userID, map[string]interface{}{
		"logo_url": url,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save logo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "public_id": publicID})
}
