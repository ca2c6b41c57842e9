package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/care-scheduler/internal/middleware"
	"github.com/BruksfildServices01/care-scheduler/internal/models"
	"github.com/BruksfildServices01/care-scheduler/internal/storage"
)

type MeHandler struct {
	db       *gorm.DB
	uploader *storage.AvatarUploader
}

func NewMeHandler(db *gorm.DB, uploader *storage.AvatarUploader) *MeHandler {
	return &MeHandler{db: db, uploader: uploader}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	var pro models.Professional
	if err := h.db.First(&pro, professionalID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "professional_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"id":         pro.ID,
			"name":       pro.Name,
			"email":      pro.Email,
			"phone":      pro.Phone,
			"specialty":  pro.Specialty,
			"avatar_url": pro.AvatarURL,
		},
	})
}

// UploadAvatar recebe a imagem via multipart, normaliza e guarda no S3.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	file, _, err := c.Request.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_avatar_file"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), professionalID, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_avatar"})
		return
	}

	if err := h.db.Model(&models.Professional{}).
		Where("id = ?", professionalID).
		Update("avatar_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}
