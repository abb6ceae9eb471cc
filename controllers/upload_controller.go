package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/akksi/picky/services"
	"github.com/akksi/picky/utils"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Photos *services.PhotoService
}

func NewUploadController(photos *services.PhotoService) *UploadController {
	return &UploadController{Photos: photos}
}

type UploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage pushes a base64 photo to S3 and labels it. Labeling is
// advisory: if Rekognition is unavailable the upload still succeeds.
func (uc *UploadController) UploadImage(c *gin.Context) {
	userID := c.GetUint("userID")

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, fmt.Sprintf("user-%d", userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	var labels []string
	if uc.Photos != nil {
		labels, err = uc.Photos.DetectLabels(req.ImageBase64)
		if err != nil {
			log.Printf("label detection failed: %v", err)
			labels = nil
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    url,
		"labels": labels,
		"is_cat": services.ContainsCat(labels),
	})
}
