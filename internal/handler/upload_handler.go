package handler

import (
	"net/http"

	"trip-event-page/internal/upload"
	"trip-event-page/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadHandler 카드/배경 이미지 업로드. 파일을 외부 스토리지에 올리고 URL을 돌려준다.
type UploadHandler struct {
	uploader upload.Uploader
}

func NewUploadHandler(uploader upload.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func (h *UploadHandler) RegisterRoutes(r *gin.Engine, gate gin.HandlerFunc) {
	router := r.Group("/api/v1", gate)
	{
		router.POST("uploads", h.Upload)
	}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open file"})
		return
	}
	defer file.Close()

	category := c.PostForm("category")

	url, err := h.uploader.Upload(c, file, category)
	if err != nil {
		logger.WithComponent("handler").Error("upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
