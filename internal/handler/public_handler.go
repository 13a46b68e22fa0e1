package handler

import (
	"net/http"

	"trip-event-page/internal/service"
	"trip-event-page/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PublicHandler 방문자용 읽기 경로. 폴백 정책을 거친 활성 이벤트를 그대로 내보낸다.
type PublicHandler struct {
	sync service.SyncService
}

func NewPublicHandler(sync service.SyncService) *PublicHandler {
	return &PublicHandler{sync: sync}
}

func (h *PublicHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("view/active", h.ActiveEvent)
	}
}

func (h *PublicHandler) ActiveEvent(c *gin.Context) {
	event, err := h.sync.ActiveEvent(c)
	if err != nil {
		// 시드 후에도 없는 경우는 정말로 비어 있는 것
		logger.WithComponent("handler").Warn("no active event", zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "No active event"})
		return
	}
	c.JSON(http.StatusOK, event)
}
