package handler

import (
	"net/http"

	"trip-event-page/internal/model"
	"trip-event-page/internal/service"
	apperrors "trip-event-page/pkg/app_errors"
	"trip-event-page/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EventHandler struct {
	sync    service.SyncService
	gateway service.EventService
}

func NewEventHandler(sync service.SyncService, gateway service.EventService) *EventHandler {
	return &EventHandler{sync: sync, gateway: gateway}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine, gate gin.HandlerFunc) {
	router := r.Group("/api/v1", gate)
	{
		router.GET("events", h.List)
		router.GET("events/:uuid", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:uuid", h.Update)
		router.PATCH("events/:uuid", h.Patch)
		router.PUT("events/:uuid/activate", h.Activate)
		router.DELETE("events/:uuid", h.Delete)
	}
}

// SaveEventRequest 생성/편집 플로우의 전체 페이로드
type SaveEventRequest struct {
	Title           string               `json:"title" binding:"required"`
	Subtitle        *string              `json:"subtitle"`
	IsActive        bool                 `json:"isActive"`
	BackgroundType  model.BackgroundType `json:"backgroundType"`
	BackgroundValue string               `json:"backgroundValue"`
	DefaultTheme    model.ThemeMode      `json:"defaultTheme"`
	MainContent     []model.ContentCard  `json:"mainContent"`
	Schedules       []model.DaySchedule  `json:"schedules"`
	Location        model.LocationInfo   `json:"location"`
}

func (r SaveEventRequest) toEvent() model.Event {
	return model.Event{
		Title:           r.Title,
		Subtitle:        r.Subtitle,
		IsActive:        r.IsActive,
		BackgroundType:  r.BackgroundType,
		BackgroundValue: r.BackgroundValue,
		DefaultTheme:    r.DefaultTheme,
		MainContent:     r.MainContent,
		Schedules:       r.Schedules,
		Location:        r.Location,
	}
}

// PatchEventRequest events 행만 부분 업데이트
type PatchEventRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	IsActive *bool   `json:"isActive"`
}

// EventSummaryResponse 대시보드 목록 한 줄
type EventSummaryResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Subtitle      *string `json:"subtitle,omitempty"`
	IsActive      bool    `json:"isActive"`
	ContentCount  int     `json:"contentCount"`
	ScheduleCount int     `json:"scheduleCount"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.sync.ListEvents(c)
	if err != nil {
		h.handleError(c, err, "List")
		return
	}

	summaries := make([]EventSummaryResponse, 0, len(events))
	for _, e := range events {
		itemCount := 0
		for _, s := range e.Schedules {
			itemCount += len(s.Items)
		}
		summaries = append(summaries, EventSummaryResponse{
			ID:            e.ID.String(),
			Title:         e.Title,
			Subtitle:      e.Subtitle,
			IsActive:      e.IsActive,
			ContentCount:  len(e.MainContent),
			ScheduleCount: itemCount,
		})
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := BindEventID(c)
	if !ok {
		return
	}
	event, err := h.gateway.GetEventByID(c, id)
	if err != nil {
		h.handleError(c, err, "GetByID")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req SaveEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	// 생성 플로우: 활성화는 대시보드에서 따로, 필터는 AND 규칙
	event := req.toEvent()
	event.IsActive = false
	event = event.FilterForCreate()

	id, tier, err := h.sync.SaveEvent(c, &event)
	if err != nil {
		h.handleError(c, err, "Create")
		return
	}

	// 어느 계층에 저장됐는지는 메시지로 구분하지 않는다
	logger.WithComponent("handler").Info("event created",
		zap.String("event_id", id.String()), zap.String("tier", string(tier)))
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "이벤트가 생성되었습니다"})
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := BindEventID(c)
	if !ok {
		return
	}
	var req SaveEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	// 편집 플로우: OR 규칙으로 완화된 필터
	event := req.toEvent()
	event.ID = id
	event = event.FilterForEdit()

	savedID, tier, err := h.sync.SaveEvent(c, &event)
	if err != nil {
		h.handleError(c, err, "Update")
		return
	}

	logger.WithComponent("handler").Info("event saved",
		zap.String("event_id", savedID.String()), zap.String("tier", string(tier)))
	c.JSON(http.StatusOK, gin.H{"id": savedID, "message": "이벤트가 저장되었습니다"})
}

func (h *EventHandler) Patch(c *gin.Context) {
	id, ok := BindEventID(c)
	if !ok {
		return
	}
	var req PatchEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if req.Title == nil && req.Subtitle == nil && req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	params := model.UpdateEventParams{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		IsActive: req.IsActive,
	}
	if err := h.gateway.UpdateEvent(c, id, params); err != nil {
		h.handleError(c, err, "Patch")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *EventHandler) Activate(c *gin.Context) {
	id, ok := BindEventID(c)
	if !ok {
		return
	}
	if err := h.sync.ActivateEvent(c, id); err != nil {
		// 실패 시 활성 이벤트가 0건일 수 있다. 클라이언트는 다시 조회해야 한다.
		h.handleError(c, err, "Activate")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "isActive": true})
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := BindEventID(c)
	if !ok {
		return
	}
	if err := h.sync.DeleteEvent(c, id); err != nil {
		h.handleError(c, err, "Delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case err == apperrors.ErrEventNotFound:
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case err == apperrors.ErrInvalidInput:
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
