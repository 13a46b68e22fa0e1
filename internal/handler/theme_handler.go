package handler

import (
	"net/http"

	"trip-event-page/internal/model"
	"trip-event-page/internal/store"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct {
	themes *store.ThemeStore
}

func NewThemeHandler(themes *store.ThemeStore) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

func (h *ThemeHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("theme", h.Get)
		router.PUT("theme", h.Set)
		router.GET("theme/presets", h.Presets)
	}
}

func (h *ThemeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.themes.Get())
}

func (h *ThemeHandler) Set(c *gin.Context) {
	var pref model.ThemePreference
	if err := BindJson(c, &pref); err != nil {
		return
	}
	if !pref.Mode.IsValid() || !pref.ColorTheme.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid theme"})
		return
	}
	h.themes.Set(c, pref)
	c.JSON(http.StatusOK, pref)
}

func (h *ThemeHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, model.ColorPresets)
}
