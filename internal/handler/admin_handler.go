package handler

import (
	"net/http"

	"trip-event-page/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler 편집 화면 진입용 로그인/로그아웃.
// 고정 계정 한 쌍을 확인해서 스토어의 admin 플래그를 올리는 게 전부다.
type AdminHandler struct {
	store *store.EventStore
}

func NewAdminHandler(store *store.EventStore) *AdminHandler {
	return &AdminHandler{store: store}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/admin")
	{
		router.POST("login", h.Login)
		router.POST("logout", h.Logout)
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if !h.store.Login(c, req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": true})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.store.Logout(c)
	c.JSON(http.StatusOK, gin.H{"isAdmin": false})
}

// RequireAdmin admin 플래그가 내려가 있으면 요청을 막는다.
func RequireAdmin(s *store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin login required"})
			return
		}
		c.Next()
	}
}
