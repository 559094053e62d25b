package routes

import (
	adminapi "creative-edge/internal/api/admin"
	authapi "creative-edge/internal/api/auth"
	mediaapi "creative-edge/internal/api/media"
	meetingsapi "creative-edge/internal/api/meetings"
	portfolioapi "creative-edge/internal/api/portfolio"
	"creative-edge/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Portfolio *portfolioapi.Handler
	Media     *mediaapi.Handler
	Meetings  *meetingsapi.Handler
	Admin     *adminapi.Handler
	Gate      middleware.AdminChecker

	RateLimitPerMinute int
	MaxMultipartMemory int64
	// UploadsDir is served at /uploads when set (local storage driver).
	UploadsDir string
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if h.UploadsDir != "" {
		r.Static("/uploads", h.UploadsDir)
	}

	r.GET("/portfolio", h.Portfolio.List)
	r.GET("/portfolio/:id", h.Portfolio.Get)
	r.GET("/media", h.Media.List)

	r.GET("/auth/login", authapi.Login)
	r.GET("/auth/callback", authapi.Callback)

	// Public forms: sanitized and rate limited
	public := r.Group("/")
	public.Use(
		middleware.RateLimitMiddleware(h.RateLimitPerMinute),
		middleware.SanitizeAndCleanInputMiddleware(h.MaxMultipartMemory),
	)
	public.Any("/request-meeting", h.Meetings.RequestMeeting)
	public.POST("/request-meeting/form", h.Meetings.SubmitForm)

	// Admin
	session := r.Group("/admin")
	session.Use(middleware.AuthMiddleware())
	session.GET("/session", h.Admin.Session)

	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireAdmin(h.Gate),
		middleware.SanitizeAndCleanInputMiddleware(h.MaxMultipartMemory),
	)
	admin.POST("/portfolio", h.Portfolio.Create)
	admin.POST("/media", h.Media.Create)
}
