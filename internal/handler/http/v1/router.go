package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the whole HTTP surface.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Citizen-facing routes. The intake and map pages are static files;
	// page rendering is out of scope for this service.
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/report")
	})
	r.GET("/report", func(c *gin.Context) {
		c.File("./static/report.html")
	})
	r.POST("/report", h.submitReport)
	r.GET("/map", func(c *gin.Context) {
		c.File("./static/map.html")
	})

	api := r.Group("/api")
	{
		api.GET("/crimes", h.apiCrimes)
		api.GET("/crime-types", h.apiCrimeTypes)
		api.GET("/health", h.healthCheck)
	}

	r.GET("/admin/login", func(c *gin.Context) {
		c.File("./static/admin_login.html")
	})
	r.POST("/admin/login", h.login)

	// Admin-only routes behind the session middleware.
	sessionAuth := SessionAuthMiddleware(h.authService, h.logger)
	r.GET("/feed", sessionAuth, h.crimeFeed)

	admin := r.Group("/admin", sessionAuth)
	{
		admin.GET("", h.adminDashboard)
		admin.GET("/logout", h.logout)
		admin.GET("/report/:id", h.reportDetail)
		admin.GET("/verify/:id", h.verifyReport)
		admin.GET("/reject/:id", h.rejectReport)
	}
}
