package api

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/amitbasuri/content-service-go/internal/storage"
	"github.com/amitbasuri/content-service-go/web"
	"github.com/gin-gonic/gin"
)

var templates = template.Must(template.ParseFS(web.Templates, "templates/*.html"))

// HealthChecker reports whether the database answers queries
type HealthChecker interface {
	HealthCheck(ctx context.Context) (time.Time, error)
}

// Handler handles HTTP requests for the content service
type Handler struct {
	store  storage.Store
	health HealthChecker
}

// NewHandler creates a new API handler
func NewHandler(store storage.Store, health HealthChecker) *Handler {
	return &Handler{
		store:  store,
		health: health,
	}
}

// RegisterRoutes registers all routes and views on the given router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(templates)

	// Health check endpoints
	r.GET("/health", h.Health)
	r.GET("/readiness", h.Readiness)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/articles")
	})

	articles := r.Group("/articles")
	{
		articles.GET("", h.ListArticles)
		articles.POST("", h.CreateArticle)
		articles.GET("/create", h.ShowCreateForm)
		articles.GET("/edit/:id", h.ShowEditForm)
		articles.POST("/edit/:id", h.UpdateArticle)
		articles.POST("/delete/:id", h.DeleteArticle)
	}
}

// Health checks if the service is healthy
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Readiness checks that the database answers queries
func (h *Handler) Readiness(c *gin.Context) {
	now, err := h.health.HealthCheck(c.Request.Context())
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "database_time": now})
}
