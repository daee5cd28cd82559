package api

import (
	"log/slog"
	"net/http"

	"github.com/amitbasuri/content-service-go/internal/models"
	"github.com/amitbasuri/content-service-go/internal/storage"
	"github.com/gin-gonic/gin"
)

// statusFor maps a storage error kind onto an HTTP status
func statusFor(err error) int {
	switch storage.KindOf(err) {
	case storage.KindNotFound:
		return http.StatusNotFound
	case storage.KindConstraintViolation:
		return http.StatusConflict
	case storage.KindConnectionFailure:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// renderStoreError renders error.html for a failed store call.
// The underlying error is logged, never shown.
func (h *Handler) renderStoreError(c *gin.Context, err error, message string) {
	ctx := c.Request.Context()
	status := statusFor(err)

	switch status {
	case http.StatusNotFound:
		slog.WarnContext(ctx, "Article not found", "path", c.Request.URL.Path, "error", err)
		message = "Article not found"
	case http.StatusConflict:
		slog.WarnContext(ctx, "Constraint violation", "path", c.Request.URL.Path, "error", err)
		message = "The article conflicts with existing data"
		if storage.IsForeignKeyViolation(err) {
			message = "The article references a category that does not exist"
		}
	case http.StatusServiceUnavailable:
		slog.ErrorContext(ctx, "Database unavailable", "path", c.Request.URL.Path, "error", err)
		message = "Database unavailable, try again later"
	default:
		slog.ErrorContext(ctx, message, "path", c.Request.URL.Path, "error", err)
	}

	renderError(c, status, message)
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", models.ErrorPage{
		Status:  status,
		Message: message,
	})
}
