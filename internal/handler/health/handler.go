package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifechef-health/careportal-api/internal/handler"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health/live", h.Liveness)
	r.GET("/health/ready", h.Readiness)
}

func (h *Handler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"status": "alive"}))
}

// Readiness reports ready unconditionally; the store is seeded in
// memory before the server starts listening.
func (h *Handler) Readiness(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"status": "ready"}))
}
