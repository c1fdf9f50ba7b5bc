package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifechef-health/careportal-api/internal/handler"
	"github.com/lifechef-health/careportal-api/internal/service/analytics"
)

type Handler struct {
	service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/analytics")
	{
		group.GET("/overview", h.Overview)
		group.GET("/adherence", h.AdherenceTrend)
		group.GET("/conditions", h.Conditions)
		group.GET("/reports", h.ListReports)
	}
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(overview))
}

func (h *Handler) AdherenceTrend(c *gin.Context) {
	trend, err := h.service.Trend(c.Request.Context(), c.Query("timeframe"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(trend))
}

func (h *Handler) Conditions(c *gin.Context) {
	conditions, err := h.service.Conditions(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(conditions))
}

func (h *Handler) ListReports(c *gin.Context) {
	reports, err := h.service.Reports(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(reports))
}
