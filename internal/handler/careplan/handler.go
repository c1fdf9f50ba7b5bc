package careplan

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/handler"
	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/service/careplan"
)

type Handler struct {
	service careplan.CarePlanService
}

func NewHandler(service careplan.CarePlanService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/care-plans")
	{
		plans.GET("", h.ListCarePlans)
		plans.POST("", h.CreateCarePlan)
		plans.GET("/:id", h.GetCarePlan)
	}
}

func (h *Handler) ListCarePlans(c *gin.Context) {
	var filter model.CarePlanFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	plans, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(plans))
}

func (h *Handler) CreateCarePlan(c *gin.Context) {
	var req model.CreateCarePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user, ok := handler.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req, user.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetCarePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid care plan ID"))
		return
	}

	plan, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"care_plan":            plan,
		"goal_completion_rate": plan.GoalCompletionRate(),
	}))
}
