package mealplan

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/handler"
	"github.com/lifechef-health/careportal-api/internal/service/careplan"
)

type Handler struct {
	service careplan.CarePlanService
}

func NewHandler(service careplan.CarePlanService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	plans := r.Group("/meal-plans")
	{
		plans.GET("", h.ListMealPlans)
		plans.GET("/:id", h.GetMealPlan)
	}
}

func (h *Handler) ListMealPlans(c *gin.Context) {
	plans, err := h.service.MealPlans(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(plans))
}

func (h *Handler) GetMealPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid meal plan ID"))
		return
	}

	plan, err := h.service.MealPlan(c.Request.Context(), id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(plan))
}
