package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/services"
	"github.com/emre/coursehub/internal/middleware"
)

// AnalyticsController serves the engagement dashboard
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetDashboard aggregates engagement counters
// @Summary Get the analytics dashboard
// @Description Teachers see aggregates for their own courses; admins see everything
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse "Dashboard data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /analytics/dashboard [get]
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)

	dashboard, err := c.analyticsService.GetDashboard(ctx.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
