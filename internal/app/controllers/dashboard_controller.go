package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// DashboardController serves the back-office landing counts and charts.
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Counts returns the landing page totals.
func (c *DashboardController) Counts(ctx *gin.Context) {
	counts, err := c.dashboardService.Counts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(counts))
}

// CoursesEventsChart returns the six-month creation chart.
func (c *DashboardController) CoursesEventsChart(ctx *gin.Context) {
	chart, err := c.dashboardService.CoursesEventsChart(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(chart))
}

// ActivityBreakdown returns the totals pie chart.
func (c *DashboardController) ActivityBreakdown(ctx *gin.Context) {
	breakdown, err := c.dashboardService.ActivityBreakdown(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(breakdown))
}
