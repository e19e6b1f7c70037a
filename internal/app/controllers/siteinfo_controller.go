package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// SiteInfoController serves the site settings read surface and the
// back-office update endpoint.
type SiteInfoController struct {
	siteInfoService *services.SiteInfoService
}

// NewSiteInfoController creates a new SiteInfoController
func NewSiteInfoController(siteInfoService *services.SiteInfoService) *SiteInfoController {
	return &SiteInfoController{
		siteInfoService: siteInfoService,
	}
}

// List returns all site settings.
func (c *SiteInfoController) List(ctx *gin.Context) {
	info, err := c.siteInfoService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// Update upserts site settings and returns the full settings map.
func (c *SiteInfoController) Update(ctx *gin.Context) {
	var req dto.SiteInfoUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	info, err := c.siteInfoService.Update(ctx, req.Values)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}
