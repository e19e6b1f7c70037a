package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
)

// GuardianController serves the guardian dashboard and profile.
type GuardianController struct {
	guardianService *services.GuardianService
}

// NewGuardianController creates a new GuardianController
func NewGuardianController(guardianService *services.GuardianService) *GuardianController {
	return &GuardianController{
		guardianService: guardianService,
	}
}

// Dashboard returns the guardian landing page data.
func (c *GuardianController) Dashboard(ctx *gin.Context) {
	guardianID, ok := middleware.GuardianID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	dashboard, err := c.guardianService.Dashboard(ctx, guardianID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dashboard))
}

// Profile returns the guardian's account details.
func (c *GuardianController) Profile(ctx *gin.Context) {
	guardianID, ok := middleware.GuardianID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	profile, err := c.guardianService.Profile(ctx, guardianID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// UpdateProfile updates the guardian's account.
func (c *GuardianController) UpdateProfile(ctx *gin.Context) {
	guardianID, ok := middleware.GuardianID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.guardianService.UpdateProfile(ctx, guardianID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
