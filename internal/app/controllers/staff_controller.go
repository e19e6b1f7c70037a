package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// StaffController handles the public staffing table and back-office CRUD.
type StaffController struct {
	staffService *services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// List returns the staffing table.
func (c *StaffController) List(ctx *gin.Context) {
	positions, err := c.staffService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(positions))
}

// Create adds a staffing row.
func (c *StaffController) Create(ctx *gin.Context) {
	var form dto.StaffForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	position, err := c.staffService.Create(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(position))
}

// Update overwrites a staffing row.
func (c *StaffController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var form dto.StaffForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	position, err := c.staffService.Update(ctx, id, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(position))
}

// Delete removes a staffing row.
func (c *StaffController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.staffService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Staff position deleted."))
}
