package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// PopupController handles the public popup feed and back-office CRUD.
type PopupController struct {
	popupService *services.PopupService
}

// NewPopupController creates a new PopupController
func NewPopupController(popupService *services.PopupService) *PopupController {
	return &PopupController{
		popupService: popupService,
	}
}

// ListActive returns popups still within their display window.
func (c *PopupController) ListActive(ctx *gin.Context) {
	popups, err := c.popupService.ListActive(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(popups))
}

// ListAll returns every popup for the back office.
func (c *PopupController) ListAll(ctx *gin.Context) {
	popups, err := c.popupService.ListAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(popups))
}

// Create adds a popup from a multipart form.
func (c *PopupController) Create(ctx *gin.Context) {
	var form dto.PopupForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	form.Image = fileHeader(ctx, "image")

	popup, err := c.popupService.Create(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(popup))
}

// Update overwrites a popup.
func (c *PopupController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var form dto.PopupForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	form.Image = fileHeader(ctx, "image")

	popup, err := c.popupService.Update(ctx, id, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(popup))
}

// Delete removes a popup and its image.
func (c *PopupController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.popupService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Popup deleted."))
}
