package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
	"github.com/nasheeman/portal/internal/pkg/apperrors"
)

// EventController handles the public event listing and back-office CRUD.
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// List returns events newest first; ?limit= caps the result.
func (c *EventController) List(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("limit must be a non-negative number"))
			return
		}
		limit = n
	}

	events, err := c.eventService.List(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// Create adds an event from a multipart form.
func (c *EventController) Create(ctx *gin.Context) {
	var form dto.EventForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	form.Image = fileHeader(ctx, "image")

	event, err := c.eventService.Create(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// Update overwrites an event.
func (c *EventController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var form dto.EventForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	form.Image = fileHeader(ctx, "image")

	event, err := c.eventService.Update(ctx, id, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// Delete removes an event and its image.
func (c *EventController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.eventService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted."))
}
