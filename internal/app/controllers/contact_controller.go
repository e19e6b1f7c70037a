package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// ContactController handles the public contact form and back-office inbox.
type ContactController struct {
	contactService *services.ContactService
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{
		contactService: contactService,
	}
}

// Submit accepts a public contact message.
func (c *ContactController) Submit(ctx *gin.Context) {
	var req dto.ContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	contact, err := c.contactService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(contact))
}

// List returns messages newest first.
func (c *ContactController) List(ctx *gin.Context) {
	contacts, err := c.contactService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(contacts))
}

// MarkRead flags a message read.
func (c *ContactController) MarkRead(ctx *gin.Context) {
	c.setRead(ctx, true)
}

// MarkUnread flags a message unread.
func (c *ContactController) MarkUnread(ctx *gin.Context) {
	c.setRead(ctx, false)
}

func (c *ContactController) setRead(ctx *gin.Context, read bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if read {
		err = c.contactService.MarkRead(ctx, id)
	} else {
		err = c.contactService.MarkUnread(ctx, id)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Contact updated."))
}

// UnreadCount returns the number of unread messages.
func (c *ContactController) UnreadCount(ctx *gin.Context) {
	count, err := c.contactService.UnreadCount(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UnreadCountResponse{UnreadCount: count}))
}

// Delete removes a message.
func (c *ContactController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.contactService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Contact deleted."))
}
