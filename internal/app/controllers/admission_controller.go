package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// maxAdmissionFormMemory caps in-memory multipart parsing; larger parts spill
// to temporary files.
const maxAdmissionFormMemory = 32 << 20

// AdmissionController handles the admission submission workflow and the
// back-office admission views.
type AdmissionController struct {
	admissionService *services.AdmissionService
}

// NewAdmissionController creates a new AdmissionController
func NewAdmissionController(admissionService *services.AdmissionService) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// Submit accepts the multipart admission form.
func (c *AdmissionController) Submit(ctx *gin.Context) {
	if err := ctx.Request.ParseMultipartForm(maxAdmissionFormMemory); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	var form dto.AdmissionForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	form.Photo = fileHeader(ctx, "photo")
	form.DisabilityCertificate = fileHeader(ctx, "disabilityCertificate")
	if ctx.Request.MultipartForm != nil {
		form.Documents = ctx.Request.MultipartForm.File["documents"]
	}

	admission, err := c.admissionService.Submit(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SubmitAdmissionResponse{ID: admission.ID}))
}

// List returns every application for the back office.
func (c *AdmissionController) List(ctx *gin.Context) {
	admissions, err := c.admissionService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admissions))
}

// Get returns one application with its documents.
func (c *AdmissionController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admission, err := c.admissionService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(admission))
}

// BulkDelete removes the given applications and their files.
func (c *AdmissionController) BulkDelete(ctx *gin.Context) {
	var req dto.DeleteAdmissionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	deleted, err := c.admissionService.BulkDelete(ctx, req.IDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"deleted": deleted}))
}

// fileHeader returns the named upload or nil when absent.
func fileHeader(ctx *gin.Context, name string) *multipart.FileHeader {
	fh, err := ctx.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}
