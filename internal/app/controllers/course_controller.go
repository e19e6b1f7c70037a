package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/services"
	"github.com/nasheeman/portal/internal/middleware"
)

// CourseController handles the public course listing and back-office CRUD.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// List returns every course.
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// Create adds a course from a multipart form.
func (c *CourseController) Create(ctx *gin.Context) {
	var form dto.CourseForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	form.Image = fileHeader(ctx, "image")

	course, err := c.courseService.Create(ctx, &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course))
}

// Update overwrites a course.
func (c *CourseController) Update(ctx *gin.Context) {
	var form dto.CourseForm
	if err := ctx.ShouldBind(&form); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}
	form.Image = fileHeader(ctx, "image")

	course, err := c.courseService.Update(ctx, ctx.Param("courseId"), &form)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course))
}

// Delete removes a course and its image.
func (c *CourseController) Delete(ctx *gin.Context) {
	if err := c.courseService.Delete(ctx, ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted."))
}
