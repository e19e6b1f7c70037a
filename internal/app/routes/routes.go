package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nasheeman/portal/internal/app/controllers"
	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/middleware"
	"github.com/nasheeman/portal/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	guardianController *controllers.GuardianController,
	admissionController *controllers.AdmissionController,
	courseController *controllers.CourseController,
	eventController *controllers.EventController,
	staffController *controllers.StaffController,
	popupController *controllers.PopupController,
	contactController *controllers.ContactController,
	siteInfoController *controllers.SiteInfoController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("ok"))
	})

	// --- Public routes ---
	v1.GET("/courses", courseController.List)
	v1.GET("/events", eventController.List)
	v1.GET("/staff", staffController.List)
	v1.GET("/popups", popupController.ListActive)
	v1.GET("/site-info", siteInfoController.List)
	v1.POST("/contacts", contactController.Submit)

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", authController.Register)
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/forgot-password", authController.ForgotPassword)
		authRoutes.POST("/reset-password", authController.ResetPassword)
	}

	// --- Guardian routes ---
	guardian := v1.Group("/guardian")
	guardian.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleGuardian))
	{
		guardian.GET("/dashboard", guardianController.Dashboard)
		guardian.GET("/profile", guardianController.Profile)
		guardian.PUT("/profile", guardianController.UpdateProfile)
	}

	admissions := v1.Group("/admissions")
	admissions.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleGuardian))
	{
		admissions.POST("", admissionController.Submit)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		admin.GET("/dashboard", dashboardController.Counts)
		admin.GET("/charts/courses-events", dashboardController.CoursesEventsChart)
		admin.GET("/charts/activity-breakdown", dashboardController.ActivityBreakdown)

		admin.POST("/courses", courseController.Create)
		admin.PUT("/courses/:courseId", courseController.Update)
		admin.DELETE("/courses/:courseId", courseController.Delete)

		admin.POST("/events", eventController.Create)
		admin.PUT("/events/:id", eventController.Update)
		admin.DELETE("/events/:id", eventController.Delete)

		admin.GET("/staff", staffController.List)
		admin.POST("/staff", staffController.Create)
		admin.PUT("/staff/:id", staffController.Update)
		admin.DELETE("/staff/:id", staffController.Delete)

		admin.GET("/popups", popupController.ListAll)
		admin.POST("/popups", popupController.Create)
		admin.PUT("/popups/:id", popupController.Update)
		admin.DELETE("/popups/:id", popupController.Delete)

		admin.GET("/contacts", contactController.List)
		admin.GET("/contacts/unread-count", contactController.UnreadCount)
		admin.POST("/contacts/:id/read", contactController.MarkRead)
		admin.POST("/contacts/:id/unread", contactController.MarkUnread)
		admin.DELETE("/contacts/:id", contactController.Delete)

		admin.GET("/site-info", siteInfoController.List)
		admin.PUT("/site-info", siteInfoController.Update)

		admin.GET("/admissions", admissionController.List)
		admin.GET("/admissions/:id", admissionController.Get)
		admin.POST("/admissions/delete", admissionController.BulkDelete)
	}
}
