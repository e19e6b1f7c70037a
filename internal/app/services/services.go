package services

import (
	"github.com/nasheeman/portal/internal/app/repositories"
	"github.com/nasheeman/portal/internal/pkg/auth"
	"github.com/nasheeman/portal/internal/pkg/filestorage"
	"github.com/nasheeman/portal/internal/pkg/mailer"
)

// Services aggregates all service instances.
type Services struct {
	AuthService      *AuthService
	GuardianService  *GuardianService
	AdmissionService *AdmissionService
	CourseService    *CourseService
	EventService     *EventService
	StaffService     *StaffService
	PopupService     *PopupService
	ContactService   *ContactService
	SiteInfoService  *SiteInfoService
	DashboardService *DashboardService
}

// NewServices wires every service with its repositories and shared
// infrastructure.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	fileStore filestorage.FileStore,
	mail mailer.Mailer,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			repos.AdminRepository,
			repos.GuardianRepository,
			repos.PasswordResetTokenRepository,
			jwtService,
			mail,
		),
		GuardianService: NewGuardianService(
			repos.GuardianRepository,
			repos.StudentRepository,
			repos.EventRepository,
		),
		AdmissionService: NewAdmissionService(repos.AdmissionRepository, fileStore),
		CourseService:    NewCourseService(repos.CourseRepository, fileStore),
		EventService:     NewEventService(repos.EventRepository, fileStore),
		StaffService:     NewStaffService(repos.StaffRepository),
		PopupService:     NewPopupService(repos.PopupRepository, fileStore),
		ContactService:   NewContactService(repos.ContactRepository),
		SiteInfoService:  NewSiteInfoService(repos.SiteInfoRepository),
		DashboardService: NewDashboardService(
			repos.CourseRepository,
			repos.EventRepository,
			repos.StaffRepository,
			repos.StudentRepository,
			repos.ContactRepository,
			repos.AdmissionRepository,
		),
	}
}
