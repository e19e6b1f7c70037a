package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories aggregates all repository instances.
type Repositories struct {
	AdminRepository              *AdminRepository
	GuardianRepository           *GuardianRepository
	StudentRepository            *StudentRepository
	AdmissionRepository          *AdmissionRepository
	CourseRepository             *CourseRepository
	EventRepository              *EventRepository
	StaffRepository              *StaffRepository
	PopupRepository              *PopupRepository
	ContactRepository            *ContactRepository
	PasswordResetTokenRepository *PasswordResetTokenRepository
	SiteInfoRepository           *SiteInfoRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:              NewAdminRepository(db),
		GuardianRepository:           NewGuardianRepository(db),
		StudentRepository:            NewStudentRepository(db),
		AdmissionRepository:          NewAdmissionRepository(db),
		CourseRepository:             NewCourseRepository(db),
		EventRepository:              NewEventRepository(db),
		StaffRepository:              NewStaffRepository(db),
		PopupRepository:              NewPopupRepository(db),
		ContactRepository:            NewContactRepository(db),
		PasswordResetTokenRepository: NewPasswordResetTokenRepository(db),
		SiteInfoRepository:           NewSiteInfoRepository(db),
	}
}
