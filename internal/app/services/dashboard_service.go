package services

import (
	"context"
	"time"

	"github.com/nasheeman/portal/internal/app/models/dto"
	"github.com/nasheeman/portal/internal/app/repositories"
)

// chartMonths is how many trailing months the creation chart covers.
const chartMonths = 6

// DashboardService aggregates back-office counts and charts.
type DashboardService struct {
	courseRepo    *repositories.CourseRepository
	eventRepo     *repositories.EventRepository
	staffRepo     *repositories.StaffRepository
	studentRepo   *repositories.StudentRepository
	contactRepo   *repositories.ContactRepository
	admissionRepo *repositories.AdmissionRepository
	now           func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	courseRepo *repositories.CourseRepository,
	eventRepo *repositories.EventRepository,
	staffRepo *repositories.StaffRepository,
	studentRepo *repositories.StudentRepository,
	contactRepo *repositories.ContactRepository,
	admissionRepo *repositories.AdmissionRepository,
) *DashboardService {
	return &DashboardService{
		courseRepo:    courseRepo,
		eventRepo:     eventRepo,
		staffRepo:     staffRepo,
		studentRepo:   studentRepo,
		contactRepo:   contactRepo,
		admissionRepo: admissionRepo,
		now:           time.Now,
	}
}

// Counts returns the landing page totals.
func (s *DashboardService) Counts(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	courseCount, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	staffCount, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	studentCount, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	eventCount, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	unreadCount, err := s.contactRepo.UnreadCount(ctx)
	if err != nil {
		return nil, err
	}
	admissionCount, err := s.admissionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboardResponse{
		CourseCount:        courseCount,
		StaffCount:         staffCount,
		StudentCount:       studentCount,
		EventCount:         eventCount,
		UnreadContactCount: unreadCount,
		AdmissionCount:     admissionCount,
	}, nil
}

// CoursesEventsChart returns per-month created counts for the trailing six
// months, oldest month first.
func (s *DashboardService) CoursesEventsChart(ctx context.Context) (*dto.CoursesEventsChartResponse, error) {
	now := s.now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	chart := &dto.CoursesEventsChartResponse{
		Months:  make([]string, 0, chartMonths),
		Courses: make([]int, 0, chartMonths),
		Events:  make([]int, 0, chartMonths),
	}

	for i := chartMonths - 1; i >= 0; i-- {
		from := currentMonth.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)

		courseCount, err := s.courseRepo.CountCreatedBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		eventCount, err := s.eventRepo.CountCreatedBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}

		chart.Months = append(chart.Months, from.Format("Jan 2006"))
		chart.Courses = append(chart.Courses, courseCount)
		chart.Events = append(chart.Events, eventCount)
	}

	return chart, nil
}

// ActivityBreakdown returns the totals pie chart.
func (s *DashboardService) ActivityBreakdown(ctx context.Context) (*dto.ActivityBreakdownResponse, error) {
	courseCount, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	eventCount, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	staffCount, err := s.staffRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	contactCount, err := s.contactRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	admissionCount, err := s.admissionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityBreakdownResponse{
		Courses:    courseCount,
		Events:     eventCount,
		Staff:      staffCount,
		Contacts:   contactCount,
		Admissions: admissionCount,
	}, nil
}
