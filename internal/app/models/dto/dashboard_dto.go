package dto

import (
	"github.com/nasheeman/portal/internal/app/models"
)

// AdminDashboardResponse carries the back-office landing counts.
type AdminDashboardResponse struct {
	CourseCount        int `json:"courseCount"`
	StaffCount         int `json:"staffCount"`
	StudentCount       int `json:"studentCount"`
	EventCount         int `json:"eventCount"`
	UnreadContactCount int `json:"unreadContactCount"`
	AdmissionCount     int `json:"admissionCount"`
}

// CoursesEventsChartResponse is the per-month creation chart for the last
// six months, oldest first.
type CoursesEventsChartResponse struct {
	Months  []string `json:"months"`
	Courses []int    `json:"courses"`
	Events  []int    `json:"events"`
}

// ActivityBreakdownResponse is the totals pie chart.
type ActivityBreakdownResponse struct {
	Courses    int `json:"courses"`
	Events     int `json:"events"`
	Staff      int `json:"staff"`
	Contacts   int `json:"contacts"`
	Admissions int `json:"admissions"`
}

// GuardianDashboardResponse aggregates a guardian's landing page data.
type GuardianDashboardResponse struct {
	GuardianName    string                    `json:"guardianName"`
	UpcomingEvents  []*models.Event           `json:"upcomingEvents"`
	Children        []*models.Student         `json:"children"`
	Attendance      []*models.AttendanceRecord `json:"attendance"`
	ProgressReports []*models.ProgressReport  `json:"progressReports"`
}
