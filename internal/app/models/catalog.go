package models

import (
	"time"
)

// Course is a catalog entry managed by the back office.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    string    `json:"courseId" db:"course_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Duration    string    `json:"duration" db:"duration"`
	Level       string    `json:"level" db:"level"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Event is a dated announcement with an optional image.
type Event struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// StaffPosition is one row of the sanctioned staffing table.
type StaffPosition struct {
	ID          int64  `json:"id" db:"id"`
	Designation string `json:"designation" db:"designation"`
	BPSGrade    string `json:"bpsGrade" db:"bps_grade"`
	Quantity    int    `json:"quantity" db:"quantity"`
}

// Popup is a timed promotional message shown on the public site until its
// expiry date.
type Popup struct {
	ID        int64      `json:"id" db:"id"`
	Title     *string    `json:"title,omitempty" db:"title"`
	Message   string     `json:"message" db:"message"`
	ImageURL  *string    `json:"imageUrl,omitempty" db:"image_url"`
	ShowUntil *time.Time `json:"showUntil,omitempty" db:"show_until"`
	Type      *string    `json:"type,omitempty" db:"type"`
}

// Contact is a public contact-form message.
type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   *string   `json:"subject,omitempty" db:"subject"`
	Message   string    `json:"message" db:"message"`
	IsRead    bool      `json:"isRead" db:"is_read"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// SiteInfo is one key/value row of site settings.
type SiteInfo struct {
	ID    int64  `json:"id" db:"id"`
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}
