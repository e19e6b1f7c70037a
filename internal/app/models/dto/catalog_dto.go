package dto

import (
	"mime/multipart"
)

// CourseForm is the create/update payload for a course. The image arrives as
// a separate multipart part.
type CourseForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Duration    string `form:"duration"`
	Level       string `form:"level"`

	Image *multipart.FileHeader `form:"-"`
}

// EventForm is the create/update payload for an event.
type EventForm struct {
	Title       string `form:"title"`
	Date        string `form:"date"`
	Description string `form:"description"`

	Image *multipart.FileHeader `form:"-"`
}

// StaffForm is the create/update payload for a staffing row.
type StaffForm struct {
	Designation string `form:"designation"`
	BPSGrade    string `form:"bpsGrade"`
	Quantity    string `form:"quantity"`
}

// PopupForm is the create/update payload for a popup.
type PopupForm struct {
	Title     string `form:"title"`
	Message   string `form:"message"`
	ShowUntil string `form:"showUntil"`
	Type      string `form:"type"`

	Image *multipart.FileHeader `form:"-"`
}

// SiteInfoUpdateRequest is the admin payload for site settings. Keys not
// present are left untouched.
type SiteInfoUpdateRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// UnreadCountResponse reports the number of unread contact messages.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
