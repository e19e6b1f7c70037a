package models

import (
	"time"
)

// Guardian defines a parent/guardian account based on the 'guardians' table.
type Guardian struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	CNIC         *string   `json:"cnic,omitempty" db:"cnic"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Admin defines a back-office account based on the 'admins' table.
type Admin struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Student belongs to exactly one guardian.
type Student struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Age        *int      `json:"age,omitempty" db:"age"`
	GuardianID int64     `json:"guardianId" db:"guardian_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// AttendanceRecord is one day's attendance for a student.
type AttendanceRecord struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	Date        time.Time `json:"date" db:"date"`
	Status      string    `json:"status" db:"status"`
}

// ProgressReport is one subject report for a student.
type ProgressReport struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	Subject     string    `json:"subject" db:"subject"`
	Marks       int       `json:"marks" db:"marks"`
	Comments    *string   `json:"comments,omitempty" db:"comments"`
	ReportDate  time.Time `json:"reportDate" db:"report_date"`
}

// PasswordResetToken is a single-use opaque reset token bound to an account.
type PasswordResetToken struct {
	ID        int64      `json:"-" db:"id"`
	Token     string     `json:"-" db:"token"`
	Email     string     `json:"-" db:"email"`
	Role      string     `json:"-" db:"role"`
	ExpiresAt time.Time  `json:"-" db:"expires_at"`
	UsedAt    *time.Time `json:"-" db:"used_at"`
	CreatedAt time.Time  `json:"-" db:"created_at"`
}

// IsExpired reports whether the token's lifetime has passed.
func (t *PasswordResetToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsUsed reports whether the token was already consumed.
func (t *PasswordResetToken) IsUsed() bool {
	return t.UsedAt != nil
}
