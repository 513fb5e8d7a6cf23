// internal/domain/models/student.go
package models

import "time"

// Student is a feedback-submitting account on the Pulse platform.
type Student struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	RollNumber     string    `json:"rollNumber,omitempty"`
	DepartmentID   string    `json:"departmentId"`
	DepartmentName string    `json:"departmentName,omitempty"`
	Year           int       `json:"year,omitempty"`
	Status         string    `json:"status,omitempty"` // active | inactive
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EntityID returns the join key used by list reconciliation.
func (s Student) EntityID() string { return s.ID }
