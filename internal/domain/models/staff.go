// internal/domain/models/staff.go
package models

import "time"

// Staff is a teaching account on the Pulse platform.
type Staff struct {
	ID             string    `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	DepartmentID   string    `json:"departmentId"`
	DepartmentName string    `json:"departmentName,omitempty"`
	Designation    string    `json:"designation,omitempty"`
	Status         string    `json:"status,omitempty"` // active | inactive
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EntityID returns the join key used by list reconciliation.
func (s Staff) EntityID() string { return s.ID }
