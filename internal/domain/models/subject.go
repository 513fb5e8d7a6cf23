// internal/domain/models/subject.go
package models

import "time"

// Subject is a course taught within a department. The platform denormalizes
// the department and assigned staff names onto the record so list views can
// render without extra lookups.
type Subject struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Code           string    `json:"code,omitempty"`
	DepartmentID   string    `json:"departmentId"`
	DepartmentName string    `json:"departmentName,omitempty"`
	StaffID        string    `json:"staffId,omitempty"`
	StaffName      string    `json:"staffName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// EntityID returns the join key used by list reconciliation.
func (s Subject) EntityID() string { return s.ID }
