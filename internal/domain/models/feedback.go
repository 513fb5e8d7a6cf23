// internal/domain/models/feedback.go
package models

import "time"

// Feedback is one student response about a subject/staff pairing. Names are
// denormalized by the platform for list rendering; IDs remain the join keys
// for the cascading filters.
type Feedback struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName,omitempty"`
	SubjectID    string    `json:"subjectId"`
	SubjectName  string    `json:"subjectName,omitempty"`
	StaffID      string    `json:"staffId"`
	StaffName    string    `json:"staffName,omitempty"`
	DepartmentID string    `json:"departmentId"`
	Rating       int       `json:"rating"` // 1..5
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EntityID returns the join key used by list reconciliation.
func (f Feedback) EntityID() string { return f.ID }
