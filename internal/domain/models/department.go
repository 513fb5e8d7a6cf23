// internal/domain/models/department.go
package models

import "time"

// Department is an academic unit on the Pulse platform. Subjects, staff,
// and students all hang off a department, which makes it the root of every
// cascading filter chain in the admin views.
type Department struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EntityID returns the join key used by list reconciliation.
func (d Department) EntityID() string { return d.ID }
