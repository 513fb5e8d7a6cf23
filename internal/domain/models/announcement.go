// internal/domain/models/announcement.go
package models

import "time"

// Announcement audience identifiers.
//
// These values are stored on the platform in the Announcement.Audience field
// and control which dashboards surface the announcement.
const (
	AudienceAll      = "all"
	AudienceStaff    = "staff"
	AudienceStudents = "students"
)

// Audiences is the full set of allowed audience identifiers.
var Audiences = []string{
	AudienceAll,
	AudienceStaff,
	AudienceStudents,
}

// IsValidAudience checks if a value is a valid announcement audience.
func IsValidAudience(value string) bool {
	for _, a := range Audiences {
		if a == value {
			return true
		}
	}
	return false
}

// Announcement is an admin-authored notice shown on role dashboards.
// Body is HTML; it is sanitized on the way in, never on the way out.
// StartsAt/EndsAt bound the visibility window; nil means unbounded.
type Announcement struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	Audience  string     `json:"audience"` // all | staff | students
	Active    bool       `json:"active"`
	StartsAt  *time.Time `json:"startsAt,omitempty"`
	EndsAt    *time.Time `json:"endsAt,omitempty"`
	CreatedBy string     `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// EntityID returns the join key used by list reconciliation.
func (a Announcement) EntityID() string { return a.ID }

// VisibleTo reports whether the announcement should surface for an audience
// at the given instant.
func (a Announcement) VisibleTo(audience string, now time.Time) bool {
	if !a.Active {
		return false
	}
	if a.StartsAt != nil && now.Before(*a.StartsAt) {
		return false
	}
	if a.EndsAt != nil && !now.Before(*a.EndsAt) {
		return false
	}
	if audience == "" || audience == AudienceAll || a.Audience == AudienceAll {
		return true
	}
	return a.Audience == audience
}
