// internal/domain/models/status.go
package models

// Record status identifiers.
//
// These values arrive on platform staff and student records. They are stable
// keys; display labels belong to the UI.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Statuses is the full set of allowed record status identifiers.
var Statuses = []string{
	StatusActive,
	StatusInactive,
}

// IsValidStatus checks if a value is a valid record status.
func IsValidStatus(value string) bool {
	for _, s := range Statuses {
		if s == value {
			return true
		}
	}
	return false
}
