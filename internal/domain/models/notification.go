// internal/domain/models/notification.go
package models

import "time"

// Notification is a per-account message delivered by the platform. Unlike
// announcements, notifications are addressed and carry a read flag.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Audience  string    `json:"audience,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
