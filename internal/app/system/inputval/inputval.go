// internal/app/system/inputval/inputval.go

// Package inputval validates mutation payloads before they are forwarded to
// the platform. Struct validation runs on go-playground/validator with a
// `label` tag supplying the human-readable field name used in messages.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a single RFC 5322 address with no
// display name. Single-label domains are accepted, which keeps dev and
// test environments working.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	parsed, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return parsed.Name == "" && parsed.Address == s
}

// IsValidEntityID reports whether s looks like a platform record identifier.
// The platform issues opaque IDs built from letters, digits, hyphens, and
// underscores; anything else is rejected before it reaches a URL path.
func IsValidEntityID(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
