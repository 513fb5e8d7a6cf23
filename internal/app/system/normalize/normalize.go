// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for values that arrive from
// query strings and JSON payloads. Handlers normalize before comparing,
// filtering, or forwarding to the platform so that equivalent inputs behave
// identically everywhere.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name. Case is preserved.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Audience lowercases and trims an announcement audience value.
func Audience(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a free-text query parameter. Case is preserved.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// FilterID canonicalizes a filter selection. The UI uses "all" as the
// no-selection sentinel; the platform expects the parameter to be absent
// instead, so "all" (any case) maps to the empty string.
func FilterID(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}
