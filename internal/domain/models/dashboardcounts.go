// internal/domain/models/dashboardcounts.go
package models

// DashboardCounts is the set of totals shown on the admin dashboard stat
// cards. The platform computes these server-side; a counter it omits stays
// zero here.
type DashboardCounts struct {
	Departments   int64 `json:"departments"`
	Subjects      int64 `json:"subjects"`
	Staff         int64 `json:"staff"`
	Students      int64 `json:"students"`
	Feedback      int64 `json:"feedback"`
	Announcements int64 `json:"announcements"`
}
