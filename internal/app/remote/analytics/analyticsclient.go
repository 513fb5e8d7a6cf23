// internal/app/remote/analytics/analyticsclient.go
package analyticsclient

import (
	"context"
	"net/url"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// Client provides typed access to the platform's analytics endpoints:
// response-count aggregates for the charts and the dashboard totals.
type Client struct {
	api *remote.Client
}

func New(api *remote.Client) *Client {
	return &Client{api: api}
}

// StatsFilter narrows an aggregate series. Empty fields are omitted from
// the request, which the platform reads as "all".
type StatsFilter struct {
	DepartmentID string
	SubjectID    string
	StaffID      string
	StudentID    string
}

func (f StatsFilter) values() url.Values {
	v := url.Values{}
	if f.DepartmentID != "" {
		v.Set("departmentId", f.DepartmentID)
	}
	if f.SubjectID != "" {
		v.Set("subjectId", f.SubjectID)
	}
	if f.StaffID != "" {
		v.Set("staffId", f.StaffID)
	}
	if f.StudentID != "" {
		v.Set("studentId", f.StudentID)
	}
	return v
}

// SubjectResponses returns per-subject response counts. Subjects with no
// responses are absent; the merge engine zero-fills them from the catalog.
func (c *Client) SubjectResponses(ctx context.Context, f StatsFilter) ([]models.AggregateRow, error) {
	return c.stats(ctx, "/analytics/stats/subject-responses", f)
}

// StaffResponses returns per-staff response counts.
func (c *Client) StaffResponses(ctx context.Context, f StatsFilter) ([]models.AggregateRow, error) {
	return c.stats(ctx, "/analytics/stats/staff-responses", f)
}

func (c *Client) stats(ctx context.Context, path string, f StatsFilter) ([]models.AggregateRow, error) {
	var rows []models.AggregateRow
	if err := c.api.Get(ctx, path, f.values(), &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.AggregateRow{}
	}
	return rows, nil
}

// Counts returns the dashboard totals.
func (c *Client) Counts(ctx context.Context) (models.DashboardCounts, error) {
	var counts models.DashboardCounts
	if err := c.api.Get(ctx, "/analytics/counts", nil, &counts); err != nil {
		return models.DashboardCounts{}, err
	}
	return counts, nil
}

// FetchDashboardCounts returns the dashboard totals, tolerating failure:
// on error every counter is zero so the stat cards still render.
func (c *Client) FetchDashboardCounts(ctx context.Context) models.DashboardCounts {
	counts, err := c.Counts(ctx)
	if err != nil {
		return models.DashboardCounts{}
	}
	return counts
}
