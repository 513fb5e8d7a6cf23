// internal/app/features/dashboard/admin.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"

	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	analyticsclient "github.com/dalemusser/pulsehub/internal/app/remote/analytics"
	"github.com/dalemusser/pulsehub/internal/app/system/cascade"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/seriesmerge"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// Cascade field names; they double as the JSON keys the filter bar reads.
const (
	fieldSubjects = "subjects"
	fieldStaff    = "staff"
)

type adminFilters struct {
	DepartmentID string          `json:"departmentId"`
	Departments  []models.Option `json:"departments"`
	Subjects     dependentField  `json:"subjects"`
	Staff        dependentField  `json:"staff"`
}

type adminResponse struct {
	Counts        models.DashboardCounts `json:"counts"`
	Filters       adminFilters           `json:"filters"`
	SubjectChart  []seriesmerge.Row      `json:"subjectChart"`
	StaffChart    []seriesmerge.Row      `json:"staffChart"`
	Unread        int                    `json:"unread"`
	Announcements []models.Announcement  `json:"announcements"`
}

// ServeAdmin assembles the admin dashboard: platform totals, the department
// filter bar with its dependent subject/staff dropdowns, and the two response
// charts zero-filled against the catalogs in scope.
//
// The charts and catalogs are the primary payload and fail the request when
// their fetch fails. Counts, the unread badge, and the announcement board are
// furniture and degrade to zero values instead.
func (h *Handler) ServeAdmin(w http.ResponseWriter, r *http.Request) {
	departmentID := normalize.FilterID(query.Get(r, "departmentId"))
	subjectID := normalize.FilterID(query.Get(r, "subjectId"))
	staffID := normalize.FilterID(query.Get(r, "staffId"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin dashboard")
	defer cancel()

	counts := h.Analytics.FetchDashboardCounts(ctx)

	deptOpts, err := h.Depts.Options(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load department options failed", err, "Unable to load the dashboard.")
		return
	}

	// Department drives the two dependent dropdowns. With no department
	// selected they stay idle and empty; a failed load degrades only its
	// own field.
	graph := cascade.New(h.Log).
		AddField(fieldSubjects, func(ctx context.Context, dept string) ([]models.Option, error) {
			return h.Subjects.Options(ctx, dept)
		}).
		AddField(fieldStaff, func(ctx context.Context, dept string) ([]models.Option, error) {
			return h.Staff.Options(ctx, dept)
		})
	graph.SetParent(ctx, departmentID)
	if departmentID != "" {
		// Dependent selections only mean something under a parent.
		graph.Select(fieldSubjects, subjectID)
		graph.Select(fieldStaff, staffID)
	}
	graph.Wait()

	subjField := graph.Field(fieldSubjects)
	staffField := graph.Field(fieldStaff)

	// The charts zero-fill against the catalog in scope. With a department
	// selected that is exactly the dependent option lists; without one the
	// dropdowns stay empty but the charts still cover the full catalog.
	subjectCatalog := subjField.Options
	staffCatalog := staffField.Options
	if departmentID == "" {
		subjectCatalog, err = h.Subjects.Options(ctx, "")
		if err != nil {
			h.ErrLog.LogServerError(w, r, "load subject catalog failed", err, "Unable to load the dashboard.")
			return
		}
		staffCatalog, err = h.Staff.Options(ctx, "")
		if err != nil {
			h.ErrLog.LogServerError(w, r, "load staff catalog failed", err, "Unable to load the dashboard.")
			return
		}
	}

	filter := analyticsclient.StatsFilter{
		DepartmentID: departmentID,
		SubjectID:    subjectID,
		StaffID:      staffID,
	}
	subjectAgg, err := h.Analytics.SubjectResponses(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load subject responses failed", err, "Unable to load the dashboard.")
		return
	}
	staffAgg, err := h.Analytics.StaffResponses(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load staff responses failed", err, "Unable to load the dashboard.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, adminResponse{
		Counts: counts,
		Filters: adminFilters{
			DepartmentID: departmentID,
			Departments:  deptOpts,
			Subjects:     fieldView(subjField),
			Staff:        fieldView(staffField),
		},
		SubjectChart:  seriesmerge.Merge(subjectCatalog, subjectAgg, subjectID),
		StaffChart:    seriesmerge.Merge(staffCatalog, staffAgg, staffID),
		Unread:        h.unreadCount(ctx),
		Announcements: h.activeAnnouncements(ctx, ""),
	})
}
