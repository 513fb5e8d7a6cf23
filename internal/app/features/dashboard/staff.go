// internal/app/features/dashboard/staff.go
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	analyticsclient "github.com/dalemusser/pulsehub/internal/app/remote/analytics"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/seriesmerge"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

type staffResponse struct {
	Staff         models.Staff          `json:"staff"`
	SubjectChart  []seriesmerge.Row     `json:"subjectChart"`
	Responses     int                   `json:"responses"`
	Announcements []models.Announcement `json:"announcements"`
}

// ServeStaff assembles one staff member's dashboard: their subjects
// zero-filled against their own response counts, a response total, and the
// staff-facing announcement board.
func (h *Handler) ServeStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "staffID")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "staff dashboard")
	defer cancel()

	member, err := h.Staff.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get staff failed", err, "Unable to load the dashboard.")
		return
	}

	// The catalog is the member's own subjects, so subjects they teach but
	// nobody has rated yet still chart as zero rows.
	catalog, err := h.Subjects.OptionsByStaff(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load subject catalog failed", err, "Unable to load the dashboard.")
		return
	}

	agg, err := h.Analytics.SubjectResponses(ctx, analyticsclient.StatsFilter{StaffID: id})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load subject responses failed", err, "Unable to load the dashboard.")
		return
	}

	chart := seriesmerge.Merge(catalog, agg, "")

	shared.WriteJSON(w, http.StatusOK, staffResponse{
		Staff:         member,
		SubjectChart:  chart,
		Responses:     seriesmerge.Total(chart),
		Announcements: h.activeAnnouncements(ctx, models.AudienceStaff),
	})
}
