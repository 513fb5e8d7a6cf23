// internal/app/features/dashboard/student.go
package dashboard

import (
	"context"
	"net/http"
	"sort"

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

// recentFeedbackLimit caps the activity card on the student dashboard.
const recentFeedbackLimit = 5

// recentFetchWindow is how much of the student's feedback history is pulled
// to find the newest entries. The platform lists feedback in insertion
// order, so the card sorts locally before truncating.
const recentFetchWindow = 100

type studentResponse struct {
	Student        models.Student        `json:"student"`
	SubjectChart   []seriesmerge.Row     `json:"subjectChart"`
	Responses      int                   `json:"responses"`
	RecentFeedback []models.Feedback     `json:"recentFeedback"`
	Announcements  []models.Announcement `json:"announcements"`
}

// ServeStudent assembles one student's dashboard: their department's subject
// catalog zero-filled against their own response counts, their most recent
// feedback, and the student-facing announcement board.
func (h *Handler) ServeStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "studentID")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "student dashboard")
	defer cancel()

	student, err := h.Students.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get student failed", err, "Unable to load the dashboard.")
		return
	}

	catalog, err := h.Subjects.Options(ctx, student.DepartmentID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load subject catalog failed", err, "Unable to load the dashboard.")
		return
	}

	agg, err := h.Analytics.SubjectResponses(ctx, analyticsclient.StatsFilter{StudentID: id})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load subject responses failed", err, "Unable to load the dashboard.")
		return
	}

	recent, err := h.recentFeedback(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load recent feedback failed", err, "Unable to load the dashboard.")
		return
	}

	chart := seriesmerge.Merge(catalog, agg, "")

	shared.WriteJSON(w, http.StatusOK, studentResponse{
		Student:        student,
		SubjectChart:   chart,
		Responses:      seriesmerge.Total(chart),
		RecentFeedback: recent,
		Announcements:  h.activeAnnouncements(ctx, models.AudienceStudents),
	})
}

// recentFeedback returns the student's newest feedback, newest first.
func (h *Handler) recentFeedback(ctx context.Context, studentID string) ([]models.Feedback, error) {
	items, _, err := h.Feedback.List(ctx, remote.ListQuery{
		Page:    1,
		Limit:   recentFetchWindow,
		Filters: map[string]string{"studentId": studentID},
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > recentFeedbackLimit {
		items = items[:recentFeedbackLimit]
	}
	return items, nil
}
