// internal/app/features/feedback/list.go
package feedback

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/paging"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

type listResponse struct {
	Items    []models.Feedback `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// ServeList returns one page of feedback. The filter set mirrors the
// moderation screen: the department/subject/staff/student cascade, a rating,
// and an inclusive from/to date range (YYYY-MM-DD).
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	pageSize := paging.ParsePageSize(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list feedback")
	defer cancel()

	items, total, err := h.Feedback.List(ctx, remote.ListQuery{
		Page:   page,
		Limit:  pageSize,
		Search: query.Search(r, "search"),
		Filters: map[string]string{
			"departmentId": normalize.FilterID(query.Get(r, "departmentId")),
			"subjectId":    normalize.FilterID(query.Get(r, "subjectId")),
			"staffId":      normalize.FilterID(query.Get(r, "staffId")),
			"studentId":    normalize.FilterID(query.Get(r, "studentId")),
			"rating":       normalize.FilterID(query.Get(r, "rating")),
			"from":         normalize.QueryParam(query.Get(r, "from")),
			"to":           normalize.QueryParam(query.Get(r, "to")),
		},
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list feedback failed", err, "Unable to load feedback.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ServeDetail returns a single feedback record by id.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Feedback not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get feedback")
	defer cancel()

	fb, err := h.Feedback.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Feedback not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get feedback failed", err, "Unable to load feedback.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, fb)
}
