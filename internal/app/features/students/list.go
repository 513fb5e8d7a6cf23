// internal/app/features/students/list.go
package students

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
)

// ServeList returns one page of students, narrowed by search and the
// department/year filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	pageSize := paging.ParsePageSize(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list students")
	defer cancel()

	items, total, err := h.Students.List(ctx, remote.ListQuery{
		Page:   page,
		Limit:  pageSize,
		Search: query.Search(r, "search"),
		Filters: map[string]string{
			"departmentId": normalize.FilterID(query.Get(r, "departmentId")),
			"year":         normalize.FilterID(query.Get(r, "year")),
		},
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list students failed", err, "Unable to load students.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ServeOptions returns the student catalog for filter dropdowns, narrowed to
// one department when departmentId is present.
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "student options")
	defer cancel()

	opts, err := h.Students.Options(ctx, normalize.FilterID(query.Get(r, "departmentId")))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "student options failed", err, "Unable to load student options.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, opts)
}

// ServeDetail returns a single student by id.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get student")
	defer cancel()

	st, err := h.Students.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get student failed", err, "Unable to load student.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, st)
}
