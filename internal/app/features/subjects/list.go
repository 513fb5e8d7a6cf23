// internal/app/features/subjects/list.go
package subjects

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

// ServeList returns one page of subjects, narrowed by search and the
// department/staff filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	pageSize := paging.ParsePageSize(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list subjects")
	defer cancel()

	items, total, err := h.Subjects.List(ctx, remote.ListQuery{
		Page:   page,
		Limit:  pageSize,
		Search: query.Search(r, "search"),
		Filters: map[string]string{
			"departmentId": normalize.FilterID(query.Get(r, "departmentId")),
			"staffId":      normalize.FilterID(query.Get(r, "staffId")),
		},
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list subjects failed", err, "Unable to load subjects.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ServeOptions returns the subject catalog for filter dropdowns. A
// departmentId narrows the catalog to one department; a staffId narrows it
// to the subjects one staff member teaches.
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "subject options")
	defer cancel()

	staffID := normalize.FilterID(query.Get(r, "staffId"))
	departmentID := normalize.FilterID(query.Get(r, "departmentId"))

	var (
		opts []models.Option
		err  error
	)
	if staffID != "" {
		opts, err = h.Subjects.OptionsByStaff(ctx, staffID)
	} else {
		opts, err = h.Subjects.Options(ctx, departmentID)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "subject options failed", err, "Unable to load subject options.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, opts)
}

// ServeDetail returns a single subject by id.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Subject not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get subject")
	defer cancel()

	sub, err := h.Subjects.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Subject not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get subject failed", err, "Unable to load subject.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, sub)
}
