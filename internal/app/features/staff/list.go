// internal/app/features/staff/list.go
package staff

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

// ServeList returns one page of staff, narrowed by search and the
// department/status filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	pageSize := paging.ParsePageSize(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list staff")
	defer cancel()

	items, total, err := h.Staff.List(ctx, remote.ListQuery{
		Page:   page,
		Limit:  pageSize,
		Search: query.Search(r, "search"),
		Filters: map[string]string{
			"departmentId": normalize.FilterID(query.Get(r, "departmentId")),
			"status":       normalize.Status(normalize.FilterID(query.Get(r, "status"))),
		},
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list staff failed", err, "Unable to load staff.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ServeOptions returns the staff catalog for filter dropdowns, narrowed to
// one department when departmentId is present.
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "staff options")
	defer cancel()

	opts, err := h.Staff.Options(ctx, normalize.FilterID(query.Get(r, "departmentId")))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "staff options failed", err, "Unable to load staff options.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, opts)
}

// ServeDetail returns a single staff member by id.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get staff member")
	defer cancel()

	st, err := h.Staff.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get staff member failed", err, "Unable to load staff member.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, st)
}
