// internal/app/features/departments/list.go
package departments

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/paging"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
)

// ServeList returns one page of departments, optionally narrowed by search.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	pageSize := paging.ParsePageSize(r)
	search := query.Search(r, "search")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list departments")
	defer cancel()

	items, total, err := h.Depts.List(ctx, remote.ListQuery{
		Page:   page,
		Limit:  pageSize,
		Search: search,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list departments failed", err, "Unable to load departments.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ServeOptions returns the full department catalog for filter dropdowns.
func (h *Handler) ServeOptions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "department options")
	defer cancel()

	opts, err := h.Depts.Options(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "department options failed", err, "Unable to load department options.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, opts)
}

// ServeDetail returns a single department by id.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Department not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get department")
	defer cancel()

	dep, err := h.Depts.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Department not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get department failed", err, "Unable to load department.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, dep)
}
