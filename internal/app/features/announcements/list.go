// internal/app/features/announcements/list.go
package announcements

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

// ServeList returns one page of announcements. The audience filter matches
// the stored audience value exactly; "all" is a real audience here, so the
// no-filter state is an absent parameter.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	pageSize := paging.ParsePageSize(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list announcements")
	defer cancel()

	items, total, err := h.Anns.List(ctx, remote.ListQuery{
		Page:   page,
		Limit:  pageSize,
		Search: query.Search(r, "search"),
		Filters: map[string]string{
			"audience": normalize.Audience(query.Get(r, "audience")),
		},
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list announcements failed", err, "Unable to load announcements.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, listResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ServeActive returns the announcements currently inside their visibility
// window for an audience. Role dashboards embed this feed.
func (h *Handler) ServeActive(w http.ResponseWriter, r *http.Request) {
	audience := normalize.Audience(query.Get(r, "audience"))
	if audience != "" && !models.IsValidAudience(audience) {
		uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Audience", Message: "Audience must be one of: all, staff, students."}})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "active announcements")
	defer cancel()

	anns, err := h.Anns.Active(ctx, audience)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "active announcements failed", err, "Unable to load announcements.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, anns)
}

// ServeDetail returns a single announcement by id.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Announcement not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get announcement")
	defer cancel()

	ann, err := h.Anns.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Announcement not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "get announcement failed", err, "Unable to load announcement.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, ann)
}
