// internal/app/features/announcements/mutate.go
package announcements

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	announcementclient "github.com/dalemusser/pulsehub/internal/app/remote/announcements"
	"github.com/dalemusser/pulsehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// HandleCreate stores a new announcement. The body comes from a rich text
// editor, so it is sanitized before it leaves the relay; what the platform
// stores is what dashboards serve.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string     `json:"title"`
		Body     string     `json:"body"`
		Audience string     `json:"audience"`
		Active   bool       `json:"active"`
		StartsAt *time.Time `json:"startsAt"`
		EndsAt   *time.Time `json:"endsAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode create announcement failed", err, "Invalid request body.")
		return
	}

	in := announcementclient.CreateInput{
		Title:    normalize.Name(req.Title),
		Body:     htmlsanitize.Sanitize(strings.TrimSpace(req.Body)),
		Audience: normalize.Audience(req.Audience),
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteValidation(w, res.Errors)
		return
	}
	if in.StartsAt != nil && in.EndsAt != nil && !in.EndsAt.After(*in.StartsAt) {
		uierrors.WriteValidation(w, []inputval.FieldError{{Field: "EndsAt", Message: "End of the visibility window must be after its start."}})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create announcement")
	defer cancel()

	ann, err := h.Anns.Create(ctx, in)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create announcement failed", err, "Unable to create announcement.")
		return
	}

	shared.WriteJSON(w, http.StatusCreated, mutationResponse{
		Announcement: ann,
		Directive:    shared.ForCreate(shared.ParseState(r)),
	})
}

// HandleUpdate applies a partial update to an announcement. A body update
// re-runs the sanitizer; toggling Active is how dashboards retire a notice
// without losing it.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Announcement not found.", "notFound")
		return
	}

	var req struct {
		Title    *string    `json:"title"`
		Body     *string    `json:"body"`
		Audience *string    `json:"audience"`
		Active   *bool      `json:"active"`
		StartsAt *time.Time `json:"startsAt"`
		EndsAt   *time.Time `json:"endsAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode update announcement failed", err, "Invalid request body.")
		return
	}

	in := announcementclient.UpdateInput{
		Active:   req.Active,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	if req.Title != nil {
		title := normalize.Name(*req.Title)
		if title == "" {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Title", Message: "Title is required."}})
			return
		}
		in.Title = &title
	}
	if req.Body != nil {
		body := htmlsanitize.Sanitize(strings.TrimSpace(*req.Body))
		in.Body = &body
	}
	if req.Audience != nil {
		audience := normalize.Audience(*req.Audience)
		if !models.IsValidAudience(audience) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Audience", Message: "Audience must be one of: all, staff, students."}})
			return
		}
		in.Audience = &audience
	}
	if in.StartsAt != nil && in.EndsAt != nil && !in.EndsAt.After(*in.StartsAt) {
		uierrors.WriteValidation(w, []inputval.FieldError{{Field: "EndsAt", Message: "End of the visibility window must be after its start."}})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update announcement")
	defer cancel()

	ann, err := h.Anns.Update(ctx, id, in)
	if err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Announcement not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "update announcement failed", err, "Unable to update announcement.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, mutationResponse{
		Announcement: ann,
		Directive:    shared.ForUpdate(shared.ParseState(r), shared.RowVisible(r)),
	})
}

// HandleDelete removes an announcement and tells the presenter which page to
// show next.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Announcement not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete announcement")
	defer cancel()

	if err := h.Anns.Delete(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Announcement not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete announcement failed", err, "Unable to delete announcement.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, deleteResponse{
		ID:        id,
		Directive: shared.ForDelete(shared.ParseState(r)),
	})
}
