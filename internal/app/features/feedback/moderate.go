// internal/app/features/feedback/moderate.go
package feedback

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
)

type deleteResponse struct {
	ID        string           `json:"id"`
	Directive shared.Directive `json:"directive"`
}

// HandleDelete removes a feedback record. This is the only mutation the
// moderation surface has; feedback is created by students upstream.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Feedback not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete feedback")
	defer cancel()

	if err := h.Feedback.Delete(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Feedback not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete feedback failed", err, "Unable to delete feedback.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, deleteResponse{
		ID:        id,
		Directive: shared.ForDelete(shared.ParseState(r)),
	})
}
