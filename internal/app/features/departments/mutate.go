// internal/app/features/departments/mutate.go
package departments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	departmentclient "github.com/dalemusser/pulsehub/internal/app/remote/departments"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
)

// HandleCreate stores a new department and answers with the reconciliation
// directive for the presenter's list.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode create department failed", err, "Invalid request body.")
		return
	}

	in := departmentclient.CreateInput{
		Name:        normalize.Name(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteValidation(w, res.Errors)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create department")
	defer cancel()

	dep, err := h.Depts.Create(ctx, in)
	if err != nil {
		if errors.Is(err, departmentclient.ErrDuplicateName) {
			uierrors.Write(w, http.StatusConflict, "A department with this name already exists.", "duplicate")
			return
		}
		h.ErrLog.LogServerError(w, r, "create department failed", err, "Unable to create department.")
		return
	}

	shared.WriteJSON(w, http.StatusCreated, mutationResponse{
		Department: dep,
		Directive:  shared.ForCreate(shared.ParseState(r)),
	})
}

// HandleUpdate applies a partial update to a department.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Department not found.", "notFound")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode update department failed", err, "Invalid request body.")
		return
	}

	in := departmentclient.UpdateInput{}
	if req.Name != nil {
		name := normalize.Name(*req.Name)
		if name == "" {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Name", Message: "Name is required."}})
			return
		}
		in.Name = &name
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		in.Description = &desc
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update department")
	defer cancel()

	dep, err := h.Depts.Update(ctx, id, in)
	if err != nil {
		switch {
		case remote.IsNotFound(err):
			uierrors.Write(w, http.StatusNotFound, "Department not found.", "notFound")
		case errors.Is(err, departmentclient.ErrDuplicateName):
			uierrors.Write(w, http.StatusConflict, "A department with this name already exists.", "duplicate")
		default:
			h.ErrLog.LogServerError(w, r, "update department failed", err, "Unable to update department.")
		}
		return
	}

	shared.WriteJSON(w, http.StatusOK, mutationResponse{
		Department: dep,
		Directive:  shared.ForUpdate(shared.ParseState(r), shared.RowVisible(r)),
	})
}

// HandleDelete removes a department and tells the presenter which page to
// show next.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Department not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete department")
	defer cancel()

	if err := h.Depts.Delete(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Department not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete department failed", err, "Unable to delete department.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, deleteResponse{
		ID:        id,
		Directive: shared.ForDelete(shared.ParseState(r)),
	})
}
