// internal/app/features/subjects/mutate.go
package subjects

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	subjectclient "github.com/dalemusser/pulsehub/internal/app/remote/subjects"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
)

// HandleCreate stores a new subject and answers with the reconciliation
// directive for the presenter's list.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		Code         string `json:"code"`
		DepartmentID string `json:"departmentId"`
		StaffID      string `json:"staffId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode create subject failed", err, "Invalid request body.")
		return
	}

	in := subjectclient.CreateInput{
		Name:         normalize.Name(req.Name),
		Code:         strings.TrimSpace(req.Code),
		DepartmentID: strings.TrimSpace(req.DepartmentID),
		StaffID:      strings.TrimSpace(req.StaffID),
	}
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteValidation(w, res.Errors)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create subject")
	defer cancel()

	sub, err := h.Subjects.Create(ctx, in)
	if err != nil {
		if errors.Is(err, subjectclient.ErrDuplicateCode) {
			uierrors.Write(w, http.StatusConflict, "A subject with this code already exists.", "duplicate")
			return
		}
		h.ErrLog.LogServerError(w, r, "create subject failed", err, "Unable to create subject.")
		return
	}

	shared.WriteJSON(w, http.StatusCreated, mutationResponse{
		Subject:   sub,
		Directive: shared.ForCreate(shared.ParseState(r)),
	})
}

// HandleUpdate applies a partial update to a subject. Reassigning the
// department or staff also refreshes the denormalized names on the record.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Subject not found.", "notFound")
		return
	}

	var req struct {
		Name         *string `json:"name"`
		Code         *string `json:"code"`
		DepartmentID *string `json:"departmentId"`
		StaffID      *string `json:"staffId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode update subject failed", err, "Invalid request body.")
		return
	}

	in := subjectclient.UpdateInput{}
	if req.Name != nil {
		name := normalize.Name(*req.Name)
		if name == "" {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Name", Message: "Name is required."}})
			return
		}
		in.Name = &name
	}
	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		in.Code = &code
	}
	if req.DepartmentID != nil {
		dept := strings.TrimSpace(*req.DepartmentID)
		if !inputval.IsValidEntityID(dept) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Department", Message: "Department must be a valid identifier."}})
			return
		}
		in.DepartmentID = &dept
	}
	if req.StaffID != nil {
		staff := strings.TrimSpace(*req.StaffID)
		if staff != "" && !inputval.IsValidEntityID(staff) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Staff", Message: "Staff must be a valid identifier."}})
			return
		}
		in.StaffID = &staff
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update subject")
	defer cancel()

	sub, err := h.Subjects.Update(ctx, id, in)
	if err != nil {
		switch {
		case remote.IsNotFound(err):
			uierrors.Write(w, http.StatusNotFound, "Subject not found.", "notFound")
		case errors.Is(err, subjectclient.ErrDuplicateCode):
			uierrors.Write(w, http.StatusConflict, "A subject with this code already exists.", "duplicate")
		default:
			h.ErrLog.LogServerError(w, r, "update subject failed", err, "Unable to update subject.")
		}
		return
	}

	shared.WriteJSON(w, http.StatusOK, mutationResponse{
		Subject:   sub,
		Directive: shared.ForUpdate(shared.ParseState(r), shared.RowVisible(r)),
	})
}

// HandleDelete removes a subject and tells the presenter which page to show
// next.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Subject not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete subject")
	defer cancel()

	if err := h.Subjects.Delete(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Subject not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete subject failed", err, "Unable to delete subject.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, deleteResponse{
		ID:        id,
		Directive: shared.ForDelete(shared.ParseState(r)),
	})
}
