// internal/app/features/staff/mutate.go
package staff

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	staffclient "github.com/dalemusser/pulsehub/internal/app/remote/staff"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// HandleCreate stores a new staff account. New accounts start active; the
// platform owns that default.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     string `json:"fullName"`
		Email        string `json:"email"`
		DepartmentID string `json:"departmentId"`
		Designation  string `json:"designation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode create staff failed", err, "Invalid request body.")
		return
	}

	in := staffclient.CreateInput{
		FullName:     normalize.Name(req.FullName),
		Email:        normalize.Email(req.Email),
		DepartmentID: strings.TrimSpace(req.DepartmentID),
		Designation:  strings.TrimSpace(req.Designation),
	}
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteValidation(w, res.Errors)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create staff")
	defer cancel()

	st, err := h.Staff.Create(ctx, in)
	if err != nil {
		if errors.Is(err, staffclient.ErrDuplicateEmail) {
			uierrors.Write(w, http.StatusConflict, "A staff member with this email already exists.", "duplicate")
			return
		}
		h.ErrLog.LogServerError(w, r, "create staff failed", err, "Unable to create staff member.")
		return
	}

	shared.WriteJSON(w, http.StatusCreated, mutationResponse{
		Staff:     st,
		Directive: shared.ForCreate(shared.ParseState(r)),
	})
}

// HandleUpdate applies a partial update to a staff account.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
		return
	}

	var req struct {
		FullName     *string `json:"fullName"`
		Email        *string `json:"email"`
		DepartmentID *string `json:"departmentId"`
		Designation  *string `json:"designation"`
		Status       *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode update staff failed", err, "Invalid request body.")
		return
	}

	in := staffclient.UpdateInput{}
	if req.FullName != nil {
		name := normalize.Name(*req.FullName)
		if name == "" {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Full name", Message: "Full name is required."}})
			return
		}
		in.FullName = &name
	}
	if req.Email != nil {
		email := normalize.Email(*req.Email)
		if !inputval.IsValidEmail(email) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Email", Message: "A valid email address is required."}})
			return
		}
		in.Email = &email
	}
	if req.DepartmentID != nil {
		dept := strings.TrimSpace(*req.DepartmentID)
		if !inputval.IsValidEntityID(dept) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Department", Message: "Department must be a valid identifier."}})
			return
		}
		in.DepartmentID = &dept
	}
	if req.Designation != nil {
		desig := strings.TrimSpace(*req.Designation)
		in.Designation = &desig
	}
	if req.Status != nil {
		status := normalize.Status(*req.Status)
		if !models.IsValidStatus(status) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Status", Message: "Status must be active or inactive."}})
			return
		}
		in.Status = &status
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update staff")
	defer cancel()

	st, err := h.Staff.Update(ctx, id, in)
	if err != nil {
		switch {
		case remote.IsNotFound(err):
			uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
		case errors.Is(err, staffclient.ErrDuplicateEmail):
			uierrors.Write(w, http.StatusConflict, "A staff member with this email already exists.", "duplicate")
		default:
			h.ErrLog.LogServerError(w, r, "update staff failed", err, "Unable to update staff member.")
		}
		return
	}

	shared.WriteJSON(w, http.StatusOK, mutationResponse{
		Staff:     st,
		Directive: shared.ForUpdate(shared.ParseState(r), shared.RowVisible(r)),
	})
}

// HandleDelete removes a staff account and tells the presenter which page to
// show next.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete staff")
	defer cancel()

	if err := h.Staff.Delete(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Staff member not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete staff failed", err, "Unable to delete staff member.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, deleteResponse{
		ID:        id,
		Directive: shared.ForDelete(shared.ParseState(r)),
	})
}
