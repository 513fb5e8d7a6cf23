// internal/app/features/students/mutate.go
package students

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/shared"
	"github.com/dalemusser/pulsehub/internal/app/remote"
	studentclient "github.com/dalemusser/pulsehub/internal/app/remote/students"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
	"github.com/dalemusser/pulsehub/internal/app/system/normalize"
	"github.com/dalemusser/pulsehub/internal/app/system/timeouts"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// HandleCreate stores a new student account. New accounts start active; the
// platform owns that default.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName     string `json:"fullName"`
		Email        string `json:"email"`
		RollNumber   string `json:"rollNumber"`
		DepartmentID string `json:"departmentId"`
		Year         int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode create student failed", err, "Invalid request body.")
		return
	}

	in := studentclient.CreateInput{
		FullName:     normalize.Name(req.FullName),
		Email:        normalize.Email(req.Email),
		RollNumber:   strings.TrimSpace(req.RollNumber),
		DepartmentID: strings.TrimSpace(req.DepartmentID),
		Year:         req.Year,
	}
	if res := inputval.Validate(in); res.HasErrors() {
		uierrors.WriteValidation(w, res.Errors)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create student")
	defer cancel()

	st, err := h.Students.Create(ctx, in)
	if err != nil {
		if errors.Is(err, studentclient.ErrDuplicateEmail) {
			uierrors.Write(w, http.StatusConflict, "A student with this email already exists.", "duplicate")
			return
		}
		h.ErrLog.LogServerError(w, r, "create student failed", err, "Unable to create student.")
		return
	}

	shared.WriteJSON(w, http.StatusCreated, mutationResponse{
		Student:   st,
		Directive: shared.ForCreate(shared.ParseState(r)),
	})
}

// HandleUpdate applies a partial update to a student account.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
		return
	}

	var req struct {
		FullName     *string `json:"fullName"`
		Email        *string `json:"email"`
		RollNumber   *string `json:"rollNumber"`
		DepartmentID *string `json:"departmentId"`
		Year         *int    `json:"year"`
		Status       *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "decode update student failed", err, "Invalid request body.")
		return
	}

	in := studentclient.UpdateInput{}
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
	if req.RollNumber != nil {
		roll := strings.TrimSpace(*req.RollNumber)
		in.RollNumber = &roll
	}
	if req.DepartmentID != nil {
		dept := strings.TrimSpace(*req.DepartmentID)
		if !inputval.IsValidEntityID(dept) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Department", Message: "Department must be a valid identifier."}})
			return
		}
		in.DepartmentID = &dept
	}
	if req.Year != nil {
		if *req.Year < 1 || *req.Year > 8 {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Year", Message: "Year must be between 1 and 8."}})
			return
		}
		in.Year = req.Year
	}
	if req.Status != nil {
		status := normalize.Status(*req.Status)
		if !models.IsValidStatus(status) {
			uierrors.WriteValidation(w, []inputval.FieldError{{Field: "Status", Message: "Status must be active or inactive."}})
			return
		}
		in.Status = &status
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update student")
	defer cancel()

	st, err := h.Students.Update(ctx, id, in)
	if err != nil {
		switch {
		case remote.IsNotFound(err):
			uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
		case errors.Is(err, studentclient.ErrDuplicateEmail):
			uierrors.Write(w, http.StatusConflict, "A student with this email already exists.", "duplicate")
		default:
			h.ErrLog.LogServerError(w, r, "update student failed", err, "Unable to update student.")
		}
		return
	}

	shared.WriteJSON(w, http.StatusOK, mutationResponse{
		Student:   st,
		Directive: shared.ForUpdate(shared.ParseState(r), shared.RowVisible(r)),
	})
}

// HandleDelete removes a student account and tells the presenter which page
// to show next.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !inputval.IsValidEntityID(id) {
		uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete student")
	defer cancel()

	if err := h.Students.Delete(ctx, id); err != nil {
		if remote.IsNotFound(err) {
			uierrors.Write(w, http.StatusNotFound, "Student not found.", "notFound")
			return
		}
		h.ErrLog.LogServerError(w, r, "delete student failed", err, "Unable to delete student.")
		return
	}

	shared.WriteJSON(w, http.StatusOK, deleteResponse{
		ID:        id,
		Directive: shared.ForDelete(shared.ParseState(r)),
	})
}
