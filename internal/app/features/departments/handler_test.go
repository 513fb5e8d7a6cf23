package departments_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/features/departments"
	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	departmentclient "github.com/dalemusser/pulsehub/internal/app/remote/departments"
	"github.com/dalemusser/pulsehub/internal/domain/models"
	"github.com/dalemusser/pulsehub/internal/testutil"
)

type directivePayload struct {
	Action string `json:"action"`
	Page   int    `json:"page"`
}

type envelopePayload struct {
	Error struct {
		Message string            `json:"message"`
		Code    string            `json:"code"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func newTestHandler(t *testing.T) (*departments.Handler, *testutil.Fixtures) {
	t.Helper()
	platform := testutil.NewPlatform()
	fx := testutil.NewFixtures(t, platform)
	h := departments.NewHandler(
		departmentclient.New(platform.API(t)),
		uierrors.NewErrorLogger(zap.NewNop()),
		zap.NewNop(),
	)
	return h, fx
}

func TestServeList_Paging(t *testing.T) {
	h, fx := newTestHandler(t)
	for i := 1; i <= 12; i++ {
		fx.CreateDepartment(fmt.Sprintf("Department %02d", i))
	}

	req := testutil.NewRequest("GET", "/departments?page=2&pageSize=10")
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items    []models.Department `json:"items"`
		Total    int                 `json:"total"`
		Page     int                 `json:"page"`
		PageSize int                 `json:"pageSize"`
	}
	rec.DecodeJSON(t, &got)

	if len(got.Items) != 2 {
		t.Errorf("items: got %d, want 2", len(got.Items))
	}
	if got.Total != 12 {
		t.Errorf("total: got %d, want 12", got.Total)
	}
	if got.Page != 2 || got.PageSize != 10 {
		t.Errorf("page echo: got page=%d size=%d, want page=2 size=10", got.Page, got.PageSize)
	}
	if len(got.Items) == 2 && got.Items[0].Name != "Department 11" {
		t.Errorf("first item on page 2: got %q, want %q", got.Items[0].Name, "Department 11")
	}
}

func TestServeList_Search(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.CreateDepartment("Physics")
	fx.CreateDepartment("Chemistry")
	fx.CreateDepartment("Applied Physics")

	req := testutil.NewRequest("GET", "/departments?search=phys")
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items []models.Department `json:"items"`
		Total int                 `json:"total"`
	}
	rec.DecodeJSON(t, &got)

	if got.Total != 2 {
		t.Errorf("total: got %d, want 2", got.Total)
	}
	for _, d := range got.Items {
		if !strings.Contains(strings.ToLower(d.Name), "phys") {
			t.Errorf("item %q does not match search", d.Name)
		}
	}
}

func TestServeList_PlatformDown(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.Platform().FailPath("/departments")

	req := testutil.NewRequest("GET", "/departments")
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusBadGateway)

	var got envelopePayload
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "unavailable" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "unavailable")
	}
	if got.Error.Message == "" {
		t.Error("expected a user-facing error message")
	}
}

func TestServeOptions(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.CreateDepartment("Physics")
	fx.CreateDepartment("Chemistry")

	req := testutil.NewRequest("GET", "/departments/options")
	rec := testutil.NewRecorder()

	h.ServeOptions(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var opts []models.Option
	rec.DecodeJSON(t, &opts)

	if len(opts) != 2 {
		t.Fatalf("options: got %d, want 2", len(opts))
	}
	if opts[0].Name != "Physics" || opts[0].ID == "" {
		t.Errorf("first option: got %+v", opts[0])
	}
}

func TestServeDetail(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Mathematics")

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/departments/"+dep.ID), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.ServeDetail(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got models.Department
	rec.DecodeJSON(t, &got)
	if got.ID != dep.ID || got.Name != "Mathematics" {
		t.Errorf("got %+v, want id=%s name=Mathematics", got, dep.ID)
	}
}

func TestServeDetail_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, id := range []string{"dep-999", "not a valid id!"} {
		req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/departments/"+id), "id", id)
		rec := testutil.NewRecorder()

		h.ServeDetail(rec, req)

		rec.AssertStatus(t, http.StatusNotFound)

		var got envelopePayload
		rec.DecodeJSON(t, &got)
		if got.Error.Code != "notFound" {
			t.Errorf("id %q: error code got %q, want %q", id, got.Error.Code, "notFound")
		}
	}
}

func TestHandleCreate(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]string{
		"name":        "  Computer Science ",
		"description": " Core CS programmes ",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got struct {
		Department models.Department `json:"department"`
		Directive  directivePayload  `json:"directive"`
	}
	rec.DecodeJSON(t, &got)

	if got.Department.ID == "" {
		t.Error("expected the stored department to carry an id")
	}
	if got.Department.Name != "Computer Science" {
		t.Errorf("name: got %q, want %q", got.Department.Name, "Computer Science")
	}
	if got.Department.Description != "Core CS programmes" {
		t.Errorf("description: got %q, want %q", got.Department.Description, "Core CS programmes")
	}
	if got.Directive.Action != "refetchFirst" || got.Directive.Page != 1 {
		t.Errorf("directive without page state: got %+v, want refetchFirst page 1", got.Directive)
	}

	// The create must have landed on the platform, not just in the response.
	detail := testutil.WithChiURLParam(testutil.NewRequest("GET", "/departments/"+got.Department.ID), "id", got.Department.ID)
	check := testutil.NewRecorder()
	h.ServeDetail(check, detail)
	check.AssertStatus(t, http.StatusOK)
}

func TestHandleCreate_LastPageHasRoom(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.CreateDepartment("Physics")
	fx.CreateDepartment("Chemistry")
	fx.CreateDepartment("Biology")

	req := testutil.NewJSONRequest(t, "POST", "/departments?shown=3&total=3&page=1&pageSize=10", map[string]string{
		"name": "Geology",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got struct {
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.Directive.Action != "patched" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want patched page 1", got.Directive)
	}
}

func TestHandleCreate_FullPage(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/departments?shown=10&total=20&page=1&pageSize=10", map[string]string{
		"name": "Geology",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got struct {
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.Directive.Action != "refetchFirst" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want refetchFirst page 1", got.Directive)
	}
}

func TestHandleCreate_Duplicate(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.CreateDepartment("Physics")

	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]string{
		"name": "physics",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusConflict)

	var got envelopePayload
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "duplicate" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "duplicate")
	}
}

func TestHandleCreate_Validation(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/departments", map[string]string{
		"name": "   ",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)

	var got envelopePayload
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "validation" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "validation")
	}
	if _, ok := got.Error.Fields["Name"]; !ok {
		t.Errorf("expected a field error for Name, got %v", got.Error.Fields)
	}
}

func TestHandleCreate_MalformedBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/departments", strings.NewReader("{not json"))
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)

	var got envelopePayload
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "badRequest" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "badRequest")
	}
}

func TestHandleUpdate(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Mathematics")

	target := "/departments/" + dep.ID + "?rowVisible=true&shown=10&total=30&page=2&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewJSONRequest(t, "PUT", target, map[string]string{
		"name": "Applied Mathematics",
	}), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.HandleUpdate(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Department models.Department `json:"department"`
		Directive  directivePayload  `json:"directive"`
	}
	rec.DecodeJSON(t, &got)

	if got.Department.Name != "Applied Mathematics" {
		t.Errorf("name: got %q, want %q", got.Department.Name, "Applied Mathematics")
	}
	if got.Directive.Action != "patched" || got.Directive.Page != 2 {
		t.Errorf("directive: got %+v, want patched page 2", got.Directive)
	}
}

func TestHandleUpdate_RowNotVisible(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Mathematics")

	target := "/departments/" + dep.ID + "?shown=10&total=30&page=3&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewJSONRequest(t, "PUT", target, map[string]string{
		"description": "Now with statistics",
	}), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.HandleUpdate(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.Directive.Action != "refetch" || got.Directive.Page != 3 {
		t.Errorf("directive: got %+v, want refetch page 3", got.Directive)
	}
}

func TestHandleUpdate_Duplicate(t *testing.T) {
	h, fx := newTestHandler(t)
	fx.CreateDepartment("Physics")
	dep := fx.CreateDepartment("Chemistry")

	req := testutil.WithChiURLParam(testutil.NewJSONRequest(t, "PUT", "/departments/"+dep.ID, map[string]string{
		"name": "Physics",
	}), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.HandleUpdate(rec, req)

	rec.AssertStatus(t, http.StatusConflict)

	var got envelopePayload
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "duplicate" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "duplicate")
	}
}

func TestHandleUpdate_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(testutil.NewJSONRequest(t, "PUT", "/departments/dep-404", map[string]string{
		"name": "Ghost",
	}), "id", "dep-404")
	rec := testutil.NewRecorder()

	h.HandleUpdate(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestHandleDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Mathematics")

	// Last remaining row on page 2: removing it drains the page.
	target := "/departments/" + dep.ID + "?shown=1&total=11&page=2&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", target), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		ID        string           `json:"id"`
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)

	if got.ID != dep.ID {
		t.Errorf("id: got %q, want %q", got.ID, dep.ID)
	}
	if got.Directive.Action != "refetchPrev" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want refetchPrev page 1", got.Directive)
	}

	detail := testutil.WithChiURLParam(testutil.NewRequest("GET", "/departments/"+dep.ID), "id", dep.ID)
	check := testutil.NewRecorder()
	h.ServeDetail(check, detail)
	check.AssertStatus(t, http.StatusNotFound)
}

func TestHandleDelete_MidPage(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Mathematics")

	target := "/departments/" + dep.ID + "?shown=10&total=20&page=1&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", target), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.Directive.Action != "refetch" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want refetch page 1", got.Directive)
	}
}

func TestHandleDelete_NoState(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Mathematics")

	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/departments/"+dep.ID), "id", dep.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.Directive.Action != "refetch" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want refetch page 1", got.Directive)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", "/departments/dep-404"), "id", "dep-404")
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestRoutes(t *testing.T) {
	h, fx := newTestHandler(t)
	dep := fx.CreateDepartment("Physics")

	router := departments.Routes(h)

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Physics")

	req = testutil.NewRequest("GET", "/"+dep.ID)
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	req = testutil.NewRequest("GET", "/options")
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)
}
