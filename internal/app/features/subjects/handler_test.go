package subjects_test

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/subjects"
	subjectclient "github.com/dalemusser/pulsehub/internal/app/remote/subjects"
	"github.com/dalemusser/pulsehub/internal/domain/models"
	"github.com/dalemusser/pulsehub/internal/testutil"
)

type directivePayload struct {
	Action string `json:"action"`
	Page   int    `json:"page"`
}

func newTestHandler(t *testing.T) (*subjects.Handler, *testutil.Fixtures) {
	t.Helper()
	platform := testutil.NewPlatform()
	fx := testutil.NewFixtures(t, platform)
	h := subjects.NewHandler(
		subjectclient.New(platform.API(t)),
		uierrors.NewErrorLogger(zap.NewNop()),
		zap.NewNop(),
	)
	return h, fx
}

func TestServeList_FilterByDepartment(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	arts := fx.CreateDepartment("Arts")
	fx.CreateSubject("Physics", "PHY101", sci.ID, "")
	fx.CreateSubject("Chemistry", "CHM101", sci.ID, "")
	fx.CreateSubject("History", "HIS101", arts.ID, "")

	req := testutil.NewRequest("GET", "/subjects?departmentId="+sci.ID)
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items []models.Subject `json:"items"`
		Total int              `json:"total"`
	}
	rec.DecodeJSON(t, &got)

	if got.Total != 2 {
		t.Fatalf("total: got %d, want 2", got.Total)
	}
	for _, s := range got.Items {
		if s.DepartmentID != sci.ID {
			t.Errorf("subject %q leaked from department %q", s.Name, s.DepartmentID)
		}
	}
}

func TestServeList_AllSentinelMeansUnfiltered(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	arts := fx.CreateDepartment("Arts")
	fx.CreateSubject("Physics", "PHY101", sci.ID, "")
	fx.CreateSubject("History", "HIS101", arts.ID, "")

	req := testutil.NewRequest("GET", "/subjects?departmentId=all")
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Total int `json:"total"`
	}
	rec.DecodeJSON(t, &got)
	if got.Total != 2 {
		t.Errorf("total: got %d, want 2 (the all sentinel must not reach the platform)", got.Total)
	}
}

func TestServeList_FilterByStaff(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	ada := fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", sci.ID)
	alan := fx.CreateStaff("Alan Turing", "alan@pulse.edu", sci.ID)
	fx.CreateSubject("Computing", "CSC101", sci.ID, ada.ID)
	fx.CreateSubject("Logic", "CSC102", sci.ID, alan.ID)

	req := testutil.NewRequest("GET", "/subjects?staffId="+ada.ID)
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items []models.Subject `json:"items"`
		Total int              `json:"total"`
	}
	rec.DecodeJSON(t, &got)

	if got.Total != 1 || len(got.Items) != 1 {
		t.Fatalf("got %d items (total %d), want exactly 1", len(got.Items), got.Total)
	}
	if got.Items[0].Name != "Computing" {
		t.Errorf("item: got %q, want %q", got.Items[0].Name, "Computing")
	}
}

func TestServeOptions_NarrowedByDepartment(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	arts := fx.CreateDepartment("Arts")
	fx.CreateSubject("Physics", "PHY101", sci.ID, "")
	fx.CreateSubject("History", "HIS101", arts.ID, "")

	req := testutil.NewRequest("GET", "/subjects/options?departmentId="+sci.ID)
	rec := testutil.NewRecorder()

	h.ServeOptions(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var opts []models.Option
	rec.DecodeJSON(t, &opts)
	if len(opts) != 1 || opts[0].Name != "Physics" {
		t.Errorf("options: got %+v, want only Physics", opts)
	}
}

func TestServeOptions_NarrowedByStaff(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	ada := fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", sci.ID)
	fx.CreateSubject("Computing", "CSC101", sci.ID, ada.ID)
	fx.CreateSubject("Physics", "PHY101", sci.ID, "")

	req := testutil.NewRequest("GET", "/subjects/options?staffId="+ada.ID)
	rec := testutil.NewRecorder()

	h.ServeOptions(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var opts []models.Option
	rec.DecodeJSON(t, &opts)
	if len(opts) != 1 || opts[0].Name != "Computing" {
		t.Errorf("options: got %+v, want only Computing", opts)
	}
}

func TestHandleCreate(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	ada := fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", sci.ID)

	req := testutil.NewJSONRequest(t, "POST", "/subjects", map[string]string{
		"name":         "Quantum Mechanics",
		"code":         "PHY301",
		"departmentId": sci.ID,
		"staffId":      ada.ID,
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var got struct {
		Subject   models.Subject   `json:"subject"`
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)

	if got.Subject.ID == "" {
		t.Error("expected the stored subject to carry an id")
	}
	if got.Subject.DepartmentName != "Science" {
		t.Errorf("departmentName: got %q, want %q", got.Subject.DepartmentName, "Science")
	}
	if got.Subject.StaffName != "Ada Lovelace" {
		t.Errorf("staffName: got %q, want %q", got.Subject.StaffName, "Ada Lovelace")
	}
	if got.Directive.Action != "refetchFirst" {
		t.Errorf("directive: got %+v, want refetchFirst", got.Directive)
	}
}

func TestHandleCreate_MissingDepartment(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/subjects", map[string]string{
		"name": "Orphaned",
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusUnprocessableEntity)

	var got struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "validation" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "validation")
	}
	if _, ok := got.Error.Fields["Department"]; !ok {
		t.Errorf("expected a field error for Department, got %v", got.Error.Fields)
	}
}

func TestHandleCreate_DuplicateCode(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	fx.CreateSubject("Physics", "PHY101", sci.ID, "")

	req := testutil.NewJSONRequest(t, "POST", "/subjects", map[string]string{
		"name":         "Foundations of Physics",
		"code":         "phy101",
		"departmentId": sci.ID,
	})
	rec := testutil.NewRecorder()

	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusConflict)

	var got struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	rec.DecodeJSON(t, &got)
	if got.Error.Code != "duplicate" {
		t.Errorf("error code: got %q, want %q", got.Error.Code, "duplicate")
	}
}

func TestHandleUpdate_ReassignStaff(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	ada := fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", sci.ID)
	alan := fx.CreateStaff("Alan Turing", "alan@pulse.edu", sci.ID)
	sub := fx.CreateSubject("Computing", "CSC101", sci.ID, ada.ID)

	target := "/subjects/" + sub.ID + "?rowVisible=true&shown=5&total=5&page=1&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewJSONRequest(t, "PUT", target, map[string]string{
		"staffId": alan.ID,
	}), "id", sub.ID)
	rec := testutil.NewRecorder()

	h.HandleUpdate(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Subject   models.Subject   `json:"subject"`
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)

	if got.Subject.StaffID != alan.ID {
		t.Errorf("staffId: got %q, want %q", got.Subject.StaffID, alan.ID)
	}
	if got.Subject.StaffName != "Alan Turing" {
		t.Errorf("staffName not refreshed: got %q", got.Subject.StaffName)
	}
	if got.Directive.Action != "patched" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want patched page 1", got.Directive)
	}
}

func TestHandleDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	sci := fx.CreateDepartment("Science")
	sub := fx.CreateSubject("Physics", "PHY101", sci.ID, "")

	target := "/subjects/" + sub.ID + "?shown=1&total=1&page=1&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", target), "id", sub.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		ID        string           `json:"id"`
		Directive directivePayload `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.ID != sub.ID {
		t.Errorf("id: got %q, want %q", got.ID, sub.ID)
	}
	if got.Directive.Action != "refetch" || got.Directive.Page != 1 {
		t.Errorf("directive: got %+v, want refetch page 1", got.Directive)
	}

	detail := testutil.WithChiURLParam(testutil.NewRequest("GET", "/subjects/"+sub.ID), "id", sub.ID)
	check := testutil.NewRecorder()
	h.ServeDetail(check, detail)
	check.AssertStatus(t, http.StatusNotFound)
}

func TestServeDetail_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/subjects/sub-404"), "id", "sub-404")
	rec := testutil.NewRecorder()

	h.ServeDetail(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
