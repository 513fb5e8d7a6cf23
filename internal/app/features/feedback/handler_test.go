package feedback_test

import (
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	"github.com/dalemusser/pulsehub/internal/app/features/feedback"
	feedbackclient "github.com/dalemusser/pulsehub/internal/app/remote/feedback"
	"github.com/dalemusser/pulsehub/internal/domain/models"
	"github.com/dalemusser/pulsehub/internal/testutil"
)

func newTestHandler(t *testing.T) (*feedback.Handler, *testutil.Fixtures) {
	t.Helper()
	platform := testutil.NewPlatform()
	fx := testutil.NewFixtures(t, platform)
	h := feedback.NewHandler(
		feedbackclient.New(platform.API(t)),
		uierrors.NewErrorLogger(zap.NewNop()),
		zap.NewNop(),
	)
	return h, fx
}

// seedScope builds a department with one subject/staff pair and one student,
// which is the minimum the cascade filters need.
func seedScope(fx *testutil.Fixtures, dept string) (models.Student, models.Subject) {
	d := fx.CreateDepartment(dept)
	staff := fx.CreateStaff(dept+" Teacher", dept+".teacher@pulse.edu", d.ID)
	subject := fx.CreateSubject(dept+" 101", dept+"-101", d.ID, staff.ID)
	student := fx.CreateStudent(dept+" Student", dept+".student@pulse.edu", d.ID, 1)
	return student, subject
}

func TestServeList_SubjectFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	stu1, sub1 := seedScope(fx, "Science")
	stu2, sub2 := seedScope(fx, "Arts")
	fx.CreateFeedback(stu1, sub1, 5, "clear lectures")
	fx.CreateFeedback(stu2, sub2, 2, "hard to follow")

	req := testutil.NewRequest("GET", "/feedback?subjectId="+sub1.ID)
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items []models.Feedback `json:"items"`
		Total int               `json:"total"`
	}
	rec.DecodeJSON(t, &got)

	if got.Total != 1 || len(got.Items) != 1 {
		t.Fatalf("got %d items (total %d), want exactly 1", len(got.Items), got.Total)
	}
	if got.Items[0].SubjectID != sub1.ID {
		t.Errorf("subjectId: got %q, want %q", got.Items[0].SubjectID, sub1.ID)
	}
}

func TestServeList_RatingFilter(t *testing.T) {
	h, fx := newTestHandler(t)
	stu, sub := seedScope(fx, "Science")
	fx.CreateFeedback(stu, sub, 5, "excellent")
	fx.CreateFeedback(stu, sub, 5, "still excellent")
	fx.CreateFeedback(stu, sub, 1, "poor")

	req := testutil.NewRequest("GET", "/feedback?rating=5")
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items []models.Feedback `json:"items"`
		Total int               `json:"total"`
	}
	rec.DecodeJSON(t, &got)

	if got.Total != 2 {
		t.Fatalf("total: got %d, want 2", got.Total)
	}
	for _, f := range got.Items {
		if f.Rating != 5 {
			t.Errorf("rating: got %d, want 5", f.Rating)
		}
	}
}

func TestServeList_DateRange(t *testing.T) {
	h, fx := newTestHandler(t)
	stu, sub := seedScope(fx, "Science")
	jan := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	fx.CreateFeedbackAt(stu, sub, 4, "january", jan)
	fx.CreateFeedbackAt(stu, sub, 4, "march", mar)

	req := testutil.NewRequest("GET", "/feedback?from=2026-02-01")
	rec := testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		Items []models.Feedback `json:"items"`
		Total int               `json:"total"`
	}
	rec.DecodeJSON(t, &got)

	if got.Total != 1 || got.Items[0].Comment != "march" {
		t.Fatalf("from filter: got total %d, want only the march record", got.Total)
	}

	// The `to` bound is inclusive of the named day.
	req = testutil.NewRequest("GET", "/feedback?to=2026-01-15")
	rec = testutil.NewRecorder()

	h.ServeList(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.DecodeJSON(t, &got)
	if got.Total != 1 || got.Items[0].Comment != "january" {
		t.Fatalf("to filter: got total %d, want only the january record", got.Total)
	}
}

func TestServeDetail(t *testing.T) {
	h, fx := newTestHandler(t)
	stu, sub := seedScope(fx, "Science")
	fb := fx.CreateFeedback(stu, sub, 3, "average")

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/feedback/"+fb.ID), "id", fb.ID)
	rec := testutil.NewRecorder()

	h.ServeDetail(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got models.Feedback
	rec.DecodeJSON(t, &got)
	if got.ID != fb.ID || got.Comment != "average" {
		t.Errorf("got %+v, want id=%s comment=average", got, fb.ID)
	}
	if got.StudentName == "" || got.StaffName == "" {
		t.Error("expected denormalized student and staff names on the record")
	}
}

func TestHandleDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	stu, sub := seedScope(fx, "Science")
	fb := fx.CreateFeedback(stu, sub, 1, "inappropriate")

	target := "/feedback/" + fb.ID + "?shown=1&total=21&page=3&pageSize=10"
	req := testutil.WithChiURLParam(testutil.NewRequest("DELETE", target), "id", fb.ID)
	rec := testutil.NewRecorder()

	h.HandleDelete(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		ID        string `json:"id"`
		Directive struct {
			Action string `json:"action"`
			Page   int    `json:"page"`
		} `json:"directive"`
	}
	rec.DecodeJSON(t, &got)
	if got.ID != fb.ID {
		t.Errorf("id: got %q, want %q", got.ID, fb.ID)
	}
	if got.Directive.Action != "refetchPrev" || got.Directive.Page != 2 {
		t.Errorf("directive: got %+v, want refetchPrev page 2", got.Directive)
	}

	detail := testutil.WithChiURLParam(testutil.NewRequest("GET", "/feedback/"+fb.ID), "id", fb.ID)
	check := testutil.NewRecorder()
	h.ServeDetail(check, detail)
	check.AssertStatus(t, http.StatusNotFound)
}

func TestRoutes_NoCreateOrUpdate(t *testing.T) {
	h, _ := newTestHandler(t)
	router := feedback.Routes(h)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"comment": "forged"})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusMethodNotAllowed)

	req = testutil.NewJSONRequest(t, "PUT", "/fbk-1", map[string]string{"comment": "edited"})
	rec = testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusMethodNotAllowed)
}
