package dashboard_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/features/dashboard"
	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	analyticsclient "github.com/dalemusser/pulsehub/internal/app/remote/analytics"
	announcementclient "github.com/dalemusser/pulsehub/internal/app/remote/announcements"
	departmentclient "github.com/dalemusser/pulsehub/internal/app/remote/departments"
	feedbackclient "github.com/dalemusser/pulsehub/internal/app/remote/feedback"
	notificationclient "github.com/dalemusser/pulsehub/internal/app/remote/notifications"
	staffclient "github.com/dalemusser/pulsehub/internal/app/remote/staff"
	studentclient "github.com/dalemusser/pulsehub/internal/app/remote/students"
	subjectclient "github.com/dalemusser/pulsehub/internal/app/remote/subjects"
	"github.com/dalemusser/pulsehub/internal/domain/models"
	"github.com/dalemusser/pulsehub/internal/testutil"
)

type chartRow struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type dependentPayload struct {
	Options  []models.Option `json:"options"`
	State    string          `json:"state"`
	Selected string          `json:"selected"`
}

type adminPayload struct {
	Counts struct {
		Departments int `json:"departments"`
		Subjects    int `json:"subjects"`
		Staff       int `json:"staff"`
		Students    int `json:"students"`
		Feedback    int `json:"feedback"`
	} `json:"counts"`
	Filters struct {
		DepartmentID string           `json:"departmentId"`
		Departments  []models.Option  `json:"departments"`
		Subjects     dependentPayload `json:"subjects"`
		Staff        dependentPayload `json:"staff"`
	} `json:"filters"`
	SubjectChart  []chartRow            `json:"subjectChart"`
	StaffChart    []chartRow            `json:"staffChart"`
	Unread        int                   `json:"unread"`
	Announcements []models.Announcement `json:"announcements"`
}

type staffPayload struct {
	Staff         models.Staff          `json:"staff"`
	SubjectChart  []chartRow            `json:"subjectChart"`
	Responses     int                   `json:"responses"`
	Announcements []models.Announcement `json:"announcements"`
}

type studentPayload struct {
	Student        models.Student        `json:"student"`
	SubjectChart   []chartRow            `json:"subjectChart"`
	Responses      int                   `json:"responses"`
	RecentFeedback []models.Feedback     `json:"recentFeedback"`
	Announcements  []models.Announcement `json:"announcements"`
}

func newTestHandler(t *testing.T) (*dashboard.Handler, *testutil.Fixtures) {
	t.Helper()
	platform := testutil.NewPlatform()
	fx := testutil.NewFixtures(t, platform)
	api := platform.API(t)
	h := dashboard.NewHandler(dashboard.Clients{
		Analytics: analyticsclient.New(api),
		Depts:     departmentclient.New(api),
		Subjects:  subjectclient.New(api),
		Staff:     staffclient.New(api),
		Students:  studentclient.New(api),
		Feedback:  feedbackclient.New(api),
		Anns:      announcementclient.New(api),
		Notifs:    notificationclient.New(api),
	}, nil, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, fx
}

// school is the shared scenario: two departments, three staff, three
// subjects, and feedback that leaves Chemistry and Grace without responses
// so the zero-fill is observable.
type school struct {
	science, arts            models.Department
	ada, grace, marie        models.Staff
	physics, chemistry, hist models.Subject
	sam, tess                models.Student
}

func seedSchool(fx *testutil.Fixtures) school {
	var s school
	s.science = fx.CreateDepartment("Science")
	s.arts = fx.CreateDepartment("Arts")
	s.ada = fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", s.science.ID)
	s.grace = fx.CreateStaff("Grace Hopper", "grace@pulse.edu", s.science.ID)
	s.marie = fx.CreateStaff("Marie Curie", "marie@pulse.edu", s.arts.ID)
	s.physics = fx.CreateSubject("Physics", "PHY101", s.science.ID, s.ada.ID)
	s.chemistry = fx.CreateSubject("Chemistry", "CHM101", s.science.ID, s.ada.ID)
	s.hist = fx.CreateSubject("History", "HIS101", s.arts.ID, s.marie.ID)
	s.sam = fx.CreateStudent("Sam Carter", "sam@pulse.edu", s.science.ID, 2)
	s.tess = fx.CreateStudent("Tess Shaw", "tess@pulse.edu", s.arts.ID, 3)
	fx.CreateFeedback(s.sam, s.physics, 5, "Great course")
	fx.CreateFeedback(s.sam, s.physics, 4, "Solid labs")
	fx.CreateFeedback(s.tess, s.hist, 3, "Fine")
	return s
}

func TestServeAdmin_ZeroFill(t *testing.T) {
	h, fx := newTestHandler(t)
	seedSchool(fx)
	fx.CreateAnnouncement("Maintenance window", models.AudienceAll)
	fx.CreateNotification("New feedback", false)

	req := testutil.NewRequest("GET", "/dashboard/admin")
	rec := testutil.NewRecorder()

	h.ServeAdmin(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got adminPayload
	rec.DecodeJSON(t, &got)

	if got.Counts.Departments != 2 || got.Counts.Subjects != 3 || got.Counts.Staff != 3 {
		t.Errorf("counts: got %+v", got.Counts)
	}
	if got.Counts.Feedback != 3 {
		t.Errorf("feedback count: got %d, want 3", got.Counts.Feedback)
	}
	if len(got.Filters.Departments) != 2 {
		t.Errorf("department options: got %d, want 2", len(got.Filters.Departments))
	}

	// No department selected: dependent dropdowns are idle and empty.
	if got.Filters.Subjects.State != "idle" || len(got.Filters.Subjects.Options) != 0 {
		t.Errorf("subjects field: got state=%q options=%d, want idle/0",
			got.Filters.Subjects.State, len(got.Filters.Subjects.Options))
	}

	// The charts still cover the full catalog, zero-filled.
	wantSubjects := []chartRow{
		{Label: "Physics", Value: 2},
		{Label: "Chemistry", Value: 0},
		{Label: "History", Value: 1},
	}
	if len(got.SubjectChart) != len(wantSubjects) {
		t.Fatalf("subject chart rows: got %d, want %d", len(got.SubjectChart), len(wantSubjects))
	}
	for i, want := range wantSubjects {
		if got.SubjectChart[i] != want {
			t.Errorf("subject chart[%d]: got %+v, want %+v", i, got.SubjectChart[i], want)
		}
	}

	wantStaff := []chartRow{
		{Label: "Ada Lovelace", Value: 2},
		{Label: "Grace Hopper", Value: 0},
		{Label: "Marie Curie", Value: 1},
	}
	if len(got.StaffChart) != len(wantStaff) {
		t.Fatalf("staff chart rows: got %d, want %d", len(got.StaffChart), len(wantStaff))
	}
	for i, want := range wantStaff {
		if got.StaffChart[i] != want {
			t.Errorf("staff chart[%d]: got %+v, want %+v", i, got.StaffChart[i], want)
		}
	}

	if got.Unread != 1 {
		t.Errorf("unread: got %d, want 1", got.Unread)
	}
	if len(got.Announcements) != 1 || got.Announcements[0].Title != "Maintenance window" {
		t.Errorf("announcements: got %+v", got.Announcements)
	}
}

func TestServeAdmin_DepartmentCascade(t *testing.T) {
	h, fx := newTestHandler(t)
	s := seedSchool(fx)

	target := "/dashboard/admin?departmentId=" + s.science.ID + "&subjectId=" + s.physics.ID
	req := testutil.NewRequest("GET", target)
	rec := testutil.NewRecorder()

	h.ServeAdmin(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got adminPayload
	rec.DecodeJSON(t, &got)

	if got.Filters.DepartmentID != s.science.ID {
		t.Errorf("departmentId: got %q, want %q", got.Filters.DepartmentID, s.science.ID)
	}
	if got.Filters.Subjects.State != "loaded" || len(got.Filters.Subjects.Options) != 2 {
		t.Errorf("subjects field: got state=%q options=%d, want loaded/2",
			got.Filters.Subjects.State, len(got.Filters.Subjects.Options))
	}
	if got.Filters.Subjects.Selected != s.physics.ID {
		t.Errorf("subject selection: got %q, want %q", got.Filters.Subjects.Selected, s.physics.ID)
	}
	if got.Filters.Staff.State != "loaded" || len(got.Filters.Staff.Options) != 2 {
		t.Errorf("staff field: got state=%q options=%d, want loaded/2",
			got.Filters.Staff.State, len(got.Filters.Staff.Options))
	}

	// Subject selection narrows the subject chart to that one row.
	if len(got.SubjectChart) != 1 || got.SubjectChart[0] != (chartRow{Label: "Physics", Value: 2}) {
		t.Errorf("subject chart: got %+v", got.SubjectChart)
	}

	// The staff chart stays scoped to the department, zero-filling the
	// member whose subjects drew no responses under this filter.
	wantStaff := []chartRow{
		{Label: "Ada Lovelace", Value: 2},
		{Label: "Grace Hopper", Value: 0},
	}
	if len(got.StaffChart) != len(wantStaff) {
		t.Fatalf("staff chart rows: got %d, want %d", len(got.StaffChart), len(wantStaff))
	}
	for i, want := range wantStaff {
		if got.StaffChart[i] != want {
			t.Errorf("staff chart[%d]: got %+v, want %+v", i, got.StaffChart[i], want)
		}
	}
}

func TestServeAdmin_DependentLoadFailureDegrades(t *testing.T) {
	h, fx := newTestHandler(t)
	s := seedSchool(fx)
	fx.Platform().FailPath("/subjects/options")

	req := testutil.NewRequest("GET", "/dashboard/admin?departmentId="+s.science.ID)
	rec := testutil.NewRecorder()

	h.ServeAdmin(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got adminPayload
	rec.DecodeJSON(t, &got)

	if got.Filters.Subjects.State != "failed" || len(got.Filters.Subjects.Options) != 0 {
		t.Errorf("subjects field: got state=%q options=%d, want failed/0",
			got.Filters.Subjects.State, len(got.Filters.Subjects.Options))
	}
	// The sibling field loads independently of the broken one.
	if got.Filters.Staff.State != "loaded" {
		t.Errorf("staff field state: got %q, want loaded", got.Filters.Staff.State)
	}
	// With no catalog the subject chart falls back to the raw feed.
	if len(got.SubjectChart) != 1 || got.SubjectChart[0].Label != "Physics" {
		t.Errorf("subject chart from feed: got %+v", got.SubjectChart)
	}
}

func TestServeAdmin_CatalogFetchFailure(t *testing.T) {
	h, fx := newTestHandler(t)
	seedSchool(fx)
	fx.Platform().FailPath("/subjects/options")

	// Without a department the full catalog is a primary fetch, so the
	// request fails instead of degrading.
	req := testutil.NewRequest("GET", "/dashboard/admin")
	rec := testutil.NewRecorder()

	h.ServeAdmin(rec, req)

	rec.AssertStatus(t, http.StatusBadGateway)
}

func TestServeStaff(t *testing.T) {
	h, fx := newTestHandler(t)
	s := seedSchool(fx)
	fx.CreateAnnouncement("Staff meeting", models.AudienceStaff)
	fx.CreateAnnouncement("Exam week", models.AudienceStudents)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/dashboard/staff/"+s.ada.ID), "staffID", s.ada.ID)
	rec := testutil.NewRecorder()

	h.ServeStaff(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got staffPayload
	rec.DecodeJSON(t, &got)

	if got.Staff.FullName != "Ada Lovelace" {
		t.Errorf("staff name: got %q, want %q", got.Staff.FullName, "Ada Lovelace")
	}

	// Ada teaches Physics and Chemistry; Chemistry has no responses yet and
	// still charts as a zero row.
	want := []chartRow{
		{Label: "Physics", Value: 2},
		{Label: "Chemistry", Value: 0},
	}
	if len(got.SubjectChart) != len(want) {
		t.Fatalf("subject chart rows: got %d, want %d", len(got.SubjectChart), len(want))
	}
	for i, w := range want {
		if got.SubjectChart[i] != w {
			t.Errorf("subject chart[%d]: got %+v, want %+v", i, got.SubjectChart[i], w)
		}
	}
	if got.Responses != 2 {
		t.Errorf("responses: got %d, want 2", got.Responses)
	}
	if len(got.Announcements) != 1 || got.Announcements[0].Title != "Staff meeting" {
		t.Errorf("announcements: got %+v", got.Announcements)
	}
}

func TestServeStaff_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, id := range []string{"stf-999", "not a valid id!"} {
		req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/dashboard/staff/"+id), "staffID", id)
		rec := testutil.NewRecorder()

		h.ServeStaff(rec, req)

		rec.AssertStatus(t, http.StatusNotFound)
	}
}

func TestServeStudent(t *testing.T) {
	h, fx := newTestHandler(t)
	dept := fx.CreateDepartment("Science")
	ada := fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", dept.ID)
	physics := fx.CreateSubject("Physics", "PHY101", dept.ID, ada.ID)
	fx.CreateSubject("Chemistry", "CHM101", dept.ID, ada.ID)
	sam := fx.CreateStudent("Sam Carter", "sam@pulse.edu", dept.ID, 2)
	fx.CreateAnnouncement("Exam week", models.AudienceStudents)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		fx.CreateFeedbackAt(sam, physics, 4, fmt.Sprintf("Entry %d", i+1), base.AddDate(0, 0, i))
	}

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/dashboard/student/"+sam.ID), "studentID", sam.ID)
	rec := testutil.NewRecorder()

	h.ServeStudent(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got studentPayload
	rec.DecodeJSON(t, &got)

	if got.Student.FullName != "Sam Carter" {
		t.Errorf("student name: got %q, want %q", got.Student.FullName, "Sam Carter")
	}

	want := []chartRow{
		{Label: "Physics", Value: 6},
		{Label: "Chemistry", Value: 0},
	}
	if len(got.SubjectChart) != len(want) {
		t.Fatalf("subject chart rows: got %d, want %d", len(got.SubjectChart), len(want))
	}
	for i, w := range want {
		if got.SubjectChart[i] != w {
			t.Errorf("subject chart[%d]: got %+v, want %+v", i, got.SubjectChart[i], w)
		}
	}
	if got.Responses != 6 {
		t.Errorf("responses: got %d, want 6", got.Responses)
	}

	// The activity card holds the newest five entries, newest first.
	if len(got.RecentFeedback) != 5 {
		t.Fatalf("recent feedback: got %d entries, want 5", len(got.RecentFeedback))
	}
	if got.RecentFeedback[0].Comment != "Entry 6" {
		t.Errorf("recent[0]: got %q, want %q", got.RecentFeedback[0].Comment, "Entry 6")
	}
	if got.RecentFeedback[4].Comment != "Entry 2" {
		t.Errorf("recent[4]: got %q, want %q", got.RecentFeedback[4].Comment, "Entry 2")
	}

	if len(got.Announcements) != 1 || got.Announcements[0].Title != "Exam week" {
		t.Errorf("announcements: got %+v", got.Announcements)
	}
}

func TestServeStudent_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/dashboard/student/stu-999"), "studentID", "stu-999")
	rec := testutil.NewRecorder()

	h.ServeStudent(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}

func TestRoutes(t *testing.T) {
	h, fx := newTestHandler(t)
	s := seedSchool(fx)

	router := dashboard.Routes(h)

	for _, target := range []string{
		"/admin",
		"/staff/" + s.ada.ID,
		"/student/" + s.sam.ID,
	} {
		req := testutil.NewRequest("GET", target)
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, req)
		rec.AssertStatus(t, http.StatusOK)
	}
}
