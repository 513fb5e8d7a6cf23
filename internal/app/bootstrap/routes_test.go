package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	analyticsclient "github.com/dalemusser/pulsehub/internal/app/remote/analytics"
	announcementclient "github.com/dalemusser/pulsehub/internal/app/remote/announcements"
	departmentclient "github.com/dalemusser/pulsehub/internal/app/remote/departments"
	feedbackclient "github.com/dalemusser/pulsehub/internal/app/remote/feedback"
	notificationclient "github.com/dalemusser/pulsehub/internal/app/remote/notifications"
	staffclient "github.com/dalemusser/pulsehub/internal/app/remote/staff"
	studentclient "github.com/dalemusser/pulsehub/internal/app/remote/students"
	subjectclient "github.com/dalemusser/pulsehub/internal/app/remote/subjects"
	"github.com/dalemusser/pulsehub/internal/app/system/workers"
	"github.com/dalemusser/pulsehub/internal/testutil"
)

func testDeps(t *testing.T) (Deps, *testutil.Fixtures) {
	t.Helper()
	platform := testutil.NewPlatform()
	fx := testutil.NewFixtures(t, platform)
	api := platform.API(t)
	notifs := notificationclient.New(api)
	deps := Deps{
		API: api,

		Analytics:     analyticsclient.New(api),
		Announcements: announcementclient.New(api),
		Departments:   departmentclient.New(api),
		Feedback:      feedbackclient.New(api),
		Notifications: notifs,
		Staff:         staffclient.New(api),
		Students:      studentclient.New(api),
		Subjects:      subjectclient.New(api),

		Poller: workers.NewNotificationPoller(notifs, zap.NewNop(), time.Hour, 10),
	}
	return deps, fx
}

func TestBuildHandler_MountsRelaySurface(t *testing.T) {
	deps, fx := testDeps(t)
	dep := fx.CreateDepartment("Science")
	staff := fx.CreateStaff("Ada Lovelace", "ada@pulse.edu", dep.ID)
	student := fx.CreateStudent("Sam Carter", "sam@pulse.edu", dep.ID, 2)

	h, err := BuildHandler(nil, validAppConfig(), deps, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler() error = %v", err)
	}

	targets := []string{
		"/health",
		"/client-config",
		"/departments",
		"/departments/" + dep.ID,
		"/subjects",
		"/staff",
		"/students",
		"/feedback",
		"/announcements",
		"/announcements/active",
		"/notifications/panel",
		"/dashboard/admin",
		"/dashboard/staff/" + staff.ID,
		"/dashboard/student/" + student.ID,
	}
	for _, target := range targets {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: got %d, want %d (body %s)", target, rec.Code, http.StatusOK, rec.Body.String())
		}
	}
}
