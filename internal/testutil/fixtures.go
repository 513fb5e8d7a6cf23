// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for seeding the fake platform.
type Fixtures struct {
	p *Platform
	t *testing.T
}

// NewFixtures creates a Fixtures instance over the given platform.
func NewFixtures(t *testing.T, p *Platform) *Fixtures {
	t.Helper()
	return &Fixtures{p: p, t: t}
}

// Platform returns the underlying platform for direct access in tests.
func (f *Fixtures) Platform() *Platform {
	return f.p
}

// CreateDepartment seeds a department with the given name.
// Returns the created department with its generated ID.
func (f *Fixtures) CreateDepartment(name string) models.Department {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	now := time.Now().UTC()
	dep := models.Department{
		ID:          f.p.newIDLocked("dep"),
		Name:        name,
		Description: "Test department",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.p.departments = append(f.p.departments, dep)
	return dep
}

// CreateStaff seeds an active staff member in the given department.
func (f *Fixtures) CreateStaff(fullName, email, departmentID string) models.Staff {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	now := time.Now().UTC()
	st := models.Staff{
		ID:             f.p.newIDLocked("stf"),
		FullName:       fullName,
		Email:          email,
		DepartmentID:   departmentID,
		DepartmentName: f.p.departmentNameLocked(departmentID),
		Designation:    "Lecturer",
		Status:         models.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.p.staff = append(f.p.staff, st)
	return st
}

// CreateSubject seeds a subject taught by the given staff member.
func (f *Fixtures) CreateSubject(name, code, departmentID, staffID string) models.Subject {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	now := time.Now().UTC()
	sub := models.Subject{
		ID:             f.p.newIDLocked("sub"),
		Name:           name,
		Code:           code,
		DepartmentID:   departmentID,
		DepartmentName: f.p.departmentNameLocked(departmentID),
		StaffID:        staffID,
		StaffName:      f.p.staffNameLocked(staffID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.p.subjects = append(f.p.subjects, sub)
	return sub
}

// CreateStudent seeds an active student in the given department.
func (f *Fixtures) CreateStudent(fullName, email, departmentID string, year int) models.Student {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	now := time.Now().UTC()
	id := f.p.newIDLocked("stu")
	st := models.Student{
		ID:             id,
		FullName:       fullName,
		Email:          email,
		RollNumber:     "R-" + id,
		DepartmentID:   departmentID,
		DepartmentName: f.p.departmentNameLocked(departmentID),
		Year:           year,
		Status:         models.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.p.students = append(f.p.students, st)
	return st
}

// CreateFeedback seeds a feedback response. The subject and staff joins are
// derived from the subject record so aggregates stay consistent.
func (f *Fixtures) CreateFeedback(student models.Student, subject models.Subject, rating int, comment string) models.Feedback {
	f.t.Helper()
	return f.CreateFeedbackAt(student, subject, rating, comment, time.Now().UTC())
}

// CreateFeedbackAt seeds a feedback response with an explicit creation time,
// for tests that filter by date range.
func (f *Fixtures) CreateFeedbackAt(student models.Student, subject models.Subject, rating int, comment string, at time.Time) models.Feedback {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	fb := models.Feedback{
		ID:           f.p.newIDLocked("fbk"),
		StudentID:    student.ID,
		StudentName:  student.FullName,
		SubjectID:    subject.ID,
		SubjectName:  subject.Name,
		StaffID:      subject.StaffID,
		StaffName:    subject.StaffName,
		DepartmentID: subject.DepartmentID,
		Rating:       rating,
		Comment:      comment,
		CreatedAt:    at,
	}
	f.p.feedback = append(f.p.feedback, fb)
	return fb
}

// CreateAnnouncement seeds an announcement for the given audience.
func (f *Fixtures) CreateAnnouncement(title, audience string) models.Announcement {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	now := time.Now().UTC()
	a := models.Announcement{
		ID:        f.p.newIDLocked("ann"),
		Title:     title,
		Body:      "<p>Test announcement body</p>",
		Audience:  audience,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.p.announcements = append(f.p.announcements, a)
	return a
}

// CreateNotification seeds a notification with the given read state.
func (f *Fixtures) CreateNotification(title string, read bool) models.Notification {
	f.t.Helper()

	f.p.mu.Lock()
	defer f.p.mu.Unlock()
	n := models.Notification{
		ID:        f.p.newIDLocked("ntf"),
		Title:     title,
		Message:   "Test notification message",
		Audience:  models.AudienceAll,
		Read:      read,
		CreatedAt: time.Now().UTC(),
	}
	f.p.notifications = append(f.p.notifications, n)
	return n
}
