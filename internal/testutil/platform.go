// internal/testutil/platform.go
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/domain/models"
)

// Platform is an in-memory stand-in for the Pulse platform API. It serves
// the same wire contract the remote clients target: paged list envelopes,
// option catalogs, sparse aggregate feeds, duplicate rejections, and the
// notification endpoints. Handlers and engines exercise real HTTP against
// it through httptest.
//
// Lists serve insertion order. Aggregate feeds are derived from the seeded
// feedback records, so entities without feedback are absent from the feed,
// which is exactly what the merge engine must zero-fill.
type Platform struct {
	mu sync.Mutex

	departments   []models.Department
	subjects      []models.Subject
	staff         []models.Staff
	students      []models.Student
	feedback      []models.Feedback
	announcements []models.Announcement
	notifications []models.Notification

	token    string
	nextID   int
	failing  map[string]bool
	requests []requestRecord
}

type requestRecord struct {
	method string
	path   string
}

// NewPlatform returns an empty platform.
func NewPlatform() *Platform {
	return &Platform{failing: make(map[string]bool)}
}

// RequireToken makes every request demand this bearer token.
func (p *Platform) RequireToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
}

// FailPath makes every request whose path starts with prefix answer 502
// until ClearFail is called.
func (p *Platform) FailPath(prefix string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failing[prefix] = true
}

// ClearFail removes a failure injected with FailPath.
func (p *Platform) ClearFail(prefix string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failing, prefix)
}

// Calls counts requests seen for the method whose path starts with prefix.
// Failed and rejected requests count too.
func (p *Platform) Calls(method, prefix string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, rec := range p.requests {
		if rec.method == method && strings.HasPrefix(rec.path, prefix) {
			n++
		}
	}
	return n
}

// ResetCalls clears the request log.
func (p *Platform) ResetCalls() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = nil
}

// Server starts an httptest server for the platform, closed with the test.
func (p *Platform) Server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(p.Handler())
	t.Cleanup(srv.Close)
	return srv
}

// API starts a server and returns a remote client wired to it.
func (p *Platform) API(t *testing.T) *remote.Client {
	t.Helper()
	srv := p.Server(t)
	token := "test-token"
	p.RequireToken(token)
	api, err := remote.New(remote.Config{BaseURL: srv.URL, Token: token}, nil)
	if err != nil {
		t.Fatalf("remote.New() error = %v", err)
	}
	return api
}

func (p *Platform) newIDLocked(prefix string) string {
	p.nextID++
	return fmt.Sprintf("%s-%d", prefix, p.nextID)
}

// Handler returns the platform's HTTP surface.
func (p *Platform) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(p.track)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/departments", func(r chi.Router) {
		r.Get("/", p.listDepartments)
		r.Post("/", p.createDepartment)
		r.Get("/options", p.departmentOptions)
		r.Get("/{id}", p.getDepartment)
		r.Put("/{id}", p.updateDepartment)
		r.Delete("/{id}", p.deleteDepartment)
	})

	r.Route("/subjects", func(r chi.Router) {
		r.Get("/", p.listSubjects)
		r.Post("/", p.createSubject)
		r.Get("/options", p.subjectOptions)
		r.Get("/{id}", p.getSubject)
		r.Put("/{id}", p.updateSubject)
		r.Delete("/{id}", p.deleteSubject)
	})

	r.Route("/staff", func(r chi.Router) {
		r.Get("/", p.listStaff)
		r.Post("/", p.createStaff)
		r.Get("/options", p.staffOptions)
		r.Get("/{id}", p.getStaff)
		r.Put("/{id}", p.updateStaff)
		r.Delete("/{id}", p.deleteStaff)
	})

	r.Route("/students", func(r chi.Router) {
		r.Get("/", p.listStudents)
		r.Post("/", p.createStudent)
		r.Get("/options", p.studentOptions)
		r.Get("/{id}", p.getStudent)
		r.Put("/{id}", p.updateStudent)
		r.Delete("/{id}", p.deleteStudent)
	})

	r.Route("/feedback", func(r chi.Router) {
		r.Get("/", p.listFeedback)
		r.Get("/{id}", p.getFeedback)
		r.Delete("/{id}", p.deleteFeedback)
	})

	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", p.listAnnouncements)
		r.Post("/", p.createAnnouncement)
		r.Get("/active", p.activeAnnouncements)
		r.Get("/{id}", p.getAnnouncement)
		r.Put("/{id}", p.updateAnnouncement)
		r.Delete("/{id}", p.deleteAnnouncement)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/counts", p.dashboardCounts)
		r.Get("/stats/subject-responses", p.subjectResponses)
		r.Get("/stats/staff-responses", p.staffResponses)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", p.listNotifications)
		r.Get("/summary", p.notificationSummary)
		r.Post("/{id}/read", p.markNotificationRead)
		r.Post("/read-all", p.markAllNotificationsRead)
	})

	return r
}

func (p *Platform) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		p.requests = append(p.requests, requestRecord{r.Method, r.URL.Path})
		failed := false
		for prefix, on := range p.failing {
			if on && strings.HasPrefix(r.URL.Path, prefix) {
				failed = true
				break
			}
		}
		token := p.token
		p.mu.Unlock()

		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			writeAPIError(w, http.StatusUnauthorized, "missing or invalid credential", "")
			return
		}
		if failed {
			writeAPIError(w, http.StatusBadGateway, "upstream unavailable", "")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// paging

func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

func paginate[T any](items []T, page, limit int) ([]T, int) {
	total := len(items)
	start := (page - 1) * limit
	if start >= total {
		return []T{}, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, total
}

func matches(value, search string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(search))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, map[string]string{"message": message, "code": code})
}

func writePage[T any](w http.ResponseWriter, items []T, total int) {
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

// departments

func (p *Platform) listDepartments(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	search := q.Get("search")

	filtered := make([]models.Department, 0, len(p.departments))
	for _, d := range p.departments {
		if search != "" && !matches(d.Name, search) {
			continue
		}
		filtered = append(filtered, d)
	}
	page, limit := pageParams(r)
	items, total := paginate(filtered, page, limit)
	writePage(w, items, total)
}

func (p *Platform) getDepartment(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for _, d := range p.departments {
		if d.ID == id {
			writeJSON(w, http.StatusOK, d)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "department not found", "")
}

func (p *Platform) createDepartment(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.departments {
		if strings.EqualFold(d.Name, in.Name) {
			writeAPIError(w, http.StatusConflict, "a department with this name already exists", "duplicate")
			return
		}
	}
	now := time.Now().UTC()
	dep := models.Department{
		ID:          p.newIDLocked("dep"),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.departments = append(p.departments, dep)
	writeJSON(w, http.StatusCreated, dep)
}

func (p *Platform) updateDepartment(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i := range p.departments {
		if p.departments[i].ID != id {
			continue
		}
		if in.Name != nil {
			for _, other := range p.departments {
				if other.ID != id && strings.EqualFold(other.Name, *in.Name) {
					writeAPIError(w, http.StatusConflict, "a department with this name already exists", "duplicate")
					return
				}
			}
			p.departments[i].Name = *in.Name
		}
		if in.Description != nil {
			p.departments[i].Description = *in.Description
		}
		p.departments[i].UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, p.departments[i])
		return
	}
	writeAPIError(w, http.StatusNotFound, "department not found", "")
}

func (p *Platform) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i, d := range p.departments {
		if d.ID == id {
			p.departments = append(p.departments[:i], p.departments[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "department not found", "")
}

func (p *Platform) departmentOptions(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	opts := make([]models.Option, 0, len(p.departments))
	for _, d := range p.departments {
		opts = append(opts, models.Option{ID: d.ID, Name: d.Name})
	}
	writeJSON(w, http.StatusOK, opts)
}

// subjects

func (p *Platform) listSubjects(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	search, deptID, staffID := q.Get("search"), q.Get("departmentId"), q.Get("staffId")

	filtered := make([]models.Subject, 0, len(p.subjects))
	for _, s := range p.subjects {
		if deptID != "" && s.DepartmentID != deptID {
			continue
		}
		if staffID != "" && s.StaffID != staffID {
			continue
		}
		if search != "" && !matches(s.Name, search) && !matches(s.Code, search) {
			continue
		}
		filtered = append(filtered, s)
	}
	page, limit := pageParams(r)
	items, total := paginate(filtered, page, limit)
	writePage(w, items, total)
}

func (p *Platform) getSubject(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for _, s := range p.subjects {
		if s.ID == id {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "subject not found", "")
}

func (p *Platform) createSubject(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name         string `json:"name"`
		Code         string `json:"code"`
		DepartmentID string `json:"departmentId"`
		StaffID      string `json:"staffId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.subjects {
		if in.Code != "" && strings.EqualFold(s.Code, in.Code) {
			writeAPIError(w, http.StatusConflict, "a subject with this code already exists", "duplicate")
			return
		}
	}
	now := time.Now().UTC()
	sub := models.Subject{
		ID:             p.newIDLocked("sub"),
		Name:           in.Name,
		Code:           in.Code,
		DepartmentID:   in.DepartmentID,
		DepartmentName: p.departmentNameLocked(in.DepartmentID),
		StaffID:        in.StaffID,
		StaffName:      p.staffNameLocked(in.StaffID),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.subjects = append(p.subjects, sub)
	writeJSON(w, http.StatusCreated, sub)
}

func (p *Platform) updateSubject(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name         *string `json:"name"`
		Code         *string `json:"code"`
		DepartmentID *string `json:"departmentId"`
		StaffID      *string `json:"staffId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i := range p.subjects {
		if p.subjects[i].ID != id {
			continue
		}
		if in.Code != nil {
			for _, other := range p.subjects {
				if other.ID != id && *in.Code != "" && strings.EqualFold(other.Code, *in.Code) {
					writeAPIError(w, http.StatusConflict, "a subject with this code already exists", "duplicate")
					return
				}
			}
			p.subjects[i].Code = *in.Code
		}
		if in.Name != nil {
			p.subjects[i].Name = *in.Name
		}
		if in.DepartmentID != nil {
			p.subjects[i].DepartmentID = *in.DepartmentID
			p.subjects[i].DepartmentName = p.departmentNameLocked(*in.DepartmentID)
		}
		if in.StaffID != nil {
			p.subjects[i].StaffID = *in.StaffID
			p.subjects[i].StaffName = p.staffNameLocked(*in.StaffID)
		}
		p.subjects[i].UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, p.subjects[i])
		return
	}
	writeAPIError(w, http.StatusNotFound, "subject not found", "")
}

func (p *Platform) deleteSubject(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i, s := range p.subjects {
		if s.ID == id {
			p.subjects = append(p.subjects[:i], p.subjects[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "subject not found", "")
}

func (p *Platform) subjectOptions(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	deptID := r.URL.Query().Get("departmentId")
	staffID := r.URL.Query().Get("staffId")
	opts := make([]models.Option, 0, len(p.subjects))
	for _, s := range p.subjects {
		if deptID != "" && s.DepartmentID != deptID {
			continue
		}
		if staffID != "" && s.StaffID != staffID {
			continue
		}
		opts = append(opts, models.Option{ID: s.ID, Name: s.Name})
	}
	writeJSON(w, http.StatusOK, opts)
}

// staff

func (p *Platform) listStaff(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	search, deptID, status := q.Get("search"), q.Get("departmentId"), q.Get("status")

	filtered := make([]models.Staff, 0, len(p.staff))
	for _, st := range p.staff {
		if deptID != "" && st.DepartmentID != deptID {
			continue
		}
		if status != "" && st.Status != status {
			continue
		}
		if search != "" && !matches(st.FullName, search) && !matches(st.Email, search) {
			continue
		}
		filtered = append(filtered, st)
	}
	page, limit := pageParams(r)
	items, total := paginate(filtered, page, limit)
	writePage(w, items, total)
}

func (p *Platform) getStaff(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for _, st := range p.staff {
		if st.ID == id {
			writeJSON(w, http.StatusOK, st)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "staff member not found", "")
}

func (p *Platform) createStaff(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FullName     string `json:"fullName"`
		Email        string `json:"email"`
		DepartmentID string `json:"departmentId"`
		Designation  string `json:"designation"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, st := range p.staff {
		if strings.EqualFold(st.Email, in.Email) {
			writeAPIError(w, http.StatusConflict, "a staff member with this email already exists", "duplicate")
			return
		}
	}
	now := time.Now().UTC()
	st := models.Staff{
		ID:             p.newIDLocked("stf"),
		FullName:       in.FullName,
		Email:          in.Email,
		DepartmentID:   in.DepartmentID,
		DepartmentName: p.departmentNameLocked(in.DepartmentID),
		Designation:    in.Designation,
		Status:         models.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.staff = append(p.staff, st)
	writeJSON(w, http.StatusCreated, st)
}

func (p *Platform) updateStaff(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FullName     *string `json:"fullName"`
		Email        *string `json:"email"`
		DepartmentID *string `json:"departmentId"`
		Designation  *string `json:"designation"`
		Status       *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i := range p.staff {
		if p.staff[i].ID != id {
			continue
		}
		if in.Email != nil {
			for _, other := range p.staff {
				if other.ID != id && strings.EqualFold(other.Email, *in.Email) {
					writeAPIError(w, http.StatusConflict, "a staff member with this email already exists", "duplicate")
					return
				}
			}
			p.staff[i].Email = *in.Email
		}
		if in.FullName != nil {
			p.staff[i].FullName = *in.FullName
		}
		if in.DepartmentID != nil {
			p.staff[i].DepartmentID = *in.DepartmentID
			p.staff[i].DepartmentName = p.departmentNameLocked(*in.DepartmentID)
		}
		if in.Designation != nil {
			p.staff[i].Designation = *in.Designation
		}
		if in.Status != nil {
			p.staff[i].Status = *in.Status
		}
		p.staff[i].UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, p.staff[i])
		return
	}
	writeAPIError(w, http.StatusNotFound, "staff member not found", "")
}

func (p *Platform) deleteStaff(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i, st := range p.staff {
		if st.ID == id {
			p.staff = append(p.staff[:i], p.staff[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "staff member not found", "")
}

func (p *Platform) staffOptions(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	deptID := r.URL.Query().Get("departmentId")
	opts := make([]models.Option, 0, len(p.staff))
	for _, st := range p.staff {
		if deptID != "" && st.DepartmentID != deptID {
			continue
		}
		opts = append(opts, models.Option{ID: st.ID, Name: st.FullName})
	}
	writeJSON(w, http.StatusOK, opts)
}

// students

func (p *Platform) listStudents(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	search, deptID, year := q.Get("search"), q.Get("departmentId"), q.Get("year")

	filtered := make([]models.Student, 0, len(p.students))
	for _, s := range p.students {
		if deptID != "" && s.DepartmentID != deptID {
			continue
		}
		if year != "" && strconv.Itoa(s.Year) != year {
			continue
		}
		if search != "" && !matches(s.FullName, search) &&
			!matches(s.Email, search) && !matches(s.RollNumber, search) {
			continue
		}
		filtered = append(filtered, s)
	}
	page, limit := pageParams(r)
	items, total := paginate(filtered, page, limit)
	writePage(w, items, total)
}

func (p *Platform) getStudent(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for _, s := range p.students {
		if s.ID == id {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "student not found", "")
}

func (p *Platform) createStudent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FullName     string `json:"fullName"`
		Email        string `json:"email"`
		RollNumber   string `json:"rollNumber"`
		DepartmentID string `json:"departmentId"`
		Year         int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.students {
		if strings.EqualFold(s.Email, in.Email) {
			writeAPIError(w, http.StatusConflict, "a student with this email already exists", "duplicate")
			return
		}
	}
	now := time.Now().UTC()
	st := models.Student{
		ID:             p.newIDLocked("stu"),
		FullName:       in.FullName,
		Email:          in.Email,
		RollNumber:     in.RollNumber,
		DepartmentID:   in.DepartmentID,
		DepartmentName: p.departmentNameLocked(in.DepartmentID),
		Year:           in.Year,
		Status:         models.StatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	p.students = append(p.students, st)
	writeJSON(w, http.StatusCreated, st)
}

func (p *Platform) updateStudent(w http.ResponseWriter, r *http.Request) {
	var in struct {
		FullName     *string `json:"fullName"`
		Email        *string `json:"email"`
		RollNumber   *string `json:"rollNumber"`
		DepartmentID *string `json:"departmentId"`
		Year         *int    `json:"year"`
		Status       *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i := range p.students {
		if p.students[i].ID != id {
			continue
		}
		if in.Email != nil {
			for _, other := range p.students {
				if other.ID != id && strings.EqualFold(other.Email, *in.Email) {
					writeAPIError(w, http.StatusConflict, "a student with this email already exists", "duplicate")
					return
				}
			}
			p.students[i].Email = *in.Email
		}
		if in.FullName != nil {
			p.students[i].FullName = *in.FullName
		}
		if in.RollNumber != nil {
			p.students[i].RollNumber = *in.RollNumber
		}
		if in.DepartmentID != nil {
			p.students[i].DepartmentID = *in.DepartmentID
			p.students[i].DepartmentName = p.departmentNameLocked(*in.DepartmentID)
		}
		if in.Year != nil {
			p.students[i].Year = *in.Year
		}
		if in.Status != nil {
			p.students[i].Status = *in.Status
		}
		p.students[i].UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, p.students[i])
		return
	}
	writeAPIError(w, http.StatusNotFound, "student not found", "")
}

func (p *Platform) deleteStudent(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i, s := range p.students {
		if s.ID == id {
			p.students = append(p.students[:i], p.students[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "student not found", "")
}

func (p *Platform) studentOptions(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	deptID := r.URL.Query().Get("departmentId")
	opts := make([]models.Option, 0, len(p.students))
	for _, s := range p.students {
		if deptID != "" && s.DepartmentID != deptID {
			continue
		}
		opts = append(opts, models.Option{ID: s.ID, Name: s.FullName})
	}
	writeJSON(w, http.StatusOK, opts)
}

// feedback

func (p *Platform) filterFeedbackLocked(q map[string]string) []models.Feedback {
	out := make([]models.Feedback, 0, len(p.feedback))
	for _, f := range p.feedback {
		if v := q["departmentId"]; v != "" && f.DepartmentID != v {
			continue
		}
		if v := q["subjectId"]; v != "" && f.SubjectID != v {
			continue
		}
		if v := q["staffId"]; v != "" && f.StaffID != v {
			continue
		}
		if v := q["studentId"]; v != "" && f.StudentID != v {
			continue
		}
		if v := q["rating"]; v != "" && strconv.Itoa(f.Rating) != v {
			continue
		}
		if v := q["from"]; v != "" {
			if from, err := time.Parse("2006-01-02", v); err == nil && f.CreatedAt.Before(from) {
				continue
			}
		}
		if v := q["to"]; v != "" {
			if to, err := time.Parse("2006-01-02", v); err == nil && !f.CreatedAt.Before(to.Add(24*time.Hour)) {
				continue
			}
		}
		if v := q["search"]; v != "" && !matches(f.Comment, v) && !matches(f.StudentName, v) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func (p *Platform) listFeedback(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	params := map[string]string{}
	for _, k := range []string{"departmentId", "subjectId", "staffId", "studentId", "rating", "from", "to", "search"} {
		params[k] = q.Get(k)
	}
	filtered := p.filterFeedbackLocked(params)
	page, limit := pageParams(r)
	items, total := paginate(filtered, page, limit)
	writePage(w, items, total)
}

func (p *Platform) getFeedback(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for _, f := range p.feedback {
		if f.ID == id {
			writeJSON(w, http.StatusOK, f)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "feedback not found", "")
}

func (p *Platform) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i, f := range p.feedback {
		if f.ID == id {
			p.feedback = append(p.feedback[:i], p.feedback[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "feedback not found", "")
}

// announcements

func (p *Platform) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	search, audience := q.Get("search"), q.Get("audience")

	filtered := make([]models.Announcement, 0, len(p.announcements))
	for _, a := range p.announcements {
		if audience != "" && a.Audience != audience {
			continue
		}
		if search != "" && !matches(a.Title, search) {
			continue
		}
		filtered = append(filtered, a)
	}
	page, limit := pageParams(r)
	items, total := paginate(filtered, page, limit)
	writePage(w, items, total)
}

func (p *Platform) activeAnnouncements(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	audience := r.URL.Query().Get("audience")
	now := time.Now().UTC()
	out := make([]models.Announcement, 0, len(p.announcements))
	for _, a := range p.announcements {
		if a.VisibleTo(audience, now) {
			out = append(out, a)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (p *Platform) getAnnouncement(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for _, a := range p.announcements {
		if a.ID == id {
			writeJSON(w, http.StatusOK, a)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "announcement not found", "")
}

func (p *Platform) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title    string     `json:"title"`
		Body     string     `json:"body"`
		Audience string     `json:"audience"`
		Active   bool       `json:"active"`
		StartsAt *time.Time `json:"startsAt"`
		EndsAt   *time.Time `json:"endsAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	if !models.IsValidAudience(in.Audience) {
		writeAPIError(w, http.StatusUnprocessableEntity, "audience must be all, staff, or students", "validation")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now().UTC()
	a := models.Announcement{
		ID:        p.newIDLocked("ann"),
		Title:     in.Title,
		Body:      in.Body,
		Audience:  in.Audience,
		Active:    in.Active,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.announcements = append(p.announcements, a)
	writeJSON(w, http.StatusCreated, a)
}

func (p *Platform) updateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title    *string    `json:"title"`
		Body     *string    `json:"body"`
		Audience *string    `json:"audience"`
		Active   *bool      `json:"active"`
		StartsAt *time.Time `json:"startsAt"`
		EndsAt   *time.Time `json:"endsAt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeAPIError(w, http.StatusBadRequest, "malformed body", "")
		return
	}
	if in.Audience != nil && !models.IsValidAudience(*in.Audience) {
		writeAPIError(w, http.StatusUnprocessableEntity, "audience must be all, staff, or students", "validation")
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i := range p.announcements {
		if p.announcements[i].ID != id {
			continue
		}
		if in.Title != nil {
			p.announcements[i].Title = *in.Title
		}
		if in.Body != nil {
			p.announcements[i].Body = *in.Body
		}
		if in.Audience != nil {
			p.announcements[i].Audience = *in.Audience
		}
		if in.Active != nil {
			p.announcements[i].Active = *in.Active
		}
		if in.StartsAt != nil {
			p.announcements[i].StartsAt = in.StartsAt
		}
		if in.EndsAt != nil {
			p.announcements[i].EndsAt = in.EndsAt
		}
		p.announcements[i].UpdatedAt = time.Now().UTC()
		writeJSON(w, http.StatusOK, p.announcements[i])
		return
	}
	writeAPIError(w, http.StatusNotFound, "announcement not found", "")
}

func (p *Platform) deleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i, a := range p.announcements {
		if a.ID == id {
			p.announcements = append(p.announcements[:i], p.announcements[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "announcement not found", "")
}

// analytics

func (p *Platform) dashboardCounts(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	writeJSON(w, http.StatusOK, models.DashboardCounts{
		Departments:   int64(len(p.departments)),
		Subjects:      int64(len(p.subjects)),
		Staff:         int64(len(p.staff)),
		Students:      int64(len(p.students)),
		Feedback:      int64(len(p.feedback)),
		Announcements: int64(len(p.announcements)),
	})
}

func (p *Platform) subjectResponses(w http.ResponseWriter, r *http.Request) {
	p.aggregate(w, r, func(f models.Feedback) (string, string) {
		return f.SubjectID, f.SubjectName
	})
}

func (p *Platform) staffResponses(w http.ResponseWriter, r *http.Request) {
	p.aggregate(w, r, func(f models.Feedback) (string, string) {
		return f.StaffID, f.StaffName
	})
}

// aggregate groups the filtered feedback by a dimension. Entities without
// any matching feedback never appear, making the feed sparse.
func (p *Platform) aggregate(w http.ResponseWriter, r *http.Request, dim func(models.Feedback) (string, string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	q := r.URL.Query()
	params := map[string]string{}
	for _, k := range []string{"departmentId", "subjectId", "staffId", "studentId"} {
		params[k] = q.Get(k)
	}

	counts := map[string]int{}
	names := map[string]string{}
	var order []string
	for _, f := range p.filterFeedbackLocked(params) {
		id, name := dim(f)
		if id == "" {
			continue
		}
		if _, seen := counts[id]; !seen {
			order = append(order, id)
			names[id] = name
		}
		counts[id]++
	}

	rows := make([]models.AggregateRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, models.AggregateRow{ID: id, Name: names[id], ResponseCount: counts[id]})
	}
	writeJSON(w, http.StatusOK, rows)
}

// notifications

func (p *Platform) listNotifications(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > len(p.notifications) {
		limit = len(p.notifications)
	}

	// Newest first.
	items := make([]models.Notification, 0, limit)
	for i := len(p.notifications) - 1; i >= 0 && len(items) < limit; i-- {
		items = append(items, p.notifications[i])
	}
	writePage(w, items, len(p.notifications))
}

func (p *Platform) notificationSummary(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	unread := 0
	for _, n := range p.notifications {
		if !n.Read {
			unread++
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"unread": unread})
}

func (p *Platform) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := chi.URLParam(r, "id")
	for i := range p.notifications {
		if p.notifications[i].ID == id {
			p.notifications[i].Read = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeAPIError(w, http.StatusNotFound, "notification not found", "")
}

func (p *Platform) markAllNotificationsRead(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.notifications {
		p.notifications[i].Read = true
	}
	w.WriteHeader(http.StatusNoContent)
}

// name lookups used to denormalize stored records the way the platform does

func (p *Platform) departmentNameLocked(id string) string {
	for _, d := range p.departments {
		if d.ID == id {
			return d.Name
		}
	}
	return ""
}

func (p *Platform) staffNameLocked(id string) string {
	for _, st := range p.staff {
		if st.ID == id {
			return st.FullName
		}
	}
	return ""
}
