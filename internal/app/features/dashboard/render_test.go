package dashboard_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/classment/internal/app/features/dashboard"
	_ "github.com/dalemusser/classment/internal/app/features/dashboard/views"
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/dalemusser/classment/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// schoolRouter serves the dashboard feature through the real templates.
func schoolRouter(t *testing.T, src *testutil.MemStats) chi.Router {
	t.Helper()
	testutil.BootTemplates(t)

	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	agg := dashstats.New(src, dashstats.WithClock(func() time.Time { return now }))
	return dashboard.Routes(dashboard.NewHandler(agg, sm, zap.NewNop()), sm)
}

func classroom() *testutil.MemStats {
	return &testutil.MemStats{
		Profiles: []models.Profile{
			{ID: "admin-1", Role: models.RoleAdmin, IsActive: true},
			{ID: "teacher-1", Role: models.RoleTeacher, IsActive: true},
		},
		Classes: []models.Class{
			{ID: "c1", ClassName: "Algebra Basics", GradeLevel: "5", Section: "A", TeacherID: "teacher-1", IsActive: true},
		},
		Students: []models.Student{{ID: "s1", ClassID: "c1", IsActive: true}},
		Assignments: []models.Assignment{
			{ID: "a1", Title: "Fractions Worksheet", Subject: "Math", ClassID: "c1", TeacherID: "teacher-1", DueDate: "2026-03-12", TotalMarks: 20},
		},
	}
}

func teacherOne() testutil.TestUser {
	u := testutil.TeacherUser()
	u.ID = "teacher-1"
	return u
}

func get(h http.Handler, target string, user testutil.TestUser, hx bool) *testutil.ResponseRecorder {
	req := testutil.NewAuthenticatedRequest(http.MethodGet, target, user)
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRender_DashboardAndPanel(t *testing.T) {
	h := schoolRouter(t, classroom())

	tests := []struct {
		name   string
		target string
		user   testutil.TestUser
		hx     bool
		want   string
	}{
		{"admin page", "/", testutil.AdminUser(), false, "Total Students"},
		{"admin panel", "/panel", testutil.AdminUser(), true, "Total Students"},
		{"teacher page", "/", teacherOne(), false, "My Classes"},
		{"teacher panel", "/panel", teacherOne(), true, "Pending Grading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(h, tt.target, tt.user, tt.hx)
			rec.AssertStatus(t, http.StatusOK)
			rec.AssertContains(t, `id="dashboard-panel"`)
			rec.AssertContains(t, tt.want)
			rec.AssertContains(t, "Today is 2026-03-10 (Coordinated Universal Time)")
		})
	}
}

func TestRender_FailureShowsOneToast(t *testing.T) {
	src := classroom()
	src.Fail = map[string]error{
		"CountActiveStudents": errors.New("connection reset"),
		"TeacherClasses":      errors.New("connection reset"),
	}
	h := schoolRouter(t, src)

	tests := []struct {
		name   string
		target string
		user   testutil.TestUser
		hx     bool
		want   string
	}{
		{"admin page", "/", testutil.AdminUser(), false, "Failed to load dashboard statistics"},
		{"admin panel", "/panel", testutil.AdminUser(), true, "Failed to load dashboard statistics"},
		{"teacher page", "/", teacherOne(), false, "Failed to load dashboard data"},
		{"teacher panel", "/panel", teacherOne(), true, "Failed to load dashboard data"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(h, tt.target, tt.user, tt.hx)
			rec.AssertStatus(t, http.StatusOK)
			if n := strings.Count(rec.Body.String(), "toast-destructive"); n != 1 {
				t.Errorf("destructive toasts: got %d, want 1", n)
			}
			rec.AssertContains(t, tt.want)
			rec.AssertContains(t, `data-state="ready-with-error"`)
		})
	}
}

func TestRender_TeacherPanelListsClassesAndAssignments(t *testing.T) {
	h := schoolRouter(t, classroom())

	rec := get(h, "/panel", teacherOne(), true)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Algebra Basics")
	rec.AssertContains(t, "5 - A")
	rec.AssertContains(t, `action="/dashboard/classes/c1/attendance"`)
	rec.AssertContains(t, `name="gorilla.csrf.Token"`)
	rec.AssertContains(t, "Fractions Worksheet")
	rec.AssertContains(t, "Due: 3/12/2026")
	rec.AssertContains(t, "20 pts")
}

func TestRender_TeacherPanelEmpty(t *testing.T) {
	h := schoolRouter(t, &testutil.MemStats{})

	rec := get(h, "/panel", teacherOne(), true)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "No classes assigned yet")
	rec.AssertContains(t, "No recent assignments")
}
