package home

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/domain/models"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *homeData) {
	t.Helper()
	h := NewHandler(nil, zap.NewNop())
	got := &homeData{}
	h.render = func(w http.ResponseWriter, _ *http.Request, name string, data any) {
		if name != "home" {
			t.Errorf("template: got %q, want home", name)
		}
		*got = data.(homeData)
		w.WriteHeader(http.StatusOK)
	}
	return h, got
}

func TestServeRoot_Visitor(t *testing.T) {
	h, got := newTestHandler(t)

	h.ServeRoot(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got.IsLoggedIn {
		t.Error("visitor should not be logged in")
	}
	if got.Profile != nil {
		t.Errorf("visitor profile: got %+v, want nil", got.Profile)
	}
	if got.Welcome != "Welcome to Classment" {
		t.Errorf("welcome: got %q", got.Welcome)
	}
}

func TestServeRoot_Teacher(t *testing.T) {
	h, got := newTestHandler(t)

	req := auth.WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil), &auth.SessionUser{
		ID:        "t1",
		Name:      "<b>Ms</b> Frizzle",
		Email:     "frizzle@school.test",
		Role:      "Teacher",
		AvatarURL: "javascript:alert(1)",
		IsActive:  true,
	})
	h.ServeRoot(httptest.NewRecorder(), req)

	if got.Welcome != "Welcome to your Teacher Portal" {
		t.Errorf("welcome: got %q", got.Welcome)
	}
	if got.Description != "Track attendance, manage assignments, and communicate with parents." {
		t.Errorf("description: got %q", got.Description)
	}
	p := got.Profile
	if p == nil {
		t.Fatal("profile missing")
	}
	if p.Name != "Ms Frizzle" {
		t.Errorf("name: got %q", p.Name)
	}
	if p.RoleLabel != "Teacher" || p.RoleBadge != "bg-primary text-primary-foreground" {
		t.Errorf("role: got %q %q", p.RoleLabel, p.RoleBadge)
	}
	if p.AvatarURL != "" {
		t.Errorf("avatar: got %q, want rejected", p.AvatarURL)
	}
	if p.Status != "Active" || p.StatusVariant != "default" {
		t.Errorf("status: got %q %q", p.Status, p.StatusVariant)
	}
}

func TestServeRoot_EmptyNameFallsBack(t *testing.T) {
	h, got := newTestHandler(t)

	req := auth.WithTestUser(httptest.NewRequest(http.MethodGet, "/", nil), &auth.SessionUser{
		ID: "p1", Role: "parent", Email: "p@school.test", IsActive: true,
	})
	h.ServeRoot(httptest.NewRecorder(), req)

	if got.Profile == nil || got.Profile.Name != "Not set" {
		t.Errorf("name: got %+v", got.Profile)
	}
}

func TestWelcomeMessage(t *testing.T) {
	tests := []struct {
		role models.Role
		want string
	}{
		{models.RoleAdmin, "Welcome to your Admin Dashboard"},
		{models.RoleTeacher, "Welcome to your Teacher Portal"},
		{models.RoleParent, "Welcome to your Parent Dashboard"},
		{models.RoleStaff, "Welcome to your Staff Portal"},
		{"principal", "Welcome to Classment"},
		{"", "Welcome to Classment"},
	}
	for _, tt := range tests {
		if got := WelcomeMessage(tt.role); got != tt.want {
			t.Errorf("WelcomeMessage(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestRoleBadgeClass(t *testing.T) {
	tests := map[models.Role]string{
		models.RoleAdmin:   "bg-destructive text-destructive-foreground",
		models.RoleTeacher: "bg-primary text-primary-foreground",
		models.RoleParent:  "bg-accent text-accent-foreground",
		models.RoleStaff:   "bg-warning text-warning-foreground",
		"visitor":          "bg-secondary text-secondary-foreground",
	}
	for role, want := range tests {
		if got := RoleBadgeClass(role); got != want {
			t.Errorf("RoleBadgeClass(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestRoleDescription_Unknown(t *testing.T) {
	if got := RoleDescription("principal"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestStatusLabel(t *testing.T) {
	if l, v := StatusLabel(false); l != "Inactive" || v != "destructive" {
		t.Errorf("StatusLabel(false) = %q, %q", l, v)
	}
}
