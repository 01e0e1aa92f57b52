package login

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/classment/internal/app/features/errors"
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/ratelimit"
	"github.com/dalemusser/classment/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeProfiles struct {
	byEmail map[string]models.Profile
	err     error
}

func (f *fakeProfiles) GetByEmail(_ context.Context, email string) (*models.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byEmail[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func hash(t *testing.T, pw string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(b)
}

func newTestHandler(t *testing.T, profiles ProfileLookup) (*Handler, *loginFormData) {
	t.Helper()
	logger := zap.NewNop()
	sm, err := auth.NewSessionManager("test-session-key-for-testing-only-32", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	h := NewHandler(profiles, sm, uierrors.NewErrorLogger(logger), logger)

	got := &loginFormData{}
	h.render = func(w http.ResponseWriter, _ *http.Request, name string, data any) {
		if name != "login" {
			t.Errorf("template: got %q, want login", name)
		}
		*got = data.(loginFormData)
	}
	return h, got
}

func school(t *testing.T) *fakeProfiles {
	return &fakeProfiles{byEmail: map[string]models.Profile{
		"teacher@school.test": {ID: "t1", Email: "teacher@school.test", Role: models.RoleTeacher, IsActive: true, PasswordHash: hash(t, "chalkboard")},
		"gone@school.test":    {ID: "g1", Email: "gone@school.test", Role: models.RoleParent, IsActive: false, PasswordHash: hash(t, "chalkboard")},
	}}
}

func post(form url.Values, target string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleLoginPost_Success(t *testing.T) {
	h, _ := newTestHandler(t, school(t))

	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, post(url.Values{"email": {" Teacher@School.test "}, "password": {"chalkboard"}}, "/login"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location: got %q, want /dashboard", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie")
	}
}

func TestHandleLoginPost_HonoursReturn(t *testing.T) {
	h, _ := newTestHandler(t, school(t))

	tests := []struct {
		ret  string
		want string
	}{
		{"/dashboard?tab=classes", "/dashboard?tab=classes"},
		{"//evil.example/", "/dashboard"},
		{"/logout", "/dashboard"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.HandleLoginPost(rec, post(url.Values{
			"email": {"teacher@school.test"}, "password": {"chalkboard"}, "return": {tt.ret},
		}, "/login"))
		if loc := rec.Header().Get("Location"); loc != tt.want {
			t.Errorf("return %q: Location got %q, want %q", tt.ret, loc, tt.want)
		}
	}
}

func TestHandleLoginPost_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"missing password", "teacher@school.test", "", msgMissing},
		{"bad email", "not-an-email", "chalkboard", msgInvalid},
		{"unknown email", "nobody@school.test", "chalkboard", msgInvalid},
		{"wrong password", "teacher@school.test", "whiteboard", msgInvalid},
		{"inactive", "gone@school.test", "chalkboard", msgInactive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, got := newTestHandler(t, school(t))

			rec := httptest.NewRecorder()
			h.HandleLoginPost(rec, post(url.Values{"email": {tt.email}, "password": {tt.password}}, "/login"))

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want 401", rec.Code)
			}
			if got.Error != tt.want {
				t.Errorf("error: got %q, want %q", got.Error, tt.want)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("no session cookie expected on failure")
			}
		})
	}
}

func TestHandleLoginPost_StoreError(t *testing.T) {
	h, _ := newTestHandler(t, &fakeProfiles{err: errors.New("connection reset")})

	req := post(url.Values{"email": {"teacher@school.test"}, "password": {"chalkboard"}}, "/login")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleLoginPost(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}

func TestServeLogin_KeepsReturn(t *testing.T) {
	h, got := newTestHandler(t, school(t))

	h.ServeLogin(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/login?return=/dashboard", nil))

	if got.ReturnURL != "/dashboard" {
		t.Errorf("ReturnURL: got %q", got.ReturnURL)
	}
}

func TestHandleLoginPost_Throttled(t *testing.T) {
	h, got := newTestHandler(t, school(t))

	var rec *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		rec = httptest.NewRecorder()
		h.HandleLoginPost(rec, post(url.Values{"email": {"teacher@school.test"}, "password": {"whiteboard"}}, "/login"))
	}

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status: got %d, want 429", rec.Code)
	}
	if got.Error != ratelimit.MsgTooManyForAccount {
		t.Errorf("error: got %q", got.Error)
	}
}
