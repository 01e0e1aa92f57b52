package navigation_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/classment/internal/app/system/navigation"
)

func TestSafeBackURL_Fallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/login", nil)
	if got := navigation.SafeBackURL(req, navigation.LoginReturn); got != "/dashboard" {
		t.Errorf("got %q, want /dashboard", got)
	}
}

func TestSafeBackURL_QueryReturn(t *testing.T) {
	req := httptest.NewRequest("GET", "/login?return="+url.QueryEscape("/dashboard?x=1"), nil)
	if got := navigation.SafeBackURL(req, navigation.LoginReturn); got != "/dashboard?x=1" {
		t.Errorf("got %q, want /dashboard?x=1", got)
	}
}

func TestSafeBackURL_RejectsExternal(t *testing.T) {
	req := httptest.NewRequest("GET", "/login?return="+url.QueryEscape("https://evil.example.com/"), nil)
	if got := navigation.SafeBackURL(req, navigation.LoginReturn); got != "/dashboard" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestSafeBackURL_ExcludedSubpath(t *testing.T) {
	req := httptest.NewRequest("GET", "/login?return=/logout", nil)
	if got := navigation.SafeBackURL(req, navigation.LoginReturn); got != "/dashboard" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestSafeBackURL_FormReturnWithPrefix(t *testing.T) {
	form := url.Values{"return": {"/dashboard"}}
	req := httptest.NewRequest("POST", "/dashboard/classes/c1/attendance", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if got := navigation.SafeBackURL(req, navigation.DashboardReturn); got != "/dashboard" {
		t.Errorf("got %q, want /dashboard", got)
	}

	form = url.Values{"return": {"/"}}
	req = httptest.NewRequest("POST", "/dashboard/classes/c1/attendance", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if got := navigation.SafeBackURL(req, navigation.DashboardReturn); got != "/dashboard" {
		t.Errorf("prefix mismatch: got %q, want fallback", got)
	}
}
