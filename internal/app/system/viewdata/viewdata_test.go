package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/notify"
	"github.com/dalemusser/classment/internal/app/system/viewdata"
)

func TestNewBaseVM_Visitor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	vm := viewdata.NewBaseVM(req, "Welcome", "/")

	if vm.IsLoggedIn {
		t.Error("expected visitor")
	}
	if vm.Role != "" || vm.UserName != "" {
		t.Errorf("unexpected user fields role=%q name=%q", vm.Role, vm.UserName)
	}
	if vm.SiteName != viewdata.SiteName || vm.Title != "Welcome" {
		t.Errorf("unexpected page fields %+v", vm)
	}
}

func TestNewBaseVM_SignedIn(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:        "t1",
		Name:      "<b>Ms. Rivera</b>",
		Role:      "Teacher",
		AvatarURL: "javascript:alert(1)",
	})
	vm := viewdata.NewBaseVM(req, "Dashboard", "/")

	if !vm.IsLoggedIn || vm.Role != "teacher" {
		t.Errorf("IsLoggedIn=%v Role=%q", vm.IsLoggedIn, vm.Role)
	}
	if vm.UserName != "Ms. Rivera" {
		t.Errorf("UserName = %q, want markup stripped", vm.UserName)
	}
	if vm.AvatarURL != "" {
		t.Errorf("AvatarURL = %q, want unsafe URL dropped", vm.AvatarURL)
	}
	if vm.CurrentPath != "/dashboard" {
		t.Errorf("CurrentPath = %q", vm.CurrentPath)
	}
}

func TestWithNotices(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	base := viewdata.NewBaseVM(req, "Welcome", "/")
	vm := base.WithNotices(notify.Error("boom"))

	if len(vm.Notices) != 1 || vm.Notices[0].Variant != notify.Destructive {
		t.Errorf("Notices = %+v", vm.Notices)
	}
	if len(base.Notices) != 0 {
		t.Error("WithNotices modified the receiver")
	}
}
