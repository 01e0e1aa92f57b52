package dashstats_test

import (
	"testing"

	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/domain/models"
)

func TestCountRoles(t *testing.T) {
	roles := []models.Role{
		models.RoleTeacher,
		models.RoleTeacher,
		"Parent",
		models.RoleStaff,
		models.RoleAdmin,
		"principal",
		"",
	}

	got := dashstats.CountRoles(roles)
	want := dashstats.RoleCounts{Admins: 1, Teachers: 2, Parents: 1, Staff: 1}
	if got != want {
		t.Errorf("CountRoles() = %+v, want %+v", got, want)
	}
}

func TestCountRoles_Empty(t *testing.T) {
	if got := dashstats.CountRoles(nil); got != (dashstats.RoleCounts{}) {
		t.Errorf("CountRoles(nil) = %+v, want zero", got)
	}
}
