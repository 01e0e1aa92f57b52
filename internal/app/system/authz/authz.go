// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/app/system/normalize"
	"github.com/dalemusser/classment/internal/domain/models"
)

// UserCtx returns the user's role, name, id, and a found flag.
// If no user is present in context, or the user id is empty, it returns
// "visitor", "", "", false. A role string the app does not know is kept
// as-is (lowercased) so callers can route it to the default view.
func UserCtx(r *http.Request) (role models.Role, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || strings.TrimSpace(user.ID) == "" {
		return "visitor", "", "", false
	}
	return models.Role(normalize.Role(user.Role)), user.Name, user.ID, true
}

// Viewer builds the identity passed to the statistics aggregator.
func Viewer(r *http.Request) (dashstats.Viewer, bool) {
	role, name, id, ok := UserCtx(r)
	if !ok {
		return dashstats.Viewer{}, false
	}
	return dashstats.Viewer{ID: id, Role: role, Name: name}, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	return HasRole(r, models.RoleAdmin)
}

// IsTeacher reports whether the current request's user is a teacher.
func IsTeacher(r *http.Request) bool {
	return HasRole(r, models.RoleTeacher)
}

// HasAnyRole reports whether the current request's user has any of the given roles.
// Returns false if no user is present (i.e., not signed in).
func HasAnyRole(r *http.Request, roles ...models.Role) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == want {
			return true
		}
	}
	return false
}

// HasRole is a convenience wrapper for a single role.
func HasRole(r *http.Request, role models.Role) bool {
	return HasAnyRole(r, role)
}
