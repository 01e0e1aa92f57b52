// internal/domain/models/role.go
package models

import "strings"

// Role is the enumerated set of profile roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
	RoleStaff   Role = "staff"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleAdmin, RoleTeacher, RoleParent, RoleStaff}

// ParseRole normalizes s and reports whether it names a known role.
// Unknown values come back as the normalized string with ok=false.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent, RoleStaff:
		return r, true
	}
	return r, false
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Title returns the role with its first letter upper-cased ("teacher" -> "Teacher").
func (r Role) Title() string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
