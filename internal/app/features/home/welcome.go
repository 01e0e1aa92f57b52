package home

import "github.com/dalemusser/classment/internal/domain/models"

// WelcomeMessage is the greeting shown to a signed-in viewer.
func WelcomeMessage(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Welcome to your Admin Dashboard"
	case models.RoleTeacher:
		return "Welcome to your Teacher Portal"
	case models.RoleParent:
		return "Welcome to your Parent Dashboard"
	case models.RoleStaff:
		return "Welcome to your Staff Portal"
	default:
		return "Welcome to Classment"
	}
}

// RoleDescription is the line under the greeting. Unknown roles get none.
func RoleDescription(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "Manage your school operations, users, and communications."
	case models.RoleTeacher:
		return "Track attendance, manage assignments, and communicate with parents."
	case models.RoleParent:
		return "Monitor your child's progress, communicate with teachers, and stay updated."
	case models.RoleStaff:
		return "Handle administrative tasks, fee collection, and school communications."
	default:
		return ""
	}
}

// RoleBadgeClass returns the colour classes of the role badge.
func RoleBadgeClass(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "bg-destructive text-destructive-foreground"
	case models.RoleTeacher:
		return "bg-primary text-primary-foreground"
	case models.RoleParent:
		return "bg-accent text-accent-foreground"
	case models.RoleStaff:
		return "bg-warning text-warning-foreground"
	default:
		return "bg-secondary text-secondary-foreground"
	}
}

// StatusLabel renders the active flag, with the badge variant to use.
func StatusLabel(active bool) (label, variant string) {
	if active {
		return "Active", "default"
	}
	return "Inactive", "destructive"
}

// orNotSet substitutes the placeholder for an empty profile field.
func orNotSet(s string) string {
	if s == "" {
		return "Not set"
	}
	return s
}
