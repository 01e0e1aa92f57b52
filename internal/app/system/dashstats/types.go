package dashstats

import (
	"errors"

	"github.com/dalemusser/classment/internal/domain/models"
)

var (
	// ErrAggregationFailed is returned when any query of an aggregation fails.
	// It wraps the first underlying error.
	ErrAggregationFailed = errors.New("dashboard aggregation failed")

	// ErrNoViewer is returned when aggregation is attempted without a resolved viewer.
	ErrNoViewer = errors.New("dashboard viewer not resolved")
)

// Viewer is the signed-in profile a dashboard is built for.
type Viewer struct {
	ID   string
	Role models.Role
	Name string
}

// AdminStats is the statistics record of the admin dashboard.
type AdminStats struct {
	TotalStudents     int64 `json:"totalStudents"`
	TotalTeachers     int64 `json:"totalTeachers"`
	TotalParents      int64 `json:"totalParents"`
	TotalStaff        int64 `json:"totalStaff"`
	TodayAttendance   int64 `json:"todayAttendance"`
	TotalClasses      int64 `json:"totalClasses"`
	ActiveAssignments int64 `json:"activeAssignments"`
	UnreadMessages    int64 `json:"unreadMessages"`
}

// TeacherStats is the statistics record of the teacher dashboard.
type TeacherStats struct {
	MyClasses         int64 `json:"myClasses"`
	MyStudents        int64 `json:"myStudents"`
	TodayAttendance   int64 `json:"todayAttendance"`
	ActiveAssignments int64 `json:"activeAssignments"`
	UnreadMessages    int64 `json:"unreadMessages"`
	PendingGrading    int64 `json:"pendingGrading"`
}

// ClassSummary is the dashboard projection of a class.
type ClassSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GradeLevel string `json:"gradeLevel"`
	Section    string `json:"section"`
}

// AssignmentSummary is the dashboard projection of an assignment.
type AssignmentSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	DueDate    string `json:"dueDate"`
	TotalMarks int    `json:"totalMarks"`
}

// TeacherSnapshot is the teacher statistics record plus the owned classes
// and the upcoming assignments shown beside it.
type TeacherSnapshot struct {
	Stats             TeacherStats        `json:"stats"`
	Classes           []ClassSummary      `json:"classes"`
	RecentAssignments []AssignmentSummary `json:"recentAssignments"`
}

// EmptyTeacherSnapshot returns an all-zero snapshot with non-nil lists.
func EmptyTeacherSnapshot() TeacherSnapshot {
	return TeacherSnapshot{
		Classes:           []ClassSummary{},
		RecentAssignments: []AssignmentSummary{},
	}
}

// RoleCounts holds the number of active profiles per role.
type RoleCounts struct {
	Admins   int64
	Teachers int64
	Parents  int64
	Staff    int64
}

// CountRoles folds roles into per-role totals. Roles outside the
// enumerated set are not counted.
func CountRoles(roles []models.Role) RoleCounts {
	var rc RoleCounts
	for _, r := range roles {
		role, ok := models.ParseRole(string(r))
		if !ok {
			continue
		}
		switch role {
		case models.RoleAdmin:
			rc.Admins++
		case models.RoleTeacher:
			rc.Teachers++
		case models.RoleParent:
			rc.Parents++
		case models.RoleStaff:
			rc.Staff++
		}
	}
	return rc
}
