package dashstats

import (
	"context"

	"github.com/dalemusser/classment/internal/domain/models"
)

// AdminSource answers the school-wide queries behind the admin dashboard.
// Dates are calendar dates in models.DateLayout.
type AdminSource interface {
	// ActiveProfileRoles returns the role of every active profile.
	ActiveProfileRoles(ctx context.Context) ([]models.Role, error)
	CountActiveStudents(ctx context.Context) (int64, error)
	CountActiveClasses(ctx context.Context) (int64, error)
	// CountPresentAttendance counts attendance rows on date with status present.
	CountPresentAttendance(ctx context.Context, date string) (int64, error)
	// CountAssignmentsDueFrom counts assignments due on or after date.
	CountAssignmentsDueFrom(ctx context.Context, date string) (int64, error)
	CountUnreadMessages(ctx context.Context, recipientID string) (int64, error)
}

// TeacherSource answers the queries scoped to one teacher.
type TeacherSource interface {
	// TeacherClasses returns the active classes owned by teacherID.
	TeacherClasses(ctx context.Context, teacherID string) ([]models.Class, error)
	// CountStudentsInClasses counts distinct active students in any of classIDs.
	CountStudentsInClasses(ctx context.Context, classIDs []string) (int64, error)
	// CountTeacherAttendance counts attendance rows recorded by teacherID on date.
	CountTeacherAttendance(ctx context.Context, teacherID, date string) (int64, error)
	// TeacherAssignmentsDueFrom returns up to limit of the teacher's assignments
	// due on or after date, earliest first, plus the total number that match.
	TeacherAssignmentsDueFrom(ctx context.Context, teacherID, date string, limit int) ([]models.Assignment, int64, error)
	CountUnreadMessages(ctx context.Context, recipientID string) (int64, error)
	// CountPendingSubmissions counts submissions with neither graded_at nor
	// marks_obtained set. A non-empty teacherID limits the count to
	// submissions for that teacher's assignments.
	CountPendingSubmissions(ctx context.Context, teacherID string) (int64, error)
}

// Source is everything the Aggregator needs from a data backend.
type Source interface {
	AdminSource
	TeacherSource
}
