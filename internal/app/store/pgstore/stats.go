package pgstore

import (
	"context"

	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Stats implements dashstats.Source over PostgreSQL.
type Stats struct {
	pool *pgxpool.Pool
}

func NewStats(pool *pgxpool.Pool) *Stats {
	return &Stats{pool: pool}
}

func (s *Stats) count(ctx context.Context, sql string, args ...any) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Stats) ActiveProfileRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := s.pool.Query(ctx, `SELECT role FROM profiles WHERE is_active`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Role, error) {
		var r string
		err := row.Scan(&r)
		return models.Role(r), err
	})
}

func (s *Stats) CountActiveStudents(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM students WHERE is_active`)
}

func (s *Stats) CountActiveClasses(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM classes WHERE is_active`)
}

func (s *Stats) CountPresentAttendance(ctx context.Context, date string) (int64, error) {
	return s.count(ctx,
		`SELECT COUNT(*) FROM attendance WHERE attendance_date = $1 AND status = $2`,
		date, models.AttendancePresent)
}

func (s *Stats) CountAssignmentsDueFrom(ctx context.Context, date string) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM assignments WHERE due_date >= $1`, date)
}

func (s *Stats) CountUnreadMessages(ctx context.Context, recipientID string) (int64, error) {
	return s.count(ctx,
		`SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND NOT is_read`, recipientID)
}

func (s *Stats) TeacherClasses(ctx context.Context, teacherID string) ([]models.Class, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, class_name, grade_level, section, teacher_id, is_active, created_at
		FROM classes
		WHERE teacher_id = $1 AND is_active
		ORDER BY class_name, id`, teacherID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Class, error) {
		var c models.Class
		err := row.Scan(&c.ID, &c.ClassName, &c.GradeLevel, &c.Section, &c.TeacherID, &c.IsActive, &c.CreatedAt)
		return c, err
	})
}

func (s *Stats) CountStudentsInClasses(ctx context.Context, classIDs []string) (int64, error) {
	if len(classIDs) == 0 {
		return 0, nil
	}
	return s.count(ctx,
		`SELECT COUNT(DISTINCT id) FROM students WHERE is_active AND class_id = ANY($1)`, classIDs)
}

func (s *Stats) CountTeacherAttendance(ctx context.Context, teacherID, date string) (int64, error) {
	return s.count(ctx,
		`SELECT COUNT(*) FROM attendance WHERE teacher_id = $1 AND attendance_date = $2`,
		teacherID, date)
}

func (s *Stats) TeacherAssignmentsDueFrom(ctx context.Context, teacherID, date string, limit int) ([]models.Assignment, int64, error) {
	total, err := s.count(ctx,
		`SELECT COUNT(*) FROM assignments WHERE teacher_id = $1 AND due_date >= $2`,
		teacherID, date)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || limit <= 0 {
		return nil, total, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, title, subject, COALESCE(class_id, ''), teacher_id, due_date, total_marks
		FROM assignments
		WHERE teacher_id = $1 AND due_date >= $2
		ORDER BY due_date, id
		LIMIT $3`, teacherID, date, limit)
	if err != nil {
		return nil, 0, err
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Assignment, error) {
		var a models.Assignment
		err := row.Scan(&a.ID, &a.Title, &a.Subject, &a.ClassID, &a.TeacherID, &a.DueDate, &a.TotalMarks)
		return a, err
	})
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *Stats) CountPendingSubmissions(ctx context.Context, teacherID string) (int64, error) {
	if teacherID == "" {
		return s.count(ctx, `
			SELECT COUNT(*) FROM assignment_submissions
			WHERE graded_at IS NULL AND marks_obtained IS NULL`)
	}
	return s.count(ctx, `
		SELECT COUNT(*) FROM assignment_submissions s
		JOIN assignments a ON a.id = s.assignment_id
		WHERE s.graded_at IS NULL AND s.marks_obtained IS NULL AND a.teacher_id = $1`, teacherID)
}
