package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/dalemusser/classment/internal/domain/models"
)

// MemStats is an in-memory dashstats.Source over plain slices. Set Fail to
// make the named method ("CountActiveStudents", "TeacherClasses", ...)
// return an error.
type MemStats struct {
	Profiles    []models.Profile
	Students    []models.Student
	Classes     []models.Class
	Attendance  []models.Attendance
	Assignments []models.Assignment
	Messages    []models.Message
	Submissions []models.AssignmentSubmission

	Fail map[string]error

	mu    sync.Mutex
	calls map[string]int
}

// Calls returns how many times the named method has been invoked.
func (m *MemStats) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

func (m *MemStats) enter(ctx context.Context, method string) error {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := m.Fail[method]; ok {
		return err
	}
	return nil
}

func (m *MemStats) ActiveProfileRoles(ctx context.Context) ([]models.Role, error) {
	if err := m.enter(ctx, "ActiveProfileRoles"); err != nil {
		return nil, err
	}
	var out []models.Role
	for _, p := range m.Profiles {
		if p.IsActive {
			out = append(out, p.Role)
		}
	}
	return out, nil
}

func (m *MemStats) CountActiveStudents(ctx context.Context) (int64, error) {
	if err := m.enter(ctx, "CountActiveStudents"); err != nil {
		return 0, err
	}
	var n int64
	for _, s := range m.Students {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *MemStats) CountActiveClasses(ctx context.Context) (int64, error) {
	if err := m.enter(ctx, "CountActiveClasses"); err != nil {
		return 0, err
	}
	var n int64
	for _, c := range m.Classes {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *MemStats) CountPresentAttendance(ctx context.Context, date string) (int64, error) {
	if err := m.enter(ctx, "CountPresentAttendance"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range m.Attendance {
		if a.AttendanceDate == date && a.Status == models.AttendancePresent {
			n++
		}
	}
	return n, nil
}

func (m *MemStats) CountAssignmentsDueFrom(ctx context.Context, date string) (int64, error) {
	if err := m.enter(ctx, "CountAssignmentsDueFrom"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range m.Assignments {
		if a.DueDate >= date {
			n++
		}
	}
	return n, nil
}

func (m *MemStats) CountUnreadMessages(ctx context.Context, recipientID string) (int64, error) {
	if err := m.enter(ctx, "CountUnreadMessages"); err != nil {
		return 0, err
	}
	var n int64
	for _, msg := range m.Messages {
		if msg.RecipientID == recipientID && !msg.IsRead {
			n++
		}
	}
	return n, nil
}

func (m *MemStats) TeacherClasses(ctx context.Context, teacherID string) ([]models.Class, error) {
	if err := m.enter(ctx, "TeacherClasses"); err != nil {
		return nil, err
	}
	var out []models.Class
	for _, c := range m.Classes {
		if c.TeacherID == teacherID && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MemStats) CountStudentsInClasses(ctx context.Context, classIDs []string) (int64, error) {
	if err := m.enter(ctx, "CountStudentsInClasses"); err != nil {
		return 0, err
	}
	want := make(map[string]bool, len(classIDs))
	for _, id := range classIDs {
		want[id] = true
	}
	seen := make(map[string]bool)
	for _, s := range m.Students {
		if s.IsActive && want[s.ClassID] {
			seen[s.ID] = true
		}
	}
	return int64(len(seen)), nil
}

func (m *MemStats) CountTeacherAttendance(ctx context.Context, teacherID, date string) (int64, error) {
	if err := m.enter(ctx, "CountTeacherAttendance"); err != nil {
		return 0, err
	}
	var n int64
	for _, a := range m.Attendance {
		if a.TeacherID == teacherID && a.AttendanceDate == date {
			n++
		}
	}
	return n, nil
}

func (m *MemStats) TeacherAssignmentsDueFrom(ctx context.Context, teacherID, date string, limit int) ([]models.Assignment, int64, error) {
	if err := m.enter(ctx, "TeacherAssignmentsDueFrom"); err != nil {
		return nil, 0, err
	}
	var out []models.Assignment
	for _, a := range m.Assignments {
		if a.TeacherID == teacherID && a.DueDate >= date {
			out = append(out, a)
		}
	}
	total := int64(len(out))
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate < out[j].DueDate })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (m *MemStats) CountPendingSubmissions(ctx context.Context, teacherID string) (int64, error) {
	if err := m.enter(ctx, "CountPendingSubmissions"); err != nil {
		return 0, err
	}
	owned := make(map[string]bool)
	for _, a := range m.Assignments {
		if a.TeacherID == teacherID {
			owned[a.ID] = true
		}
	}
	var n int64
	for _, s := range m.Submissions {
		if s.GradedAt != nil || s.MarksObtained != nil {
			continue
		}
		if teacherID != "" && !owned[s.AssignmentID] {
			continue
		}
		n++
	}
	return n, nil
}
