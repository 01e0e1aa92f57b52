package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", coll, err)
	}
}

// CreateProfile inserts an active profile with the given role.
func (f *Fixtures) CreateProfile(ctx context.Context, fullName, email string, role models.Role) models.Profile {
	f.t.Helper()
	now := time.Now().UTC()
	p := models.Profile{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "profiles", p)
	return p
}

// CreateInactiveProfile inserts a deactivated profile.
func (f *Fixtures) CreateInactiveProfile(ctx context.Context, fullName, email string, role models.Role) models.Profile {
	f.t.Helper()
	now := time.Now().UTC()
	p := models.Profile{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "profiles", p)
	return p
}

// CreateClass inserts an active class owned by teacherID.
func (f *Fixtures) CreateClass(ctx context.Context, name, grade, section, teacherID string) models.Class {
	f.t.Helper()
	c := models.Class{
		ID:         uuid.NewString(),
		ClassName:  name,
		GradeLevel: grade,
		Section:    section,
		TeacherID:  teacherID,
		IsActive:   true,
		CreatedAt:  time.Now().UTC(),
	}
	f.insert(ctx, "classes", c)
	return c
}

// CreateStudent inserts a student in classID.
func (f *Fixtures) CreateStudent(ctx context.Context, fullName, classID string, active bool) models.Student {
	f.t.Helper()
	s := models.Student{
		ID:        uuid.NewString(),
		FullName:  fullName,
		ClassID:   classID,
		IsActive:  active,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "students", s)
	return s
}

// MarkAttendance inserts one attendance row.
func (f *Fixtures) MarkAttendance(ctx context.Context, studentID, classID, teacherID, date, status string) models.Attendance {
	f.t.Helper()
	a := models.Attendance{
		ID:             uuid.NewString(),
		StudentID:      studentID,
		ClassID:        classID,
		TeacherID:      teacherID,
		AttendanceDate: date,
		Status:         status,
	}
	f.insert(ctx, "attendance", a)
	return a
}

// CreateAssignment inserts an assignment due on dueDate.
func (f *Fixtures) CreateAssignment(ctx context.Context, title, subject, classID, teacherID, dueDate string, totalMarks int) models.Assignment {
	f.t.Helper()
	a := models.Assignment{
		ID:         uuid.NewString(),
		Title:      title,
		Subject:    subject,
		ClassID:    classID,
		TeacherID:  teacherID,
		DueDate:    dueDate,
		TotalMarks: totalMarks,
	}
	f.insert(ctx, "assignments", a)
	return a
}

// SendMessage inserts a message to recipientID.
func (f *Fixtures) SendMessage(ctx context.Context, senderID, recipientID, subject string, read bool) models.Message {
	f.t.Helper()
	m := models.Message{
		ID:          uuid.NewString(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Subject:     subject,
		IsRead:      read,
		CreatedAt:   time.Now().UTC(),
	}
	f.insert(ctx, "messages", m)
	return m
}

// Submit inserts a submission for assignmentID. A non-nil marks value
// records it as graded.
func (f *Fixtures) Submit(ctx context.Context, assignmentID, studentID string, marks *int) models.AssignmentSubmission {
	f.t.Helper()
	s := models.AssignmentSubmission{
		ID:            uuid.NewString(),
		AssignmentID:  assignmentID,
		StudentID:     studentID,
		SubmittedAt:   time.Now().UTC(),
		MarksObtained: marks,
	}
	if marks != nil {
		now := time.Now().UTC()
		s.GradedAt = &now
	}
	f.insert(ctx, "assignment_submissions", s)
	return s
}
