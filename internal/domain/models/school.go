// internal/domain/models/school.go
package models

import "time"

// DateLayout is the storage format of every calendar date (attendance_date,
// due_date). Dates in this layout sort lexically in chronological order.
const DateLayout = "2006-01-02"

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// Student is an enrolled pupil. ClassID links the student to one class.
type Student struct {
	ID        string    `bson:"_id" json:"id"`
	FullName  string    `bson:"full_name" json:"full_name"`
	ClassID   string    `bson:"class_id,omitempty" json:"class_id,omitempty"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Class is a teaching group owned by one teacher.
type Class struct {
	ID         string    `bson:"_id" json:"id"`
	ClassName  string    `bson:"class_name" json:"class_name"`
	GradeLevel string    `bson:"grade_level" json:"grade_level"`
	Section    string    `bson:"section" json:"section"`
	TeacherID  string    `bson:"teacher_id" json:"teacher_id"`
	IsActive   bool      `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Attendance is one student's mark for one day.
type Attendance struct {
	ID             string `bson:"_id" json:"id"`
	StudentID      string `bson:"student_id" json:"student_id"`
	ClassID        string `bson:"class_id" json:"class_id"`
	TeacherID      string `bson:"teacher_id" json:"teacher_id"`
	AttendanceDate string `bson:"attendance_date" json:"attendance_date"`
	Status         string `bson:"status" json:"status"`
}

// Assignment is homework set by a teacher.
type Assignment struct {
	ID         string `bson:"_id" json:"id"`
	Title      string `bson:"title" json:"title"`
	Subject    string `bson:"subject" json:"subject"`
	ClassID    string `bson:"class_id,omitempty" json:"class_id,omitempty"`
	TeacherID  string `bson:"teacher_id" json:"teacher_id"`
	DueDate    string `bson:"due_date" json:"due_date"`
	TotalMarks int    `bson:"total_marks" json:"total_marks"`
}

// Message is a direct message between profiles.
type Message struct {
	ID          string    `bson:"_id" json:"id"`
	SenderID    string    `bson:"sender_id" json:"sender_id"`
	RecipientID string    `bson:"recipient_id" json:"recipient_id"`
	Subject     string    `bson:"subject" json:"subject"`
	IsRead      bool      `bson:"is_read" json:"is_read"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// AssignmentSubmission is a student's hand-in. It is pending grading while
// both GradedAt and MarksObtained are unset.
type AssignmentSubmission struct {
	ID            string     `bson:"_id" json:"id"`
	AssignmentID  string     `bson:"assignment_id" json:"assignment_id"`
	StudentID     string     `bson:"student_id" json:"student_id"`
	SubmittedAt   time.Time  `bson:"submitted_at" json:"submitted_at"`
	GradedAt      *time.Time `bson:"graded_at" json:"graded_at"`
	MarksObtained *int       `bson:"marks_obtained" json:"marks_obtained"`
}
