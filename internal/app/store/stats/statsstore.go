// Package statsstore answers the dashboard statistics queries against MongoDB.
package statsstore

import (
	"context"

	"github.com/dalemusser/classment/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store implements dashstats.Source over the school collections.
type Store struct {
	profiles    *mongo.Collection
	students    *mongo.Collection
	classes     *mongo.Collection
	attendance  *mongo.Collection
	assignments *mongo.Collection
	messages    *mongo.Collection
	submissions *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		profiles:    db.Collection("profiles"),
		students:    db.Collection("students"),
		classes:     db.Collection("classes"),
		attendance:  db.Collection("attendance"),
		assignments: db.Collection("assignments"),
		messages:    db.Collection("messages"),
		submissions: db.Collection("assignment_submissions"),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| school-wide counts                                                          |
*─────────────────────────────────────────────────────────────────────────────*/

// ActiveProfileRoles returns the role of every active profile.
func (s *Store) ActiveProfileRoles(ctx context.Context) ([]models.Role, error) {
	cur, err := s.profiles.Find(ctx,
		bson.M{"is_active": true},
		options.Find().SetProjection(bson.M{"_id": 0, "role": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Role
	for cur.Next(ctx) {
		var row struct {
			Role models.Role `bson:"role"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, row.Role)
	}
	return out, cur.Err()
}

func (s *Store) CountActiveStudents(ctx context.Context) (int64, error) {
	return s.students.CountDocuments(ctx, bson.M{"is_active": true})
}

func (s *Store) CountActiveClasses(ctx context.Context) (int64, error) {
	return s.classes.CountDocuments(ctx, bson.M{"is_active": true})
}

func (s *Store) CountPresentAttendance(ctx context.Context, date string) (int64, error) {
	return s.attendance.CountDocuments(ctx, bson.M{
		"attendance_date": date,
		"status":          models.AttendancePresent,
	})
}

func (s *Store) CountAssignmentsDueFrom(ctx context.Context, date string) (int64, error) {
	return s.assignments.CountDocuments(ctx, bson.M{"due_date": bson.M{"$gte": date}})
}

func (s *Store) CountUnreadMessages(ctx context.Context, recipientID string) (int64, error) {
	return s.messages.CountDocuments(ctx, bson.M{
		"recipient_id": recipientID,
		"is_read":      false,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| teacher-scoped queries                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// TeacherClasses returns the teacher's active classes ordered by name.
func (s *Store) TeacherClasses(ctx context.Context, teacherID string) ([]models.Class, error) {
	cur, err := s.classes.Find(ctx,
		bson.M{"teacher_id": teacherID, "is_active": true},
		options.Find().SetSort(bson.D{{Key: "class_name", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Class
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountStudentsInClasses counts active students enrolled in any of classIDs.
// Each student document is counted once however many ids match.
func (s *Store) CountStudentsInClasses(ctx context.Context, classIDs []string) (int64, error) {
	if len(classIDs) == 0 {
		return 0, nil
	}
	return s.students.CountDocuments(ctx, bson.M{
		"class_id":  bson.M{"$in": classIDs},
		"is_active": true,
	})
}

func (s *Store) CountTeacherAttendance(ctx context.Context, teacherID, date string) (int64, error) {
	return s.attendance.CountDocuments(ctx, bson.M{
		"teacher_id":      teacherID,
		"attendance_date": date,
	})
}

// TeacherAssignmentsDueFrom returns the earliest limit assignments due on
// or after date and the total that match.
func (s *Store) TeacherAssignmentsDueFrom(ctx context.Context, teacherID, date string, limit int) ([]models.Assignment, int64, error) {
	filter := bson.M{
		"teacher_id": teacherID,
		"due_date":   bson.M{"$gte": date},
	}

	total, err := s.assignments.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 || limit <= 0 {
		return nil, total, nil
	}

	cur, err := s.assignments.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "due_date", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Assignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// CountPendingSubmissions counts submissions that are neither graded nor
// marked. With a teacherID the count is limited to that teacher's assignments.
func (s *Store) CountPendingSubmissions(ctx context.Context, teacherID string) (int64, error) {
	// {field: nil} matches both explicit null and a missing field.
	filter := bson.M{
		"graded_at":      nil,
		"marks_obtained": nil,
	}
	if teacherID != "" {
		ids, err := s.assignments.Distinct(ctx, "_id", bson.M{"teacher_id": teacherID})
		if err != nil {
			return 0, err
		}
		if len(ids) == 0 {
			return 0, nil
		}
		filter["assignment_id"] = bson.M{"$in": ids}
	}
	return s.submissions.CountDocuments(ctx, filter)
}
