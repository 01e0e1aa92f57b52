package indexes_test

import (
	"testing"

	"github.com/dalemusser/classment/internal/app/system/indexes"
	"github.com/dalemusser/classment/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, db *mongo.Database, coll string) map[string]bool {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(coll).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes on %s failed: %v", coll, err)
	}
	defer cur.Close(ctx)

	names := make(map[string]bool)
	for cur.Next(ctx) {
		var ix bson.M
		if err := cur.Decode(&ix); err != nil {
			continue
		}
		if name, ok := ix["name"].(string); ok {
			names[name] = true
		}
	}
	return names
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, nil); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db, nil); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesDashboardIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, nil); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	expected := map[string][]string{
		"profiles":               {"uniq_profiles_email", "idx_profiles_active_role"},
		"students":               {"idx_students_active", "idx_students_class_active"},
		"classes":                {"idx_classes_active", "idx_classes_teacher_active_name"},
		"attendance":             {"idx_attendance_date_status", "idx_attendance_teacher_date"},
		"assignments":            {"idx_assignments_due", "idx_assignments_teacher_due"},
		"messages":               {"idx_messages_recipient_read"},
		"assignment_submissions": {"idx_submissions_pending"},
	}
	for coll, names := range expected {
		got := indexNames(t, db, coll)
		for _, name := range names {
			if !got[name] {
				t.Errorf("expected index %q to exist on %s", name, coll)
			}
		}
	}
}

func TestEnsureAll_RenamesDriftedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := db.Collection("messages").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "recipient_id", Value: 1}, {Key: "is_read", Value: 1}},
		Options: options.Index().SetName("legacy_inbox"),
	})
	if err != nil {
		t.Fatalf("create legacy index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db, nil); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	got := indexNames(t, db, "messages")
	if got["legacy_inbox"] || !got["idx_messages_recipient_read"] {
		t.Errorf("indexes after reconcile = %v", got)
	}
}

func TestEnsureAll_UniqueEmailEnforced(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, nil); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	if _, err := db.Collection("profiles").InsertOne(ctx, bson.M{"_id": "a", "email": "x@school.test"}); err != nil {
		t.Fatalf("Insert profile failed: %v", err)
	}
	if _, err := db.Collection("profiles").InsertOne(ctx, bson.M{"_id": "b", "email": "x@school.test"}); err == nil {
		t.Error("expected duplicate key error for unique index on profiles.email")
	}
}
