package profilestore_test

import (
	"errors"
	"testing"

	profilestore "github.com/dalemusser/classment/internal/app/store/profiles"
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/dalemusser/classment/internal/testutil"
)

var _ auth.UserFetcher = (*profilestore.Fetcher)(nil)

func TestGetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	p := fx.CreateProfile(ctx, "Tom Teacher", "tom@school.test", models.RoleTeacher)

	got, err := profilestore.New(db).GetByEmail(ctx, "  TOM@School.Test ")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != p.ID {
		t.Errorf("got id %q, want %q", got.ID, p.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := profilestore.New(db).GetByID(ctx, "missing")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	s := profilestore.New(db)
	created, err := s.EnsureAdmin(ctx, "Admin@School.test", "School Admin", "hash-1")
	if err != nil || !created {
		t.Fatalf("first EnsureAdmin = %v, %v; want created", created, err)
	}
	created, err = s.EnsureAdmin(ctx, "admin@school.test", "Someone Else", "hash-2")
	if err != nil || created {
		t.Fatalf("second EnsureAdmin = %v, %v; want existing", created, err)
	}

	p, err := s.GetByEmail(ctx, "admin@school.test")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if p.Role != models.RoleAdmin || !p.IsActive || p.PasswordHash != "hash-1" || p.FullName != "School Admin" {
		t.Errorf("unexpected admin %+v", p)
	}
}

func TestFetcher(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	active := fx.CreateProfile(ctx, "Pat Parent", "pat@school.test", models.RoleParent)
	inactive := fx.CreateInactiveProfile(ctx, "Old Staff", "old@school.test", models.RoleStaff)

	f := profilestore.NewFetcher(db)
	u := f.FetchUser(ctx, active.ID)
	if u == nil {
		t.Fatal("expected active profile to resolve")
	}
	if u.Role != "parent" || u.Email != "pat@school.test" || u.Name != "Pat Parent" {
		t.Errorf("unexpected session user %+v", u)
	}
	if f.FetchUser(ctx, inactive.ID) != nil {
		t.Error("expected inactive profile to be rejected")
	}
	if f.FetchUser(ctx, "missing") != nil {
		t.Error("expected unknown id to be rejected")
	}
}
