package pgstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/normalize"
	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, full_name, email, role, avatar_url, is_active, password_hash, created_at, updated_at`

// Profiles reads and bootstraps rows of the profiles table.
type Profiles struct {
	pool *pgxpool.Pool
}

func NewProfiles(pool *pgxpool.Pool) *Profiles {
	return &Profiles{pool: pool}
}

// GetByID loads a profile. Returns models.ErrNotFound if there is none.
func (s *Profiles) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return s.queryOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// GetByEmail looks up a profile by case-insensitive email.
func (s *Profiles) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.queryOne(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1`, normalize.Email(email))
}

func (s *Profiles) queryOne(ctx context.Context, sql string, arg any) (*models.Profile, error) {
	var (
		p    models.Profile
		role string
	)
	err := s.pool.QueryRow(ctx, sql, arg).Scan(
		&p.ID, &p.FullName, &p.Email, &role, &p.AvatarURL, &p.IsActive,
		&p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	p.Role = models.Role(role)
	return &p, nil
}

// EnsureAdmin creates an active admin profile for email unless one with
// that email already exists. It reports whether a profile was created.
func (s *Profiles) EnsureAdmin(ctx context.Context, email, fullName, passwordHash string) (bool, error) {
	now := time.Now().UTC()
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO profiles (id, full_name, email, role, is_active, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6, $6)
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), normalize.Name(fullName), normalize.Email(email),
		string(models.RoleAdmin), passwordHash, now)
	if err != nil {
		var pgErr *pgconn.PgError
		// SQLSTATE 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, nil
		}
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FetchUser implements auth.UserFetcher. It returns nil if the profile is
// not found, inactive, or if any error occurs.
func (s *Profiles) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	if userID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	p, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return auth.FromProfile(*p)
}
