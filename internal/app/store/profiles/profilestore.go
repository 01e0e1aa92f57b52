// Package profilestore reads and bootstraps profiles in MongoDB.
package profilestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/classment/internal/app/system/normalize"
	"github.com/dalemusser/classment/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("profiles")}
}

// GetByID loads a profile. Returns models.ErrNotFound if there is none.
func (s *Store) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// GetByEmail looks up a profile by case-insensitive email.
// Returns models.ErrNotFound if there is none.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.findOne(ctx, bson.M{"email": normalize.Email(email)})
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (*models.Profile, error) {
	var p models.Profile
	if err := s.c.FindOne(ctx, filter).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// EnsureAdmin creates an active admin profile for email unless one with
// that email already exists. It reports whether a profile was created.
func (s *Store) EnsureAdmin(ctx context.Context, email, fullName, passwordHash string) (bool, error) {
	email = normalize.Email(email)
	now := time.Now().UTC()

	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$setOnInsert": models.Profile{
			ID:           uuid.NewString(),
			FullName:     normalize.Name(fullName),
			Email:        email,
			Role:         models.RoleAdmin,
			IsActive:     true,
			PasswordHash: passwordHash,
			CreatedAt:    now,
			UpdatedAt:    now,
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		// Two instances racing on the unique email index: the other one won.
		if wafflemongo.IsDup(err) {
			return false, nil
		}
		return false, err
	}
	return res.UpsertedCount > 0, nil
}
