package profilestore

import (
	"context"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/dalemusser/classment/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher implements auth.UserFetcher to load fresh profile data on each request.
type Fetcher struct {
	profiles *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{profiles: db.Collection("profiles")}
}

// FetchUser returns nil if the profile is not found, inactive, or if any
// error occurs.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	if userID == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var p models.Profile
	proj := options.FindOne().SetProjection(bson.M{
		"_id":        1,
		"full_name":  1,
		"email":      1,
		"role":       1,
		"avatar_url": 1,
		"is_active":  1,
	})
	if err := f.profiles.FindOne(ctx, bson.M{"_id": userID}, proj).Decode(&p); err != nil {
		return nil
	}
	return auth.FromProfile(p)
}
