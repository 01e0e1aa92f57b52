// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"context"

	healthfeature "github.com/dalemusser/classment/internal/app/features/health"
	"github.com/dalemusser/classment/internal/app/features/login"
	"github.com/dalemusser/classment/internal/app/store/pgstore"
	profilestore "github.com/dalemusser/classment/internal/app/store/profiles"
	statsstore "github.com/dalemusser/classment/internal/app/store/stats"
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app. Exactly one
// backend is connected, named by Backend.
type DBDeps struct {
	Backend string

	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	PG *pgxpool.Pool
}

// profileBackend is what login and the admin bootstrap need from profiles.
type profileBackend interface {
	login.ProfileLookup
	EnsureAdmin(ctx context.Context, email, fullName, passwordHash string) (bool, error)
}

func (d DBDeps) statsSource() dashstats.Source {
	if d.Backend == BackendPostgres {
		return pgstore.NewStats(d.PG)
	}
	return statsstore.New(d.MongoDatabase)
}

func (d DBDeps) profiles() profileBackend {
	if d.Backend == BackendPostgres {
		return pgstore.NewProfiles(d.PG)
	}
	return profilestore.New(d.MongoDatabase)
}

func (d DBDeps) userFetcher() auth.UserFetcher {
	if d.Backend == BackendPostgres {
		return pgstore.NewProfiles(d.PG)
	}
	return profilestore.NewFetcher(d.MongoDatabase)
}

func (d DBDeps) pinger() healthfeature.Pinger {
	if d.Backend == BackendPostgres {
		return healthfeature.PostgresPinger(d.PG)
	}
	return healthfeature.MongoPinger(d.MongoClient)
}
