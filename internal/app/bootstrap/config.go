// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/dalemusser/classment/internal/app/system/authutil"
	"github.com/dalemusser/classment/internal/app/system/timezones"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"

	devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"
)

// appConfigKeys defines the configuration keys for Classment.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: CLASSMENT_MONGO_URI, CLASSMENT_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_backend", Default: BackendMongo, Desc: "Dashboard data store: 'mongo' or 'postgres'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "classment", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 5, Desc: "MongoDB min connection pool size (default: 5)"},
	{Name: "postgres_dsn", Default: "", Desc: "PostgreSQL DSN (required when data_backend is postgres)"},
	{Name: "session_key", Default: devSessionKey, Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "classment-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Use X-Forwarded-For/X-Real-IP as the client address (only behind a trusted reverse proxy)"},

	// Dashboard
	{Name: "school_timezone", Default: timezones.Default, Desc: "IANA time zone that defines 'today' for attendance and due dates"},
	{Name: "recent_assignments_limit", Default: 3, Desc: "Upcoming assignments listed on the teacher dashboard"},
	{Name: "scope_pending_grading", Default: false, Desc: "Count only submissions for the teacher's own assignments as pending grading"},
	{Name: "dashboard_timeout", Default: "10s", Desc: "Time budget for one dashboard aggregation (e.g., 10s, 2s)"},

	// Admin bootstrap
	{Name: "bootstrap_admin_email", Default: "", Desc: "Email of an admin profile to create on startup if missing"},
	{Name: "bootstrap_admin_name", Default: "Administrator", Desc: "Full name of the bootstrap admin"},
	{Name: "bootstrap_admin_password", Default: "", Desc: "Initial password of the bootstrap admin"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges .env files, config files,
// environment variables (WAFFLE_* for core, CLASSMENT_* for app) and
// flags with precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CLASSMENT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DataBackend:      appValues.String("data_backend"),
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		PostgresDSN:      appValues.String("postgres_dsn"),
		SessionKey:       appValues.String("session_key"),
		SessionName:      appValues.String("session_name"),
		SessionDomain:    appValues.String("session_domain"),

		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),

		SchoolTimezone:         appValues.String("school_timezone"),
		RecentAssignmentsLimit: appValues.Int("recent_assignments_limit"),
		ScopePendingGrading:    appValues.Bool("scope_pending_grading"),
		DashboardTimeout:       appValues.Duration("dashboard_timeout", 10*time.Second),

		BootstrapAdminEmail:    appValues.String("bootstrap_admin_email"),
		BootstrapAdminName:     appValues.String("bootstrap_admin_name"),
		BootstrapAdminPassword: appValues.String("bootstrap_admin_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Connection strings are parsed here so typos fail before any connect
// attempt.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(coreCfg.Env, appCfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(env string, appCfg AppConfig) error {
	switch appCfg.DataBackend {
	case BackendMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return errors.New("mongo_database is required")
		}
	case BackendPostgres:
		if appCfg.PostgresDSN == "" {
			return errors.New("postgres_dsn is required when data_backend is postgres")
		}
		if _, err := pgxpool.ParseConfig(appCfg.PostgresDSN); err != nil {
			return fmt.Errorf("invalid postgres_dsn: %w", err)
		}
	default:
		return fmt.Errorf("unknown data_backend %q (want %q or %q)", appCfg.DataBackend, BackendMongo, BackendPostgres)
	}

	if _, err := timezones.Resolve(appCfg.SchoolTimezone); err != nil {
		return fmt.Errorf("invalid school_timezone: %w", err)
	}
	if appCfg.RecentAssignmentsLimit < 1 {
		return fmt.Errorf("recent_assignments_limit must be at least 1, got %d", appCfg.RecentAssignmentsLimit)
	}
	if appCfg.DashboardTimeout <= 0 {
		return errors.New("dashboard_timeout must be positive")
	}

	if env == "prod" && (appCfg.SessionKey == devSessionKey || len(appCfg.SessionKey) < 32) {
		return errors.New("session_key must be set to a strong value (32+ chars) in production")
	}

	if appCfg.BootstrapAdminEmail != "" {
		if err := authutil.ValidateEmail(appCfg.BootstrapAdminEmail); err != nil {
			return fmt.Errorf("bootstrap_admin_email: %w", err)
		}
		if err := authutil.ValidatePassword(appCfg.BootstrapAdminPassword); err != nil {
			return fmt.Errorf("bootstrap_admin_password: %w", err)
		}
	}
	return nil
}
