// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/classment/internal/app/resources"
	"github.com/dalemusser/classment/internal/app/system/authutil"
	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// shared templates, applies the dashboard time budget and creates the
// bootstrap admin profile when one is configured.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{Dashboard: appCfg.DashboardTimeout})
	t := timeouts.Current()
	logger.Info("handler timeouts",
		zap.Duration("ping", t.Ping),
		zap.Duration("short", t.Short),
		zap.Duration("dashboard", t.Dashboard),
		zap.Duration("long", t.Long))

	if appCfg.BootstrapAdminEmail != "" {
		if err := ensureAdmin(ctx, deps.profiles(), appCfg, logger); err != nil {
			return err
		}
	}
	return nil
}

type adminEnsurer interface {
	EnsureAdmin(ctx context.Context, email, fullName, passwordHash string) (bool, error)
}

// ensureAdmin creates the configured admin profile if it does not exist.
// An existing profile with that email is left untouched.
func ensureAdmin(ctx context.Context, profiles adminEnsurer, appCfg AppConfig, logger *zap.Logger) error {
	hash, err := authutil.HashPassword(appCfg.BootstrapAdminPassword)
	if err != nil {
		logger.Error("hash bootstrap admin password", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	created, err := profiles.EnsureAdmin(ctx, appCfg.BootstrapAdminEmail, appCfg.BootstrapAdminName, hash)
	if err != nil {
		logger.Error("ensure bootstrap admin", zap.String("email", appCfg.BootstrapAdminEmail), zap.Error(err))
		return err
	}
	if created {
		logger.Info("created bootstrap admin profile", zap.String("email", appCfg.BootstrapAdminEmail))
	} else {
		logger.Debug("bootstrap admin profile already exists", zap.String("email", appCfg.BootstrapAdminEmail))
	}
	return nil
}
