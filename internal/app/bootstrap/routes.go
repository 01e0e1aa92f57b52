// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/classment/internal/app/features/dashboard"
	_ "github.com/dalemusser/classment/internal/app/features/dashboard/views"
	errorsfeature "github.com/dalemusser/classment/internal/app/features/errors"
	healthfeature "github.com/dalemusser/classment/internal/app/features/health"
	homefeature "github.com/dalemusser/classment/internal/app/features/home"
	_ "github.com/dalemusser/classment/internal/app/features/home/views"
	loginfeature "github.com/dalemusser/classment/internal/app/features/login"
	_ "github.com/dalemusser/classment/internal/app/features/login/views"
	logoutfeature "github.com/dalemusser/classment/internal/app/features/logout"
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/app/system/ratelimit"
	"github.com/dalemusser/classment/internal/app/system/timezones"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Classment initializes the template
// engine, applies session middleware, and mounts the home, login, logout
// and dashboard feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Fresh profile data on each request, so deactivation takes effect immediately.
	sessionMgr.SetUserFetcher(deps.userFetcher())

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	loc, err := timezones.Resolve(appCfg.SchoolTimezone)
	if err != nil {
		logger.Error("school timezone", zap.String("zone", appCfg.SchoolTimezone), zap.Error(err))
		return nil, err
	}
	stats := dashstats.New(deps.statsSource(),
		dashstats.WithLogger(logger),
		dashstats.WithLocation(loc),
		dashstats.WithAssignmentLimit(appCfg.RecentAssignmentsLimit),
		dashstats.WithScopedPendingGrading(appCfg.ScopePendingGrading),
	)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Every POST needs a CSRF token.
	r.Use(csrfMiddleware(appCfg.SessionKey, secure, logger, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("HX-Request") == "true" {
			http.Error(w, csrfExpired, http.StatusForbidden)
			return
		}
		errorsfeature.RenderForbidden(w, r, csrfExpired, "")
	}))

	healthHandler := healthfeature.NewHandler(deps.Backend, deps.pinger(), logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	homeHandler := homefeature.NewHandler(sessionMgr, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	loginHandler := loginfeature.NewHandler(deps.profiles(), sessionMgr, errLog, logger)
	loginHandler.Guard = ratelimit.NewLoginGuard(appCfg.TrustProxyHeaders)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	dashboardHandler := dashboardfeature.NewHandler(stats, sessionMgr, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	return r, nil
}
