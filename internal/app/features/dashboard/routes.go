// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
//
// GET / dispatches on the viewer's role. The panel and JSON endpoints
// serve refreshes; attendance is teacher-only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeDashboard)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("admin", "teacher"))
		pr.Get("/panel", h.ServePanel)
		pr.Get("/stats.json", h.ServeStatsJSON)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireRole("teacher"))
		pr.Post("/classes/{classID}/attendance", h.MarkAttendance)
	})

	return r
}
