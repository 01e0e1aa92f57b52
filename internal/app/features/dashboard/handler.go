// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/authz"
	"github.com/dalemusser/classment/internal/app/system/dashstats"
	"github.com/dalemusser/classment/internal/app/system/timezones"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Panel states. A failed aggregation still renders, with an all-zero record.
const (
	stateReady          = "ready"
	stateReadyWithError = "ready-with-error"
)

type Handler struct {
	Stats    *dashstats.Aggregator
	Sessions *auth.SessionManager
	Log      *zap.Logger

	render        func(w http.ResponseWriter, r *http.Request, name string, data any)
	renderSnippet func(w http.ResponseWriter, name string, data any)
}

func NewHandler(stats *dashstats.Aggregator, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Stats:    stats,
		Sessions: sm,
		Log:      logger,
		render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
		renderSnippet: func(w http.ResponseWriter, name string, data any) {
			templates.RenderSnippet(w, name, data)
		},
	}
}

// zoneLabel names the zone the panel's "today" belongs to.
func (h *Handler) zoneLabel() string {
	return timezones.Label(h.Stats.Location().String())
}

// ServeDashboard picks the dashboard for the viewer's role. Roles without
// a dashboard go back to the home page.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	viewer, ok := authz.Viewer(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch viewer.Role {
	case models.RoleAdmin:
		h.ServeAdmin(w, r)
	case models.RoleTeacher:
		h.ServeTeacher(w, r)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// ServePanel re-renders only the statistics panel. It backs the
// "Refresh Data" button.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	viewer, _ := authz.Viewer(r)

	switch viewer.Role {
	case models.RoleAdmin:
		h.renderSnippet(w, "dashboard_admin_refresh", h.adminPanel(r, viewer))
	case models.RoleTeacher:
		h.renderSnippet(w, "dashboard_teacher_refresh", h.teacherPanel(r, viewer))
	default:
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	}
}
