package home

import (
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/authz"
	"github.com/dalemusser/classment/internal/app/system/htmlsanitize"
	"github.com/dalemusser/classment/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Sessions *auth.SessionManager
	Log      *zap.Logger

	render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

func NewHandler(sm *auth.SessionManager, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Sessions: sm,
		Log:      logger,
		render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

// profileVM is the profile summary of a signed-in viewer.
type profileVM struct {
	Name          string
	Email         string
	Role          string
	RoleLabel     string
	RoleBadge     string
	AvatarURL     string
	Status        string
	StatusVariant string
}

type homeData struct {
	viewdata.BaseVM

	Welcome     string
	Description string
	Profile     *profileVM
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing or viewer welcome                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}
	if h.Sessions != nil {
		data.BaseVM = data.BaseVM.WithNotices(h.Sessions.PopFlashes(w, r)...)
	}

	role, _, _, signedIn := authz.UserCtx(r)
	data.Welcome = WelcomeMessage(role)

	if u, ok := auth.CurrentUser(r); signedIn && ok {
		status, variant := StatusLabel(u.IsActive)
		data.Description = RoleDescription(role)
		data.Profile = &profileVM{
			Name:          orNotSet(htmlsanitize.PlainText(u.Name)),
			Email:         u.Email,
			Role:          string(role),
			RoleLabel:     role.Title(),
			RoleBadge:     RoleBadgeClass(role),
			AvatarURL:     htmlsanitize.AvatarURL(u.AvatarURL),
			Status:        status,
			StatusVariant: variant,
		}
	}

	h.render(w, r, "home", data)
}
