// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/classment/internal/app/features/errors"
	"github.com/dalemusser/classment/internal/app/system/auth"
	"github.com/dalemusser/classment/internal/app/system/authutil"
	"github.com/dalemusser/classment/internal/app/system/navigation"
	"github.com/dalemusser/classment/internal/app/system/normalize"
	"github.com/dalemusser/classment/internal/app/system/ratelimit"
	"github.com/dalemusser/classment/internal/app/system/timeouts"
	"github.com/dalemusser/classment/internal/app/system/viewdata"
	"github.com/dalemusser/classment/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ProfileLookup finds the profile a sign-in names. Both backends' profile
// stores satisfy it.
type ProfileLookup interface {
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
}

type Handler struct {
	Profiles   ProfileLookup
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Guard      *ratelimit.LoginGuard
	Log        *zap.Logger

	render func(w http.ResponseWriter, r *http.Request, name string, data any)
}

const (
	msgMissing  = "Please enter your email and password."
	msgInvalid  = "Invalid email or password."
	msgInactive = "This account is inactive. Please contact an administrator."
)

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

func NewHandler(profiles ProfileLookup, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Profiles:   profiles,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Guard:      ratelimit.NewLoginGuard(false),
		Log:        logger,
		render: func(w http.ResponseWriter, r *http.Request, name string, data any) {
			templates.Render(w, r, name, data)
		},
	}
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: normalize.QueryParam(query.Get(r, "return")),
	})
}

// HandleLoginPost handles POST /login: email and password against the
// profile's bcrypt hash. Unknown email and wrong password give the same
// message.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	if email == "" || password == "" {
		h.renderFormWithError(w, r, msgMissing, email)
		return
	}
	if ok, msg := h.Guard.Check(r, email); !ok {
		h.Log.Warn("login throttled",
			zap.String("email", email),
			zap.String("client_ip", h.Guard.ClientIP(r)))
		h.renderForm(w, r, http.StatusTooManyRequests, msg, email)
		return
	}
	if err := authutil.ValidateEmail(email); err != nil {
		h.renderFormWithError(w, r, msgInvalid, email)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Profiles.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		h.Log.Info("login failed: unknown email", zap.String("email", email))
		h.renderFormWithError(w, r, msgInvalid, email)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "DB find profile", err, "A server error occurred.", "/login")
		return
	}

	if !authutil.CheckPassword(password, p.PasswordHash) {
		h.Log.Info("login failed: wrong password", zap.String("profile_id", p.ID))
		h.renderFormWithError(w, r, msgInvalid, email)
		return
	}
	if !p.IsActive {
		h.Log.Info("login refused: inactive profile", zap.String("profile_id", p.ID))
		h.renderFormWithError(w, r, msgInactive, email)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, p.ID); err != nil {
		h.ErrLog.LogServerError(w, r, "save session", err, "A server error occurred.", "/login")
		return
	}

	h.Guard.Forget(email)
	h.Log.Info("login succeeded",
		zap.String("profile_id", p.ID),
		zap.String("role", string(p.Role)))

	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.LoginReturn), http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	h.renderForm(w, r, http.StatusUnauthorized, msg, email)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, msg, email string) {
	w.WriteHeader(status)
	h.render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: r.FormValue("return"),
	})
}
