// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
}

type renderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct {
	render renderFunc
}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{render: renderTemplate}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	renderForbidden(h.render, w, r, "You don't have permission to view this page.", "")
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	renderUnauthorized(h.render, w, r, "")
}
