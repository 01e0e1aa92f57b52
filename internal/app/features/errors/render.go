// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/viewdata"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	renderUnauthorized(renderTemplate, w, r, backURL)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderForbidden(renderTemplate, w, r, msg, backURL)
}

func renderUnauthorized(render renderFunc, w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Sign in required", backURL),
		Status:  http.StatusUnauthorized,
		Message: "Please sign in to continue.",
	}
	data.BackURL = backURL

	w.WriteHeader(http.StatusUnauthorized)
	render(w, r, "error_page", data)
}

func renderForbidden(render renderFunc, w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Access denied", "/"),
		Status:  http.StatusForbidden,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}

	w.WriteHeader(http.StatusForbidden)
	render(w, r, "error_page", data)
}
