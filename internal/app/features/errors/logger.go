// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/classment/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger logs a handler failure and answers the browser with a
// friendly page. The internal message and error go to the log only; the
// user sees userMsg.
type ErrorLogger struct {
	Log    *zap.Logger
	render renderFunc
}

func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger, render: renderTemplate}
}

// LogBadRequest logs at Warn and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, fields(r, err)...)
	e.page(w, r, http.StatusBadRequest, "Bad request", userMsg, backURL)
}

// LogForbidden logs at Warn and renders a 403 page.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, fields(r, err)...)
	e.page(w, r, http.StatusForbidden, "Access denied", userMsg, backURL)
}

// LogServerError logs at Error and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, fields(r, err)...)
	e.page(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

func (e *ErrorLogger) page(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backURL),
		Status:  status,
		Message: userMsg,
	}
	data.BackURL = backURL

	if r.Header.Get("HX-Request") != "" {
		http.Error(w, userMsg, status)
		return
	}
	w.WriteHeader(status)
	e.render(w, r, "error_page", data)
}

func fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	return fs
}
