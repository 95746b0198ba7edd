// internal/app/features/errors/errorlogger.go
package errors

import (
	"fmt"
	"html"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/google/uuid"
	"github.com/oniumlabs/oniumadmin/internal/app/system/auth"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with user-facing error pages, so
// handlers report failures in one call instead of logging and rendering
// separately.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger on the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogServerError logs the error and renders a 500 page with userMsg and a
// back link. The page shows a short reference code that also appears in the
// log entry, so a user report can be matched to the stack.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	ref := uuid.New().String()[:8]
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("ref", ref),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderPageRef(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL, ref)
}

// LogBadRequest logs the problem and renders a 400 page with userMsg and a
// back link.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderPage(w, r, http.StatusBadRequest, "Invalid request", userMsg, backURL)
}

// LogNotFound logs the miss and renders a 404 page with userMsg and a back link.
func (e *ErrorLogger) LogNotFound(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderPage(w, r, http.StatusNotFound, "Not found", userMsg, backURL)
}

// HTMXLogServerError logs the error and writes a small HTML fragment for the
// HX target instead of a full page, so in-place swaps show the failure where
// the user is looking.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	ref := uuid.New().String()[:8]
	e.log.Error(logMsg,
		zap.Error(err),
		zap.String("ref", ref),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))

	if r.Header.Get("HX-Request") == "" {
		e.renderPageRef(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL, ref)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	fmt.Fprintf(w, `<div class="inline-error" role="alert">%s</div>`, html.EscapeString(userMsg))
}

func (e *ErrorLogger) renderPage(w http.ResponseWriter, r *http.Request, code int, title, userMsg, backURL string) {
	e.renderPageRef(w, r, code, title, userMsg, backURL, "")
}

func (e *ErrorLogger) renderPageRef(w http.ResponseWriter, r *http.Request, code int, title, userMsg, backURL, ref string) {
	u, signed := auth.CurrentUser(r)
	role, name := "", ""
	if signed && u != nil {
		role, name = u.Role, u.Name
	}
	if backURL == "" {
		backURL = "/"
	}

	w.WriteHeader(code)
	templates.Render(w, r, "error_message", pageData{
		Title:      title,
		IsLoggedIn: signed,
		Role:       role,
		UserName:   name,
		Message:    userMsg,
		BackURL:    backURL,
		Ref:        ref,
	})
}
