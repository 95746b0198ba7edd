// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	uierrors "github.com/oniumlabs/oniumadmin/internal/app/features/errors"
	adminstore "github.com/oniumlabs/oniumadmin/internal/app/store/admins"
	"github.com/oniumlabs/oniumadmin/internal/app/system/auth"
	"github.com/oniumlabs/oniumadmin/internal/app/system/authutil"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB            *mongo.Database
	Log           *zap.Logger
	SessionMgr    *auth.SessionManager
	ErrLog        *uierrors.ErrorLogger
	Admins        *adminstore.Store
	GoogleEnabled bool // True if Google OAuth is configured
}

type loginFormData struct {
	viewdata.BaseVM
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	googleEnabled bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		DB:            db,
		Log:           logger,
		SessionMgr:    sessionMgr,
		ErrLog:        errLog,
		Admins:        adminstore.New(db),
		GoogleEnabled: googleEnabled,
	}
}

// ServeLogin handles GET /login. Signed-in users are bounced to the dashboard.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, signed := auth.CurrentUser(r); signed {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ret := query.Get(r, "return")

	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL:     ret,
		GoogleEnabled: h.GoogleEnabled,
	})
}

// HandleLoginPost handles POST /login: email + password against the admin
// whitelist. Failures render the same generic message whether the email is
// unknown, the password wrong, or the account Google-only, so the form does
// not leak which admins exist.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, email)
	switch {
	case err == mongo.ErrNoDocuments:
		h.renderFormWithError(w, r, "Invalid email or password.", email, returnURL)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "admin lookup failed", err, "A database error occurred.", "/login")
		return
	}

	if admin.Disabled() {
		h.Log.Warn("sign-in attempt on disabled account", zap.String("email", admin.Email))
		h.renderFormWithError(w, r, "Invalid email or password.", email, returnURL)
		return
	}

	if err := authutil.CheckPassword(admin.PasswordHash, password); err != nil {
		h.renderFormWithError(w, r, "Invalid email or password.", email, returnURL)
		return
	}

	if err := h.Admins.RecordLogin(ctx, admin.ID); err != nil {
		h.Log.Warn("record login failed", zap.Error(err))
	}

	su := auth.SessionUser{
		ID:    admin.ID.Hex(),
		Name:  admin.FullName,
		Email: admin.Email,
		Role:  "admin",
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "session save failed", err, "Could not start a session.", "/login")
		return
	}

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/dashboard"), http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, returnURL string) {
	w.WriteHeader(http.StatusUnprocessableEntity)
	templates.Render(w, r, "login", loginFormData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:         msg,
		Email:         email,
		ReturnURL:     returnURL,
		GoogleEnabled: h.GoogleEnabled,
	})
}
