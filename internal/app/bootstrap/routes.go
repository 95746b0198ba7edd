// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	authgooglefeature "github.com/oniumlabs/oniumadmin/internal/app/features/authgoogle"
	customersfeature "github.com/oniumlabs/oniumadmin/internal/app/features/customers"
	dashboardfeature "github.com/oniumlabs/oniumadmin/internal/app/features/dashboard"
	dealsfeature "github.com/oniumlabs/oniumadmin/internal/app/features/deals"
	errorsfeature "github.com/oniumlabs/oniumadmin/internal/app/features/errors"
	healthfeature "github.com/oniumlabs/oniumadmin/internal/app/features/health"
	loginfeature "github.com/oniumlabs/oniumadmin/internal/app/features/login"
	logoutfeature "github.com/oniumlabs/oniumadmin/internal/app/features/logout"
	ordersfeature "github.com/oniumlabs/oniumadmin/internal/app/features/orders"
	productsfeature "github.com/oniumlabs/oniumadmin/internal/app/features/products"
	reviewsfeature "github.com/oniumlabs/oniumadmin/internal/app/features/reviews"
	"github.com/oniumlabs/oniumadmin/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. It initializes the template
// engine, applies session middleware, and mounts the feature routers:
// login, dashboard, products, deals, orders, customers, and reviews.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads the SessionUser into context so
	// handlers can use auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(db, sessionMgr, errLog, appCfg.GoogleEnabled(), logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	googleHandler := authgooglefeature.NewHandler(db, sessionMgr,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Dashboard
	dashboardHandler := dashboardfeature.NewHandler(db, errLog, appCfg.LowStockThreshold, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Catalog and promotions
	productsHandler := productsfeature.NewHandler(db, errLog, logger)
	r.Mount("/products", productsfeature.Routes(productsHandler, sessionMgr))

	dealsHandler := dealsfeature.NewHandler(db, errLog, logger)
	r.Mount("/deals", dealsfeature.Routes(dealsHandler, sessionMgr))

	// Orders and derived customer rollups
	ordersHandler := ordersfeature.NewHandler(db, errLog, logger)
	r.Mount("/orders", ordersfeature.Routes(ordersHandler, sessionMgr))

	customersHandler := customersfeature.NewHandler(db, errLog, logger)
	r.Mount("/customers", customersfeature.Routes(customersHandler, sessionMgr))

	// Review moderation
	reviewsHandler := reviewsfeature.NewHandler(db, errLog, logger)
	r.Mount("/reviews", reviewsfeature.Routes(reviewsHandler, sessionMgr))

	// The root and any unknown path land on the dashboard, which
	// bounces to /login when signed out.
	r.Get("/", redirectToDashboard)
	r.NotFound(redirectToDashboard)

	return r, nil
}

func redirectToDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
