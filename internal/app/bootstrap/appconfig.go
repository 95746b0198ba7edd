// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: ports, TLS, logging and
// the like are handled by CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // secret for signing session cookies (must be strong in production)
	SessionName   string // cookie name
	SessionDomain string // cookie domain (blank means current host)
	SessionMaxAge time.Duration

	// Base URL of the admin itself, used to build OAuth callback URLs.
	BaseURL string

	// Google OAuth configuration. Both must be set for "Continue with
	// Google" to appear on the login page.
	GoogleClientID     string
	GoogleClientSecret string

	// Initial administrator seeded on first startup when the admins
	// collection is empty. Both email and password must be set for
	// seeding to run.
	InitialAdminEmail    string
	InitialAdminPassword string
	InitialAdminName     string

	// LowStockThreshold is the stock level at or below which the
	// dashboard flags a product for restocking.
	LowStockThreshold int
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c AppConfig) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
