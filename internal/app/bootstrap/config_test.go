// internal/app/bootstrap/config_test.go
package bootstrap

import (
	"testing"

	"go.uber.org/zap"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:          "mongodb://localhost:27017",
		MongoDatabase:     "onium",
		SessionKey:        "0123456789abcdef0123456789abcdef",
		SessionName:       "oniumadmin-session",
		BaseURL:           "http://localhost:3000",
		LowStockThreshold: 5,
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), zap.NewNop()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected an error for a malformed Mongo URI")
	}
}

func TestValidateConfig_GoogleHalfConfigured(t *testing.T) {
	cfg := validAppConfig()
	cfg.GoogleClientID = "client-id-without-secret"

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected an error when only one Google OAuth value is set")
	}
}

func TestValidateConfig_InitialAdminHalfConfigured(t *testing.T) {
	cfg := validAppConfig()
	cfg.InitialAdminEmail = "admin@example.com"

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected an error when the initial admin has no password")
	}
}

func TestValidateConfig_LowStockThresholdTooLow(t *testing.T) {
	cfg := validAppConfig()
	cfg.LowStockThreshold = 0

	if err := ValidateConfig(nil, cfg, zap.NewNop()); err == nil {
		t.Fatal("expected an error for a low_stock_threshold below 1")
	}
}

func TestGoogleEnabled(t *testing.T) {
	cfg := validAppConfig()
	if cfg.GoogleEnabled() {
		t.Fatal("GoogleEnabled with no credentials")
	}

	cfg.GoogleClientID = "id"
	cfg.GoogleClientSecret = "secret"
	if !cfg.GoogleEnabled() {
		t.Fatal("GoogleEnabled false with both credentials set")
	}
}
