// internal/app/features/dashboard/handler_test.go
package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/oniumlabs/oniumadmin/internal/app/features/dashboard"
	uierrors "github.com/oniumlabs/oniumadmin/internal/app/features/errors"
	"github.com/oniumlabs/oniumadmin/internal/app/system/auth"
	"github.com/oniumlabs/oniumadmin/internal/domain/derive"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"github.com/oniumlabs/oniumadmin/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*dashboard.Handler, *testutil.Fixtures) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)

	return dashboard.NewHandler(db, errLog, derive.LowStockThreshold, logger), testutil.NewFixtures(t, db)
}

func TestRoutes_NonAdminRoleForbidden(t *testing.T) {
	h, _ := newTestHandler(t)

	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		24*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}

	router := dashboard.Routes(h, sm)

	viewer := testutil.AdminUser()
	viewer.Role = "viewer"
	req := testutil.NewAuthenticatedRequest("GET", "/", viewer)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/forbidden" {
		t.Fatalf("Location = %q, want /forbidden", loc)
	}
}

func TestNewHandler_ThresholdDefaultsWhenUnset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := dashboard.NewHandler(db, uierrors.NewErrorLogger(logger), 0, logger)
	if h.LowStockThreshold != derive.LowStockThreshold {
		t.Errorf("LowStockThreshold: got %d, want default %d", h.LowStockThreshold, derive.LowStockThreshold)
	}

	h = dashboard.NewHandler(db, uierrors.NewErrorLogger(logger), 12, logger)
	if h.LowStockThreshold != 12 {
		t.Errorf("LowStockThreshold: got %d, want 12", h.LowStockThreshold)
	}
}

// serve runs the handler and swallows the template-render panic; the
// recorder's status tells us whether the handler hit an error path
// (which writes a status before rendering) or made it to the page
// render (default 200).
func serve(h *dashboard.Handler, w http.ResponseWriter, r *http.Request) {
	defer func() { _ = recover() }()
	h.ServeDashboard(w, r)
}

func TestServeDashboard_EmptyDatabase(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard", testutil.AdminUser())
	rec := httptest.NewRecorder()

	serve(h, rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestServeDashboard_WithData(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateProduct(ctx, "Desk Lamp", 25, 3)
	fx.CreateProduct(ctx, "Bookshelf", 120, 40)
	o := fx.CreateOrder(ctx, "Maria Santos", "maria@example.com", 75, models.StatusPending)
	fx.CreateOrderItem(ctx, o.ID, "Desk Lamp", 3, 25)
	fx.CreateReview(ctx, "Sam Lee", 4, false)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/dashboard", testutil.AdminUser())
	rec := httptest.NewRecorder()

	serve(h, rec, req)

	// Handler will try to render a template which may panic without
	// initialized templates; reaching the render at all means every
	// query succeeded.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
