// internal/app/features/deals/handler_test.go
package deals_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/oniumlabs/oniumadmin/internal/app/features/deals"
	uierrors "github.com/oniumlabs/oniumadmin/internal/app/features/errors"
	dealstore "github.com/oniumlabs/oniumadmin/internal/app/store/deals"
	"github.com/oniumlabs/oniumadmin/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*deals.Handler, *testutil.Fixtures) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	h := deals.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db)
}

func postForm(target string, form url.Values, user testutil.TestUser) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, user)
}

func TestHandleCreate_AppendsToRotation(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateDeal(ctx, "https://cdn.example.com/spring.png", 1, true)

	form := url.Values{}
	form.Set("image_url", "https://cdn.example.com/summer.png")
	form.Set("is_active", "1")

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, postForm("/deals", form, testutil.AdminUser()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	all, err := dealstore.New(fx.DB()).All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("deal count = %d, want 2", len(all))
	}
	if got := all[1].OrderPosition; got != 2 {
		t.Fatalf("new deal position = %d, want 2", got)
	}
}

func TestHandleCreate_MissingImage(t *testing.T) {
	h, fx := newTestHandler(t)

	form := url.Values{}
	form.Set("link_url", "https://example.com/sale")

	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without
	// initialized templates.
	func() {
		defer func() { _ = recover() }()
		h.HandleCreate(rec, postForm("/deals", form, testutil.AdminUser()))
	}()

	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected the form to be re-rendered, got a redirect")
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()
	all, _ := dealstore.New(fx.DB()).All(ctx)
	if len(all) != 0 {
		t.Fatalf("deal count = %d, want 0", len(all))
	}
}

func TestHandleToggle(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fx.CreateDeal(ctx, "https://cdn.example.com/spring.png", 1, true)

	form := url.Values{}
	form.Set("active", "false")

	req := postForm("/deals/"+d.ID.Hex()+"/toggle", form, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", d.ID.Hex())

	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	got, err := dealstore.New(fx.DB()).GetByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.IsActive {
		t.Fatal("deal still active after toggle")
	}
}

func TestHandleDelete(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fx.CreateDeal(ctx, "https://cdn.example.com/spring.png", 1, true)

	req := httptest.NewRequest(http.MethodPost, "/deals/"+d.ID.Hex()+"/delete", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	req = testutil.WithChiURLParam(req, "id", d.ID.Hex())

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	all, _ := dealstore.New(fx.DB()).All(ctx)
	if len(all) != 0 {
		t.Fatalf("deal count after delete = %d, want 0", len(all))
	}
}
