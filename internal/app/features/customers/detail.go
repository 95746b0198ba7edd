// internal/app/features/customers/detail.go
package customers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	orderstore "github.com/oniumlabs/oniumadmin/internal/app/store/orders"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/derive"
)

type detailData struct {
	viewdata.BaseVM
	Profile derive.CustomerProfile
}

// ServeDetail displays one customer's rollup with their full order
// history. The customer key is the lowercased email in the URL path.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil || strings.TrimSpace(raw) == "" {
		h.ErrLog.LogBadRequest(w, r, "bad customer email", err, "Invalid customer address.", "/customers")
		return
	}
	email := strings.ToLower(strings.TrimSpace(raw))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	all, err := orderstore.New(h.DB).AllAscending(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load orders failed", err, "A database error occurred.", "/customers")
		return
	}

	for _, p := range derive.BuildCustomerProfiles(all) {
		if p.Email == email {
			templates.Render(w, r, "customer_detail", detailData{
				BaseVM:  viewdata.NewBaseVM(r, p.Name, "/customers"),
				Profile: p,
			})
			return
		}
	}

	h.ErrLog.LogNotFound(w, r, "customer not found", nil, "No orders found for this customer.", "/customers")
}
