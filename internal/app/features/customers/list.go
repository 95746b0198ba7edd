// internal/app/features/customers/list.go
package customers

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	orderstore "github.com/oniumlabs/oniumadmin/internal/app/store/orders"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/derive"
)

type listData struct {
	viewdata.BaseVM
	Q        string
	Profiles []derive.CustomerProfile
	Total    int
}

// ServeList displays the derived customer rollups with live HTMX
// search over name, email, and phone. The full order history is
// re-aggregated on every request.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	all, err := orderstore.New(h.DB).AllAscending(ctx)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "load orders failed", err, "A database error occurred.", "/")
		return
	}

	profiles := derive.BuildCustomerProfiles(all)
	total := len(profiles)
	profiles = derive.FilterProfiles(profiles, q)

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Customers", "/"),
		Q:        q,
		Profiles: profiles,
		Total:    total,
	}

	// HTMX partial table refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "customers-table-wrap" {
		templates.RenderSnippet(w, "customers_table", data)
		return
	}

	templates.Render(w, r, "customers_list", data)
}
