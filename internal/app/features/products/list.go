// internal/app/features/products/list.go
package products

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	productstore "github.com/oniumlabs/oniumadmin/internal/app/store/products"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson"
)

// ServeList displays the product catalog with live HTMX search.
// Search is a prefix match on the folded title column.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := productstore.New(h.DB)

	items, err := store.Search(ctx, q)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "find products failed", err, "A database error occurred.", "/")
		return
	}

	total, err := store.Count(ctx, bson.M{})
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "count products failed", err, "A database error occurred.", "/")
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(r, "Products", "/"),
		Q:      q,
		Items:  items,
		Total:  total,
	}

	// HTMX partial table refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "products-table-wrap" {
		templates.RenderSnippet(w, "products_table", data)
		return
	}

	templates.Render(w, r, "products_list", data)
}
