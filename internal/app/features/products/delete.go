// internal/app/features/products/delete.go
package products

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	productstore "github.com/oniumlabs/oniumadmin/internal/app/store/products"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete removes a product from the catalog. Existing order
// items keep their title/price snapshot, so past orders still render.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad product id", err, "Invalid product ID.", "/products")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := productstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete product failed", err, "Unable to delete product.", "/products")
		return
	}

	// HTMX flow: redirect via HX-Redirect
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/products")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
