// internal/app/features/orders/invoice.go
package orders

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	orderstore "github.com/oniumlabs/oniumadmin/internal/app/store/orders"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type invoiceData struct {
	SiteName string
	Order    models.Order
	Items    []models.OrderItem
}

// ServeInvoice renders a printable invoice for one order. The page is
// fully self-contained (inline styles, no scripts) so it prints and
// archives cleanly outside the admin.
func (h *Handler) ServeInvoice(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad order id", err, "Invalid order ID.", "/orders")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := orderstore.New(h.DB)

	o, err := store.GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "order not found", err, "Order not found.", "/orders")
		return
	}

	items, err := store.ItemsForOrder(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find order items failed", err, "A database error occurred.", "/orders")
		return
	}

	templates.RenderSnippet(w, "order_invoice", invoiceData{
		SiteName: viewdata.SiteName,
		Order:    o,
		Items:    items,
	})
}
