// internal/app/features/orders/detail.go
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

type detailData struct {
	viewdata.BaseVM
	Order         models.Order
	Items         []models.OrderItem
	StatusOptions []models.OrderStatus
}

// ServeDetail displays one order with its line items and a status
// selector.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
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

	templates.Render(w, r, "order_detail", detailData{
		BaseVM:        viewdata.NewBaseVM(r, "Order "+oid.Hex(), "/orders"),
		Order:         o,
		Items:         items,
		StatusOptions: models.AllOrderStatuses(),
	})
}
