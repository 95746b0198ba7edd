// internal/app/features/orders/status.go
package orders

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	orderstore "github.com/oniumlabs/oniumadmin/internal/app/store/orders"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// statusCellData backs the HTMX status-cell snippet. The order comes
// from the post-update read-back, so the cell always shows what the
// database actually holds, not what the browser asked for.
type statusCellData struct {
	Order         models.Order
	StatusOptions []models.OrderStatus
}

// HandleStatusUpdate changes one order's status. The write is
// confirmed by reading the updated document back and rendering from
// it; a failed write therefore re-renders the old state instead of
// leaving the display out of sync.
func (h *Handler) HandleStatusUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad order id", err, "Invalid order ID.", "/orders")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/orders")
		return
	}

	status, ok := models.ParseOrderStatus(r.FormValue("status"))
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "bad order status", nil, "Unknown order status.", "/orders")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	confirmed, err := orderstore.New(h.DB).UpdateStatus(ctx, oid, status)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "update order status failed", err, "Unable to update order status.", "/orders")
		return
	}

	h.Log.Info("order status updated",
		zap.String("order_id", oid.Hex()),
		zap.String("status", string(confirmed.Status)))

	// HTMX flow: swap in the status cell rendered from the confirmed
	// document.
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "order_status_cell", statusCellData{
			Order:         confirmed,
			StatusOptions: models.AllOrderStatuses(),
		})
		return
	}

	http.Redirect(w, r, "/orders/"+oid.Hex(), http.StatusSeeOther)
}

// HandleBulkStatus applies one status to every selected order, then
// redirects back to the filtered list on the same page. The redirect
// re-renders the table, which drops the selection; a page left past
// the end by the update clamps to the last page on render.
func (h *Handler) HandleBulkStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/orders")
		return
	}

	pageNum, err := strconv.Atoi(r.FormValue("page"))
	if err != nil || pageNum < 1 {
		pageNum = 1
	}
	backTo := listURL(listQuery(r.FormValue("q"), r.FormValue("status_filter")), pageNum)

	status, ok := models.ParseOrderStatus(r.FormValue("status"))
	if !ok {
		h.ErrLog.LogBadRequest(w, r, "bad bulk status", nil, "Unknown order status.", backTo)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(r.Form["ids"]))
	for _, hex := range r.Form["ids"] {
		oid, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			h.ErrLog.LogBadRequest(w, r, "bad order id in bulk selection", err, "Invalid order selection.", backTo)
			return
		}
		ids = append(ids, oid)
	}

	if len(ids) == 0 {
		// Nothing selected; bounce straight back.
		http.Redirect(w, r, backTo, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	modified, err := orderstore.New(h.DB).BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "bulk status update failed", err, "Unable to update the selected orders.", backTo)
		return
	}

	h.Log.Info("bulk order status update",
		zap.Int("selected", len(ids)),
		zap.Int64("modified", modified),
		zap.String("status", string(status)))

	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", backTo)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}
