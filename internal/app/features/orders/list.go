// internal/app/features/orders/list.go
package orders

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	orderstore "github.com/oniumlabs/oniumadmin/internal/app/store/orders"
	"github.com/oniumlabs/oniumadmin/internal/app/system/paging"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderRow is one row of the list: the order plus its stitched-in
// line items. StatusOptions rides along so the status-cell snippet
// can render from a row alone.
type orderRow struct {
	Order         models.Order
	Items         []models.OrderItem
	StatusOptions []models.OrderStatus
}

type listData struct {
	viewdata.BaseVM
	Q             string
	Status        string
	StatusOptions []models.OrderStatus
	Rows          []orderRow
	Page          paging.Page

	// ListQuery re-encodes the current filter state (minus the page
	// number) so pagination links and the bulk form can round-trip it.
	ListQuery string
}

// ServeList displays one page of orders, filtered by status and
// free-text search. Search matches the exact order ID or a partial,
// case-insensitive customer name. Changing any filter re-renders the
// table, which clears the bulk selection with it.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	statusParam := query.Get(r, "status")
	pageNum := paging.ParsePage(r)

	// "all" and unknown values both mean no status restriction.
	status, _ := models.ParseOrderStatus(statusParam)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := orderstore.New(h.DB)

	pageOrders, page, err := store.FindPage(ctx, status, q, pageNum)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "find orders failed", err, "A database error occurred.", "/")
		return
	}

	// Line items only for the page shown, one query for all of them.
	ids := make([]primitive.ObjectID, 0, len(pageOrders))
	for _, o := range pageOrders {
		ids = append(ids, o.ID)
	}
	itemsByOrder, err := store.ItemsForOrders(ctx, ids)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "find order items failed", err, "A database error occurred.", "/")
		return
	}

	opts := models.AllOrderStatuses()
	rows := make([]orderRow, 0, len(pageOrders))
	for _, o := range pageOrders {
		rows = append(rows, orderRow{Order: o, Items: itemsByOrder[o.ID], StatusOptions: opts})
	}

	data := listData{
		BaseVM:        viewdata.NewBaseVM(r, "Orders", "/"),
		Q:             q,
		Status:        string(status),
		StatusOptions: opts,
		Rows:          rows,
		Page:          page,
		ListQuery:     listQuery(q, string(status)),
	}

	// HTMX partial table refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "orders-table-wrap" {
		templates.RenderSnippet(w, "orders_table", data)
		return
	}

	templates.Render(w, r, "orders_list", data)
}

// PageURL builds a link to the given page with the current filters
// kept. Used by the pagination controls in the list template.
func (d listData) PageURL(page int) string {
	return listURL(d.ListQuery, page)
}

// listQuery encodes the filter state for links back into the list.
func listQuery(q, status string) string {
	v := url.Values{}
	if q != "" {
		v.Set("q", q)
	}
	if status != "" {
		v.Set("status", status)
	}
	return v.Encode()
}

// listURL builds a /orders URL carrying the filters plus a page number.
func listURL(listQuery string, page int) string {
	u := "/orders"
	sep := "?"
	if listQuery != "" {
		u += "?" + listQuery
		sep = "&"
	}
	if page > 1 {
		u += sep + "page=" + strconv.Itoa(page)
	}
	return u
}
