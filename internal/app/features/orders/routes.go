// internal/app/features/orders/routes.go
package orders

import (
	"github.com/go-chi/chi/v5"
	"github.com/oniumlabs/oniumadmin/internal/app/system/auth"
)

// Routes mounts the order management routes (typically at "/orders").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn, sm.RequireRole("admin"))

		// LIST (filters + HTMX table swap)
		pr.Get("/", h.ServeList)

		// BULK STATUS
		pr.Post("/bulk-status", h.HandleBulkStatus)

		// DETAIL + INVOICE
		pr.Get("/{id}", h.ServeDetail)
		pr.Get("/{id}/invoice", h.ServeInvoice)

		// SINGLE STATUS
		pr.Post("/{id}/status", h.HandleStatusUpdate)
	})

	return r
}
