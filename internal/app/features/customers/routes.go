// internal/app/features/customers/routes.go
package customers

import (
	"github.com/go-chi/chi/v5"
	"github.com/oniumlabs/oniumadmin/internal/app/system/auth"
)

// Routes mounts the customer rollup routes (typically at "/customers").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn, sm.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/{email}", h.ServeDetail)
	})

	return r
}
