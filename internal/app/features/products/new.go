// internal/app/features/products/new.go
package products

import (
	"context"
	"errors"
	"net/http"

	productstore "github.com/oniumlabs/oniumadmin/internal/app/store/products"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
)

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNewForm(w, r, productFormVM{}, "")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/products")
		return
	}

	vm := formVM(r)
	p, msg := toProduct(vm)
	if msg != "" {
		h.renderNewForm(w, r, vm, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := productstore.New(h.DB).Create(ctx, p); err != nil {
		if errors.Is(err, productstore.ErrDuplicateSlug) {
			h.renderNewForm(w, r, vm, "Could not assign a unique product link. Please try again.")
			return
		}
		h.ErrLog.LogServerError(w, r, "create product failed", err, "Unable to create product.", "/products")
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
