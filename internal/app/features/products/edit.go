// internal/app/features/products/edit.go
package products

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	productstore "github.com/oniumlabs/oniumadmin/internal/app/store/products"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad product id", err, "Invalid product ID.", "/products")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := productstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "product not found", err, "Product not found.", "/products")
		return
	}

	h.renderEditForm(w, r, vmFromProduct(p), "")
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad product id", err, "Invalid product ID.", "/products")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/products")
		return
	}

	vm := formVM(r)
	vm.ProductID = oid.Hex()
	p, msg := toProduct(vm)
	if msg != "" {
		h.renderEditForm(w, r, vm, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := productstore.New(h.DB).Update(ctx, oid, p); err != nil {
		h.ErrLog.LogServerError(w, r, "update product failed", err, "Unable to update product.", "/products")
		return
	}

	http.Redirect(w, r, "/products", http.StatusSeeOther)
}
