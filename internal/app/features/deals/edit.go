// internal/app/features/deals/edit.go
package deals

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	dealstore "github.com/oniumlabs/oniumadmin/internal/app/store/deals"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	h.renderNewForm(w, r, dealFormVM{IsActive: true}, "")
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/deals")
		return
	}

	vm := formVM(r)
	d, msg := toDeal(vm)
	if msg != "" {
		h.renderNewForm(w, r, vm, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := dealstore.New(h.DB).Create(ctx, d); err != nil {
		h.ErrLog.LogServerError(w, r, "create deal failed", err, "Unable to create deal.", "/deals")
		return
	}

	http.Redirect(w, r, "/deals", http.StatusSeeOther)
}

func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad deal id", err, "Invalid deal ID.", "/deals")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := dealstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "deal not found", err, "Deal not found.", "/deals")
		return
	}

	h.renderEditForm(w, r, vmFromDeal(d), "")
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad deal id", err, "Invalid deal ID.", "/deals")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/deals")
		return
	}

	vm := formVM(r)
	vm.DealID = oid.Hex()
	d, msg := toDeal(vm)
	if msg != "" {
		h.renderEditForm(w, r, vm, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := dealstore.New(h.DB).Update(ctx, oid, d); err != nil {
		h.ErrLog.LogServerError(w, r, "update deal failed", err, "Unable to update deal.", "/deals")
		return
	}

	http.Redirect(w, r, "/deals", http.StatusSeeOther)
}
