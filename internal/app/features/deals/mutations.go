// internal/app/features/deals/mutations.go
package deals

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	dealstore "github.com/oniumlabs/oniumadmin/internal/app/store/deals"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleToggle flips a banner between active and inactive. The form
// carries the desired state so a double-submit is idempotent rather
// than a blind flip.
func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad deal id", err, "Invalid deal ID.", "/deals")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/deals")
		return
	}
	active := r.FormValue("active") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := dealstore.New(h.DB).SetActive(ctx, oid, active); err != nil {
		h.ErrLog.LogServerError(w, r, "toggle deal failed", err, "Unable to update deal.", "/deals")
		return
	}

	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/deals")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/deals", http.StatusSeeOther)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad deal id", err, "Invalid deal ID.", "/deals")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := dealstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete deal failed", err, "Unable to delete deal.", "/deals")
		return
	}

	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/deals")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/deals", http.StatusSeeOther)
}
