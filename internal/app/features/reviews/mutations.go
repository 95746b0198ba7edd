// internal/app/features/reviews/mutations.go
package reviews

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	reviewstore "github.com/oniumlabs/oniumadmin/internal/app/store/reviews"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleApprove sets a review's approval flag. The form carries the
// desired state so approving and revoking share one handler.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad review id", err, "Invalid review ID.", "/reviews")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/reviews")
		return
	}
	approved := r.FormValue("approved") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := reviewstore.New(h.DB).SetApproved(ctx, oid, approved); err != nil {
		h.ErrLog.LogServerError(w, r, "set review approval failed", err, "Unable to update review.", "/reviews")
		return
	}

	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/reviews")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/reviews", http.StatusSeeOther)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "bad review id", err, "Invalid review ID.", "/reviews")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := reviewstore.New(h.DB).Delete(ctx, oid); err != nil {
		h.ErrLog.LogServerError(w, r, "delete review failed", err, "Unable to delete review.", "/reviews")
		return
	}

	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/reviews")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/reviews", http.StatusSeeOther)
}
