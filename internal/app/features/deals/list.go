// internal/app/features/deals/list.go
package deals

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	dealstore "github.com/oniumlabs/oniumadmin/internal/app/store/deals"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

type listData struct {
	viewdata.BaseVM
	Deals []models.Deal
}

// ServeList displays the banner rotation sorted by position.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := dealstore.New(h.DB).All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find deals failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "deals_list", listData{
		BaseVM: viewdata.NewBaseVM(r, "Deals", "/"),
		Deals:  all,
	})
}
