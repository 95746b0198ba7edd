// internal/app/features/reviews/list.go
package reviews

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	reviewstore "github.com/oniumlabs/oniumadmin/internal/app/store/reviews"
	"github.com/oniumlabs/oniumadmin/internal/app/system/htmlsanitize"
	"github.com/oniumlabs/oniumadmin/internal/app/system/timeouts"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

// reviewRow pairs a review with its comment rendered as sanitized
// HTML, so basic formatting in comments survives display.
type reviewRow struct {
	models.Review
	CommentHTML template.HTML
}

func rowsFor(reviews []models.Review) []reviewRow {
	rows := make([]reviewRow, 0, len(reviews))
	for _, rv := range reviews {
		rows = append(rows, reviewRow{
			Review:      rv,
			CommentHTML: htmlsanitize.SanitizeHTML(rv.Comment),
		})
	}
	return rows
}

type listData struct {
	viewdata.BaseVM
	Reviews    []reviewRow
	Unapproved int64
}

// ServeList displays every review, newest first, with approval
// controls.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := reviewstore.New(h.DB)

	all, err := store.All(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "find reviews failed", err, "A database error occurred.", "/")
		return
	}

	unapproved, err := store.CountUnapproved(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count unapproved reviews failed", err, "A database error occurred.", "/")
		return
	}

	templates.Render(w, r, "reviews_list", listData{
		BaseVM:     viewdata.NewBaseVM(r, "Reviews", "/"),
		Reviews:    rowsFor(all),
		Unapproved: unapproved,
	})
}
