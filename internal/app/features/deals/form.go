// internal/app/features/deals/form.go
package deals

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

// expiresLayout matches the value format of <input type="datetime-local">.
const expiresLayout = "2006-01-02T15:04"

type dealFormVM struct {
	viewdata.BaseVM
	DealID      string
	ImageURL    string
	LinkURL     string
	PositionStr string
	IsActive    bool
	ExpiresStr  string
	Error       template.HTML
}

func (h *Handler) renderNewForm(w http.ResponseWriter, r *http.Request, vm dealFormVM, errMsg string) {
	vm.BaseVM = viewdata.NewBaseVM(r, "New Deal", "/deals")
	if errMsg != "" {
		vm.Error = template.HTML(template.HTMLEscapeString(errMsg))
	}
	templates.Render(w, r, "deal_new", vm)
}

func (h *Handler) renderEditForm(w http.ResponseWriter, r *http.Request, vm dealFormVM, errMsg string) {
	vm.BaseVM = viewdata.NewBaseVM(r, "Edit Deal", "/deals")
	if errMsg != "" {
		vm.Error = template.HTML(template.HTMLEscapeString(errMsg))
	}
	templates.Render(w, r, "deal_edit", vm)
}

func formVM(r *http.Request) dealFormVM {
	return dealFormVM{
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		LinkURL:     strings.TrimSpace(r.FormValue("link_url")),
		PositionStr: strings.TrimSpace(r.FormValue("position")),
		IsActive:    r.FormValue("is_active") != "",
		ExpiresStr:  strings.TrimSpace(r.FormValue("expires_at")),
	}
}

// toDeal converts the submitted form into a deal mutation. The second
// return value is a user-facing validation message; empty means ok.
// Position left blank means "append to the rotation" (the store picks
// the next position).
func toDeal(vm dealFormVM) (models.Deal, string) {
	var d models.Deal

	if vm.ImageURL == "" {
		return d, "Image URL is required."
	}
	d.ImageURL = vm.ImageURL
	d.LinkURL = vm.LinkURL
	d.IsActive = vm.IsActive

	if vm.PositionStr != "" {
		n, err := strconv.Atoi(vm.PositionStr)
		if err != nil || n < 0 {
			return d, "Position must be a non-negative whole number."
		}
		d.OrderPosition = n
	}

	if vm.ExpiresStr != "" {
		t, err := time.Parse(expiresLayout, vm.ExpiresStr)
		if err != nil {
			return d, "Expiry must be a valid date and time."
		}
		t = t.UTC()
		d.ExpiresAt = &t
	}

	return d, ""
}

func vmFromDeal(d models.Deal) dealFormVM {
	vm := dealFormVM{
		DealID:      d.ID.Hex(),
		ImageURL:    d.ImageURL,
		LinkURL:     d.LinkURL,
		PositionStr: strconv.Itoa(d.OrderPosition),
		IsActive:    d.IsActive,
	}
	if d.ExpiresAt != nil {
		vm.ExpiresStr = d.ExpiresAt.Format(expiresLayout)
	}
	return vm
}
