// internal/app/features/products/common.go
package products

import (
	"html/template"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

// renderNewForm populates the common chrome for the New Product page
// and renders the form. Callers pass a partially-filled VM (to echo
// user input back on validation errors) and an optional error message.
func (h *Handler) renderNewForm(w http.ResponseWriter, r *http.Request, vm productFormVM, errMsg string) {
	vm.BaseVM = viewdata.NewBaseVM(r, "New Product", "/products")
	if len(vm.Specs) == 0 {
		vm.Specs = []specRow{{}}
	}
	if errMsg != "" {
		vm.Error = template.HTML(template.HTMLEscapeString(errMsg))
	}
	templates.Render(w, r, "product_new", vm)
}

func (h *Handler) renderEditForm(w http.ResponseWriter, r *http.Request, vm productFormVM, errMsg string) {
	vm.BaseVM = viewdata.NewBaseVM(r, "Edit Product", "/products")
	if len(vm.Specs) == 0 {
		vm.Specs = []specRow{{}}
	}
	if errMsg != "" {
		vm.Error = template.HTML(template.HTMLEscapeString(errMsg))
	}
	templates.Render(w, r, "product_edit", vm)
}

// formVM captures the raw submitted fields so a failed validation can
// re-render the form with the user's input intact.
func formVM(r *http.Request) productFormVM {
	return productFormVM{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		PriceStr:    strings.TrimSpace(r.FormValue("price")),
		DiscountStr: strings.TrimSpace(r.FormValue("discount")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		ImageURL:    strings.TrimSpace(r.FormValue("image_url")),
		StockStr:    strings.TrimSpace(r.FormValue("stock")),
		Specs:       specRows(r),
	}
}

// specRows pairs the parallel spec_key/spec_value form arrays. Rows
// where both sides are blank are dropped.
func specRows(r *http.Request) []specRow {
	keys := r.Form["spec_key"]
	vals := r.Form["spec_value"]

	rows := make([]specRow, 0, len(keys))
	for i, k := range keys {
		v := ""
		if i < len(vals) {
			v = strings.TrimSpace(vals[i])
		}
		k = strings.TrimSpace(k)
		if k == "" && v == "" {
			continue
		}
		rows = append(rows, specRow{Key: k, Value: v})
	}
	return rows
}

// toProduct converts the submitted form VM into a product mutation.
// The second return value is a user-facing validation message; empty
// means the conversion succeeded.
func toProduct(vm productFormVM) (models.Product, string) {
	var p models.Product

	if vm.Title == "" {
		return p, "Title is required."
	}
	p.Title = vm.Title
	p.Description = vm.Description
	p.Category = vm.Category

	if vm.ImageURL != "" &&
		!urlutil.IsValidAbsHTTPURL(vm.ImageURL) && !strings.HasPrefix(vm.ImageURL, "/static/") {
		return p, "Image URL must be an absolute http(s) URL or a /static/ path."
	}
	p.ImageURL = vm.ImageURL

	price, err := strconv.ParseFloat(vm.PriceStr, 64)
	if err != nil || price < 0 {
		return p, "Price must be a non-negative number."
	}
	p.Price = price

	if vm.DiscountStr != "" {
		d, err := strconv.ParseFloat(vm.DiscountStr, 64)
		if err != nil || d < 0 || d > 100 {
			return p, "Discount must be a percentage between 0 and 100."
		}
		p.Discount = &d
	}

	if vm.StockStr != "" {
		n, err := strconv.Atoi(vm.StockStr)
		if err != nil || n < 0 {
			return p, "Stock must be a non-negative whole number."
		}
		p.Stock = n
	}

	if len(vm.Specs) > 0 {
		specs := make(map[string]string, len(vm.Specs))
		for _, row := range vm.Specs {
			if row.Key == "" {
				return p, "Every specification row needs a name."
			}
			specs[row.Key] = row.Value
		}
		p.Specifications = specs
	}

	return p, ""
}

// vmFromProduct fills the form VM from a stored product for the edit
// screen.
func vmFromProduct(p models.Product) productFormVM {
	vm := productFormVM{
		ProductID:   p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		PriceStr:    strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		StockStr:    strconv.Itoa(p.Stock),
	}
	if p.Discount != nil {
		vm.DiscountStr = strconv.FormatFloat(*p.Discount, 'f', -1, 64)
	}
	for k, v := range p.Specifications {
		vm.Specs = append(vm.Specs, specRow{Key: k, Value: v})
	}
	// Map iteration order is random; sort so the editor is stable.
	sort.Slice(vm.Specs, func(i, j int) bool { return vm.Specs[i].Key < vm.Specs[j].Key })
	return vm
}
