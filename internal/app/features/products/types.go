// internal/app/features/products/types.go
package products

import (
	"html/template"

	"github.com/oniumlabs/oniumadmin/internal/app/system/viewdata"
	"github.com/oniumlabs/oniumadmin/internal/domain/models"
)

// listData backs both the full products page and the HTMX table
// snippet re-rendered on each search keystroke.
type listData struct {
	viewdata.BaseVM
	Q     string
	Items []models.Product
	Total int64
}

// specRow is one key/value pair of the specifications editor.
type specRow struct {
	Key   string
	Value string
}

// productFormVM backs the new and edit forms. DiscountStr and the
// other string fields echo raw user input back on validation errors
// instead of the parsed values.
type productFormVM struct {
	viewdata.BaseVM
	ProductID   string
	Title       string
	Description string
	PriceStr    string
	DiscountStr string
	Category    string
	ImageURL    string
	StockStr    string
	Specs       []specRow
	Error       template.HTML
}
