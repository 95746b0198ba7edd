// Package paging implements numbered-page pagination for admin lists.
// Lists here are small enough that offset paging is fine; the page
// number is part of the URL so filtered views stay bookmarkable.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of rows shown per page in paged lists.
const PageSize = 10

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if absent or invalid.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Page holds the computed window for one page of results.
type Page struct {
	Number     int // 1-based, clamped to [1, TotalPages]
	Size       int
	Skip       int64 // offset for the query
	Limit      int64
	Total      int64 // total matching rows
	TotalPages int   // ceil(Total / Size), at least 1
	HasPrev    bool
	HasNext    bool
}

// Compute builds the page window for a total row count. TotalPages is
// ceil(total/PageSize); a page number past the end clamps to the last
// page so a stale link still renders something sensible.
func Compute(page int, total int64) Page {
	return computeWithSize(page, total, PageSize)
}

func computeWithSize(page int, total int64, size int) Page {
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Number:     page,
		Size:       size,
		Skip:       int64(page-1) * int64(size),
		Limit:      int64(size),
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// PrevPage and NextPage are clamped neighbors for pager links.
func (p Page) PrevPage() int {
	if p.Number <= 1 {
		return 1
	}
	return p.Number - 1
}

func (p Page) NextPage() int {
	if p.Number >= p.TotalPages {
		return p.TotalPages
	}
	return p.Number + 1
}

// Numbers returns the page numbers to render as links: every page when
// few, otherwise a window around the current page plus the endpoints.
// A zero entry marks an ellipsis gap.
func (p Page) Numbers() []int {
	if p.TotalPages <= 7 {
		out := make([]int, 0, p.TotalPages)
		for i := 1; i <= p.TotalPages; i++ {
			out = append(out, i)
		}
		return out
	}

	out := []int{1}
	lo, hi := p.Number-1, p.Number+1
	if lo < 2 {
		lo = 2
	}
	if hi > p.TotalPages-1 {
		hi = p.TotalPages - 1
	}
	if lo > 2 {
		out = append(out, 0)
	}
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	if hi < p.TotalPages-1 {
		out = append(out, 0)
	}
	return append(out, p.TotalPages)
}
