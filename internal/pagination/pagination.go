// Package pagination provides the pure page arithmetic used by the catalog
// search surface: total page counts, bounded navigation and the visible
// page-number window with edge ellipses.
package pagination

// windowSize is the maximum number of consecutive page numbers shown.
const windowSize = 5

// TotalPages returns max(1, ceil(total/pageSize)). A catalog with zero rows
// still has one (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Pager tracks the current page within a known page count.
type Pager struct {
	Current    int
	TotalPages int
}

// NewPager derives a pager from a result total. An out-of-range current page
// is clamped into [1, TotalPages].
func NewPager(total, pageSize, current int) Pager {
	totalPages := TotalPages(total, pageSize)
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	return Pager{Current: current, TotalPages: totalPages}
}

// Goto navigates to page p. Navigation outside [1, TotalPages] is rejected:
// the current page is retained and false is returned.
func (p *Pager) Goto(to int) bool {
	if to < 1 || to > p.TotalPages {
		return false
	}
	p.Current = to
	return true
}

// Window is the set of page numbers to render, plus whether an ellipsis (and
// a jump link to the first or last page) is needed on either edge.
type Window struct {
	Pages            []int
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// Window returns up to five consecutive page numbers centered as closely as
// possible on the current page, clamped to [1, TotalPages].
func (p Pager) Window() Window {
	max := p.TotalPages
	if max > windowSize {
		max = windowSize
	}

	start := p.Current - 2
	if start < 1 {
		start = 1
	}
	end := start + windowSize - 1
	if end > p.TotalPages {
		end = p.TotalPages
	}
	if end-start+1 < max {
		start = end - windowSize + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}

	return Window{
		Pages:            pages,
		LeadingEllipsis:  start > 1,
		TrailingEllipsis: end < p.TotalPages,
	}
}
