package ui

// pager.go holds the pure client-side pagination state over a result set.
// All transitions are value-returning and free of I/O so they can be tested
// in isolation from the Bubble Tea plumbing.

import "github.com/jobdial/jobdial/internal/models"

// PageSize is the number of listing cards shown per UI page. The upstream
// fetch batch (api.UpstreamPageSize) is a separate, larger unit.
const PageSize = 10

// Pager tracks the 1-based current page over a result set of known length.
type Pager struct {
	page  int
	total int
	size  int
}

// NewPager creates a pager at page 1 over an empty result set.
func NewPager(size int) Pager {
	return Pager{page: 1, total: 0, size: size}
}

// Page returns the current 1-based page number.
func (p Pager) Page() int { return p.page }

// Total returns the number of items being paged.
func (p Pager) Total() int { return p.total }

// PageCount returns ceil(total/size), but never less than 1 so navigation
// chrome has a page to stand on even when the result set is empty.
func (p Pager) PageCount() int {
	if p.total <= 0 {
		return 1
	}
	return (p.total + p.size - 1) / p.size
}

// Bounds returns the zero-based [start, end) offsets of the current page,
// clipped to the available length. A short final page is returned as-is.
func (p Pager) Bounds() (start, end int) {
	start = (p.page - 1) * p.size
	if start > p.total {
		start = p.total
	}
	end = start + p.size
	if end > p.total {
		end = p.total
	}
	return start, end
}

// Next advances one page. No-op on the last page.
func (p Pager) Next() Pager {
	if p.page < p.PageCount() {
		p.page++
	}
	return p
}

// Prev goes back one page. No-op on page 1.
func (p Pager) Prev() Pager {
	if p.page > 1 {
		p.page--
	}
	return p
}

// Reset replaces the result-set length and returns to page 1. Used when a
// new search lands, regardless of where the user had navigated to.
func (p Pager) Reset(total int) Pager {
	p.page = 1
	p.total = total
	return p
}

// PageSlice returns the listings on the pager's current page.
func (p Pager) PageSlice(listings []models.Listing) []models.Listing {
	start, end := p.Bounds()
	return listings[start:end]
}
