package ui

import (
	"fmt"
	"testing"

	"github.com/jobdial/jobdial/internal/models"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1}, // empty set still has one page for the chrome to stand on
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
		{30, 3},
	}

	for _, tt := range tests {
		p := NewPager(PageSize).Reset(tt.total)
		if got := p.PageCount(); got != tt.want {
			t.Errorf("PageCount() with total=%d = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		total, page        int
		wantStart, wantEnd int
	}{
		{25, 1, 0, 10},
		{25, 2, 10, 20},
		{25, 3, 20, 25}, // short final page, not an error
		{5, 1, 0, 5},
		{0, 1, 0, 0},
	}

	for _, tt := range tests {
		p := NewPager(PageSize).Reset(tt.total)
		for i := 1; i < tt.page; i++ {
			p = p.Next()
		}
		start, end := p.Bounds()
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("Bounds() total=%d page=%d = (%d, %d), want (%d, %d)",
				tt.total, tt.page, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

// TestEdgeNavigation: Prev on page 1 and Next on the last page are no-ops
func TestEdgeNavigation(t *testing.T) {
	p := NewPager(PageSize).Reset(25)

	if got := p.Prev(); got.Page() != 1 {
		t.Errorf("Prev() at page 1 moved to %d", got.Page())
	}

	p = p.Next().Next() // page 3 of 3
	if p.Page() != 3 {
		t.Fatalf("expected page 3, got %d", p.Page())
	}
	if got := p.Next(); got.Page() != 3 {
		t.Errorf("Next() at last page moved to %d", got.Page())
	}
}

// TestResetReturnsToFirstPage: a new search lands on page 1 even when the
// new set has fewer pages than where the user was
func TestResetReturnsToFirstPage(t *testing.T) {
	p := NewPager(PageSize).Reset(25).Next().Next()
	if p.Page() != 3 {
		t.Fatalf("setup failed, page = %d", p.Page())
	}

	p = p.Reset(5)
	if p.Page() != 1 {
		t.Errorf("Reset() left page at %d, want 1", p.Page())
	}
	if p.PageCount() != 1 {
		t.Errorf("PageCount() = %d, want 1", p.PageCount())
	}
}

func TestPageSlice(t *testing.T) {
	listings := make([]models.Listing, 25)
	for i := range listings {
		listings[i].Title = fmt.Sprintf("job-%d", i)
	}

	p := NewPager(PageSize).Reset(len(listings)).Next().Next()
	page := p.PageSlice(listings)

	if len(page) != 5 {
		t.Fatalf("PageSlice() returned %d records, want 5", len(page))
	}
	if page[0].Title != "job-20" || page[4].Title != "job-24" {
		t.Errorf("PageSlice() = %q..%q, want job-20..job-24", page[0].Title, page[4].Title)
	}
}
