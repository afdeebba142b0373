package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 12)
	if offset != 0 || limit != 12 {
		t.Fatalf("page 1: got offset=%d limit=%d", offset, limit)
	}

	offset, limit = CalculateOffsetLimit(3, 12)
	if offset != 24 || limit != 12 {
		t.Fatalf("page 3: got offset=%d limit=%d", offset, limit)
	}

	offset, limit = CalculateOffsetLimit(0, 0)
	if offset != 0 || limit != BrowsePageSize {
		t.Fatalf("defaults: got offset=%d limit=%d", offset, limit)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 1, 12)
	if info.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 25 items, got %d", info.TotalPages)
	}
	if info.TotalItems != 25 {
		t.Fatalf("expected 25 total items, got %d", info.TotalItems)
	}

	info = NewPaginationInfo(0, 1, 12)
	if info.TotalPages != 1 {
		t.Fatalf("empty result on page 1 should report a single page, got %d", info.TotalPages)
	}

	// Requesting a page past the end clamps the current page.
	info = NewPaginationInfo(5, 9, 12)
	if info.CurrentPage != 1 {
		t.Fatalf("expected current page clamped to 1, got %d", info.CurrentPage)
	}
}
