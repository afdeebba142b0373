package repositories

import "testing"

func TestBrowseOrderClause(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{"", "n.uploaded_at DESC"},
		{"newest", "n.uploaded_at DESC"},
		{"downloads", "n.download_count DESC"},
		{"rating", "n.id DESC"},
		{"bogus", "n.uploaded_at DESC"},
	}

	for _, tc := range cases {
		if got := BrowseOrderClause(tc.sort); got != tc.want {
			t.Errorf("BrowseOrderClause(%q) = %q, want %q", tc.sort, got, tc.want)
		}
	}
}
