package filestorage

import "testing"

func TestIsAllowedDocument(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"report.pdf", true},
		{"report.doc", true},
		{"report.docx", true},
		{"report.DOCX", true},
		{"Report.PDF", true},
		{"report.exe", false},
		{"report.pdf.exe", false},
		{"report", false},
		{"", false},
		{".pdf", true},
	}
	for _, c := range cases {
		if got := IsAllowedDocument(c.filename); got != c.want {
			t.Fatalf("IsAllowedDocument(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}

func TestLocalStorageFullPathRejectsTraversal(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ls.FullPath("../../etc/passwd")
	if got == "" {
		t.Fatalf("expected base-name fallback, got empty path")
	}
	if ls.Exists("../../etc/passwd") {
		t.Fatalf("traversal name should not resolve to an existing blob")
	}
}
