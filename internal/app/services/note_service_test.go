package services

import (
	"testing"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/repositories"
)

func noteDetails(authorID int64, approved bool) *repositories.NoteDetails {
	return &repositories.NoteDetails{
		Note: models.Note{UserID: authorID, IsApproved: approved},
	}
}

func TestCanView(t *testing.T) {
	const authorID = int64(7)

	cases := []struct {
		name     string
		approved bool
		viewerID int64
		isAdmin  bool
		want     bool
	}{
		{"approved note, anonymous viewer", true, 0, false, true},
		{"approved note, unrelated viewer", true, 42, false, true},
		{"pending note, author", false, authorID, false, true},
		{"pending note, admin", false, 42, true, true},
		{"pending note, unrelated viewer", false, 42, false, false},
		{"pending note, anonymous viewer", false, 0, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := noteDetails(authorID, tc.approved)
			if got := canView(d, tc.viewerID, tc.isAdmin); got != tc.want {
				t.Errorf("canView(approved=%v, viewer=%d, admin=%v) = %v, want %v",
					tc.approved, tc.viewerID, tc.isAdmin, got, tc.want)
			}
		})
	}
}

func TestDownloadableRequiresApproval(t *testing.T) {
	const authorID = int64(7)

	if !downloadable(noteDetails(authorID, true)) {
		t.Error("approved note should be downloadable")
	}
	// The author can preview a pending note through the detail view but
	// cannot download it.
	if downloadable(noteDetails(authorID, false)) {
		t.Error("pending note should not be downloadable")
	}
}
