package models

import (
	"errors"
	"testing"

	"github.com/edunotes/edunotes/internal/pkg/apperrors"
)

func TestNewNoteStartsPending(t *testing.T) {
	note, err := NewNote("Calculus Summary", "chapters 1-3", "abc.pdf", "calc.pdf", 1024, 3, 7, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.IsApproved {
		t.Fatalf("new note must start unapproved")
	}
	if note.DownloadCount != 0 {
		t.Fatalf("new note must start with zero downloads, got %d", note.DownloadCount)
	}
	if note.Title != "Calculus Summary" {
		t.Fatalf("unexpected title %q", note.Title)
	}
}

func TestNewNoteTrimsFields(t *testing.T) {
	note, err := NewNote("  Physics I  ", "  lab notes  ", "abc.pdf", "phy.pdf", 10, 1, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if note.Title != "Physics I" || note.Description != "lab notes" {
		t.Fatalf("fields not trimmed: %q / %q", note.Title, note.Description)
	}
}

func TestNewNoteRejectsSemesterOutOfRange(t *testing.T) {
	for _, semester := range []int{0, -1, 9, 100} {
		_, err := NewNote("title", "", "abc.pdf", "a.pdf", 10, semester, 1, 1)
		if !errors.Is(err, apperrors.ErrInvalidSemester) {
			t.Fatalf("semester %d: expected ErrInvalidSemester, got %v", semester, err)
		}
	}
}

func TestNewNoteRejectsMissingFields(t *testing.T) {
	if _, err := NewNote("   ", "", "abc.pdf", "a.pdf", 10, 1, 1, 1); err == nil {
		t.Fatalf("expected error for blank title")
	}
	if _, err := NewNote("title", "", "", "a.pdf", 10, 1, 1, 1); err == nil {
		t.Fatalf("expected error for missing stored filename")
	}
	if _, err := NewNote("title", "", "abc.pdf", "a.pdf", 10, 1, 0, 1); err == nil {
		t.Fatalf("expected error for missing author")
	}
	if _, err := NewNote("title", "", "abc.pdf", "a.pdf", 10, 1, 1, 0); err == nil {
		t.Fatalf("expected error for missing subject")
	}
}
