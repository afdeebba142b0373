package models

import "time"

// Rating score bounds.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a 1-5 score plus optional feedback text, at most one row per
// (user, note) pair. Re-rating updates the existing row.
type Rating struct {
	ID        int64     `json:"id" db:"id"`
	Score     int       `json:"score" db:"score"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	UserID    int64     `json:"userId" db:"user_id"`
	NoteID    int64     `json:"noteId" db:"note_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
