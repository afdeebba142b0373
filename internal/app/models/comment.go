package models

import "time"

// Comment is free text a user attaches to a note. Create-only for end
// users; many per (user, note) pair allowed.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	Content   string    `json:"content" db:"content"`
	UserID    int64     `json:"userId" db:"user_id"`
	NoteID    int64     `json:"noteId" db:"note_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
