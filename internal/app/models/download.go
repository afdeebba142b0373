package models

import "time"

// Download is an append-only audit record of one user fetching one note.
// The note's download counter is maintained separately.
type Download struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	NoteID       int64     `json:"noteId" db:"note_id"`
	DownloadedAt time.Time `json:"downloadedAt" db:"downloaded_at"`
}
