package models

import (
	"strings"
	"time"

	"github.com/edunotes/edunotes/internal/pkg/apperrors"
)

// Semester bounds for uploaded notes.
const (
	MinSemester = 1
	MaxSemester = 8
)

// Note is an uploaded document record. The blob itself lives in the storage
// collaborator under StoredFilename; OriginalFilename is display-only.
type Note struct {
	ID               int64     `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Description      string    `json:"description" db:"description"`
	StoredFilename   string    `json:"-" db:"stored_filename"`
	OriginalFilename string    `json:"originalFilename" db:"original_filename"`
	FileSize         int64     `json:"fileSize" db:"file_size"`
	Semester         int       `json:"semester" db:"semester"`
	IsApproved       bool      `json:"isApproved" db:"is_approved"`
	DownloadCount    int64     `json:"downloadCount" db:"download_count"`
	UserID           int64     `json:"userId" db:"user_id"`
	SubjectID        int64     `json:"subjectId" db:"subject_id"`
	UploadedAt       time.Time `json:"uploadedAt" db:"uploaded_at"`
}

// NewNote constructs a pending note, rejecting invalid field combinations
// up front. Notes always start unapproved with a zero download count.
func NewNote(title, description, storedFilename, originalFilename string, fileSize int64, semester int, userID, subjectID int64) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewBadRequestError("title is required")
	}
	if storedFilename == "" || originalFilename == "" {
		return nil, apperrors.NewBadRequestError("note filename is required")
	}
	if semester < MinSemester || semester > MaxSemester {
		return nil, apperrors.ErrInvalidSemester
	}
	if userID <= 0 || subjectID <= 0 {
		return nil, apperrors.NewBadRequestError("note requires an author and a subject")
	}

	return &Note{
		Title:            title,
		Description:      strings.TrimSpace(description),
		StoredFilename:   storedFilename,
		OriginalFilename: originalFilename,
		FileSize:         fileSize,
		Semester:         semester,
		IsApproved:       false,
		DownloadCount:    0,
		UserID:           userID,
		SubjectID:        subjectID,
	}, nil
}
