package dto

import "time"

// --- Request DTOs ---

// CreateNoteRequest represents the multipart form fields of an upload.
// The document itself arrives as the "file" form part.
type CreateNoteRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"max=2000"`
	SubjectID   int64  `form:"subjectId" binding:"required,gt=0"`
	Semester    int    `form:"semester" binding:"required,gte=1,lte=8"`
}

// BrowseNotesRequest holds the optional browse filters. Only approved
// notes are ever returned.
type BrowseNotesRequest struct {
	Page     int    `form:"page"`
	Subject  int64  `form:"subject"`
	Semester int    `form:"semester"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

// RateNoteRequest submits or updates the caller's rating of a note.
type RateNoteRequest struct {
	Score   int    `json:"score" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

// AddCommentRequest attaches a comment to a note.
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// --- Response DTOs ---

// NoteResponse represents a note row joined with its subject, author and
// read-time average rating.
type NoteResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	OriginalFilename string    `json:"originalFilename"`
	FileSize         int64     `json:"fileSize"`
	Semester         int       `json:"semester"`
	IsApproved       bool      `json:"isApproved"`
	DownloadCount    int64     `json:"downloadCount"`
	SubjectID        int64     `json:"subjectId"`
	SubjectName      string    `json:"subjectName"`
	SubjectCode      string    `json:"subjectCode"`
	AuthorID         int64     `json:"authorId"`
	AuthorUsername   string    `json:"authorUsername"`
	AverageRating    float64   `json:"averageRating"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

// NoteListResponse is a page of notes plus pagination metadata.
type NoteListResponse struct {
	Notes      []NoteResponse `json:"notes"`
	Pagination PaginationInfo `json:"pagination"`
}

// CommentResponse represents a comment with its author's username.
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingResponse represents one rating row.
type RatingResponse struct {
	ID        int64     `json:"id"`
	Score     int       `json:"score"`
	Comment   *string   `json:"comment,omitempty"`
	UserID    int64     `json:"userId"`
	NoteID    int64     `json:"noteId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoteDetailResponse is the detail view: the note, its comments
// (newest first) and the caller's own rating if any.
type NoteDetailResponse struct {
	Note       NoteResponse      `json:"note"`
	Comments   []CommentResponse `json:"comments"`
	UserRating *RatingResponse   `json:"userRating,omitempty"`
}

// RateNoteResponse acknowledges a rating with the recomputed average,
// rounded to one decimal.
type RateNoteResponse struct {
	Message       string  `json:"message"`
	AverageRating float64 `json:"averageRating"`
}

// HomeResponse is the public landing payload.
type HomeResponse struct {
	LatestNotes    []NoteResponse `json:"latestNotes"`
	PopularNotes   []NoteResponse `json:"popularNotes"`
	TotalNotes     int64          `json:"totalNotes"`
	TotalUsers     int64          `json:"totalUsers"`
	TotalDownloads int64          `json:"totalDownloads"`
}

// DashboardResponse summarizes the calling user's uploads.
type DashboardResponse struct {
	User                   UserResponse   `json:"user"`
	Notes                  []NoteResponse `json:"notes"`
	TotalUploads           int            `json:"totalUploads"`
	ApprovedUploads        int            `json:"approvedUploads"`
	TotalDownloadsReceived int64          `json:"totalDownloadsReceived"`
}
