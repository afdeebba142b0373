package dto

import "time"

// AdminNoteFilterRequest filters the moderation list.
type AdminNoteFilterRequest struct {
	Status  string `form:"status"`  // "", "approved" or "pending"
	Subject int64  `form:"subject"` // subject id, 0 = all
	Search  string `form:"search"`
}

// AdminUserFilterRequest filters the user list.
type AdminUserFilterRequest struct {
	Status string `form:"status"` // "", "active", "blocked" or "admin"
	Search string `form:"search"`
}

// FeedbackResponse is a rating that carries a feedback comment, joined
// with the note and author for the moderation view.
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Score     int       `json:"score"`
	Comment   *string   `json:"comment,omitempty"`
	NoteID    int64     `json:"noteId"`
	NoteTitle string    `json:"noteTitle"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminDashboardResponse carries the moderation overview counters plus
// recent activity.
type AdminDashboardResponse struct {
	TotalUsers     int64              `json:"totalUsers"`
	TotalNotes     int64              `json:"totalNotes"`
	ApprovedNotes  int64              `json:"approvedNotes"`
	PendingNotes   int64              `json:"pendingNotes"`
	BlockedUsers   int64              `json:"blockedUsers"`
	TotalDownloads int64              `json:"totalDownloads"`
	TotalRatings   int64              `json:"totalRatings"`
	RecentNotes    []NoteResponse     `json:"recentNotes"`
	RecentUsers    []UserResponse     `json:"recentUsers"`
	RecentRatings  []FeedbackResponse `json:"recentRatings"`
}

// DownloadsByDay is one analytics bucket.
type DownloadsByDay struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// SubjectNoteCount counts approved notes per subject.
type SubjectNoteCount struct {
	Subject string `json:"subject"`
	Count   int64  `json:"count"`
}

// AnalyticsResponse is the admin analytics payload.
type AnalyticsResponse struct {
	DownloadsByDay    []DownloadsByDay   `json:"downloadsByDay"`
	TopNotes          []NoteResponse     `json:"topNotes"`
	ZeroDownloadNotes []NoteResponse     `json:"zeroDownloadNotes"`
	NotesBySubject    []SubjectNoteCount `json:"notesBySubject"`
}
