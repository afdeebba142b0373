package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/repositories"
	"github.com/edunotes/edunotes/internal/db"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
	"github.com/edunotes/edunotes/internal/pkg/auth"
	"github.com/edunotes/edunotes/internal/pkg/email"
	"github.com/edunotes/edunotes/internal/pkg/filestorage"
	"github.com/edunotes/edunotes/internal/pkg/logger"
)

const (
	dashboardRecentSize = 5
	analyticsTopSize    = 10
	analyticsWindowDays = 30
)

// AdminService implements moderation, user administration and analytics.
type AdminService struct {
	repos    *repositories.Repositories
	database *db.PostgresDB
	storage  filestorage.FileStorage
	email    email.EmailService
}

// NewAdminService creates a new AdminService.
func NewAdminService(repos *repositories.Repositories, database *db.PostgresDB, storage filestorage.FileStorage, emailService email.EmailService) *AdminService {
	return &AdminService{
		repos:    repos,
		database: database,
		storage:  storage,
		email:    emailService,
	}
}

// Dashboard assembles the moderation overview.
func (s *AdminService) Dashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	resp := &dto.AdminDashboardResponse{}

	var err error
	if resp.TotalUsers, err = s.repos.UserRepository.Count(ctx); err != nil {
		return nil, err
	}
	if resp.BlockedUsers, err = s.repos.UserRepository.CountBlocked(ctx); err != nil {
		return nil, err
	}
	if resp.TotalNotes, err = s.repos.NoteRepository.Count(ctx); err != nil {
		return nil, err
	}
	if resp.ApprovedNotes, err = s.repos.NoteRepository.CountApproved(ctx); err != nil {
		return nil, err
	}
	if resp.PendingNotes, err = s.repos.NoteRepository.CountPending(ctx); err != nil {
		return nil, err
	}
	if resp.TotalDownloads, err = s.repos.NoteRepository.SumDownloads(ctx); err != nil {
		return nil, err
	}
	if resp.TotalRatings, err = s.repos.RatingRepository.Count(ctx); err != nil {
		return nil, err
	}

	recentNotes, err := s.repos.NoteRepository.Recent(ctx, dashboardRecentSize)
	if err != nil {
		return nil, err
	}
	resp.RecentNotes = toNoteResponses(recentNotes)

	recentUsers, err := s.repos.UserRepository.Recent(ctx, dashboardRecentSize)
	if err != nil {
		return nil, err
	}
	resp.RecentUsers = make([]dto.UserResponse, 0, len(recentUsers))
	for i := range recentUsers {
		resp.RecentUsers = append(resp.RecentUsers, toUserResponse(&recentUsers[i]))
	}

	if resp.RecentRatings, err = s.repos.RatingRepository.RecentRatings(ctx, dashboardRecentSize); err != nil {
		return nil, err
	}

	return resp, nil
}

// ListNotes returns notes of any approval state for moderation.
func (s *AdminService) ListNotes(ctx context.Context, filter dto.AdminNoteFilterRequest) ([]dto.NoteResponse, error) {
	details, err := s.repos.NoteRepository.AdminList(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(details), nil
}

// ApproveNote publishes a pending note and notifies its author.
func (s *AdminService) ApproveNote(ctx context.Context, noteID int64) error {
	details, err := s.repos.NoteRepository.GetDetailsByID(ctx, noteID)
	if err != nil {
		return err
	}

	if err := s.repos.NoteRepository.Approve(ctx, noteID); err != nil {
		return err
	}

	author, err := s.repos.UserRepository.GetByID(ctx, details.UserID)
	if err != nil {
		logger.Warn().Err(err).Int64("userId", details.UserID).Msg("Approval notification skipped, author lookup failed")
		return nil
	}
	if err := s.email.SendApprovalEmail(author.Email, author.Username, details.Title); err != nil {
		logger.Warn().Err(err).Str("email", author.Email).Msg("Failed to send approval email")
	}
	return nil
}

// DeleteNote removes a note with its ratings, comments and download
// records in one transaction, then removes the stored document.
func (s *AdminService) DeleteNote(ctx context.Context, noteID int64) error {
	details, err := s.repos.NoteRepository.GetDetailsByID(ctx, noteID)
	if err != nil {
		return err
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.repos.RatingRepository.DeleteByNote(ctx, tx, noteID); err != nil {
			return err
		}
		if err := s.repos.CommentRepository.DeleteByNote(ctx, tx, noteID); err != nil {
			return err
		}
		if err := s.repos.DownloadRepository.DeleteByNote(ctx, tx, noteID); err != nil {
			return err
		}
		return s.repos.NoteRepository.Delete(ctx, tx, noteID)
	})
	if err != nil {
		return err
	}

	if err := s.storage.DeleteFile(details.StoredFilename); err != nil {
		logger.Warn().Err(err).Str("file", details.StoredFilename).Msg("Failed to remove stored document")
	}
	return nil
}

// ListUsers returns accounts matching the admin filter.
func (s *AdminService) ListUsers(ctx context.Context, filter dto.AdminUserFilterRequest) ([]dto.UserResponse, error) {
	users, err := s.repos.UserRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *AdminService) targetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.repos.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, apperrors.ErrUserIsAdmin
	}
	return user, nil
}

// BlockUser blocks a regular account. Admin accounts are exempt.
func (s *AdminService) BlockUser(ctx context.Context, userID int64) error {
	if _, err := s.targetUser(ctx, userID); err != nil {
		return err
	}
	return s.repos.UserRepository.SetBlocked(ctx, userID, true)
}

// UnblockUser lifts a block.
func (s *AdminService) UnblockUser(ctx context.Context, userID int64) error {
	if _, err := s.targetUser(ctx, userID); err != nil {
		return err
	}
	return s.repos.UserRepository.SetBlocked(ctx, userID, false)
}

// DeleteUser removes an account and everything it produced: its ratings,
// comments and downloads, its notes with their dependent rows, and
// finally the stored documents. Admin accounts are exempt.
func (s *AdminService) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := s.targetUser(ctx, userID); err != nil {
		return err
	}

	noteIDs, err := s.repos.NoteRepository.NoteIDsByAuthor(ctx, userID)
	if err != nil {
		return err
	}
	storedFiles, err := s.repos.NoteRepository.StoredFilenamesByAuthor(ctx, userID)
	if err != nil {
		return err
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.repos.RatingRepository.DeleteByNotes(ctx, tx, noteIDs); err != nil {
			return err
		}
		if err := s.repos.CommentRepository.DeleteByNotes(ctx, tx, noteIDs); err != nil {
			return err
		}
		if err := s.repos.DownloadRepository.DeleteByNotes(ctx, tx, noteIDs); err != nil {
			return err
		}
		if err := s.repos.RatingRepository.DeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repos.CommentRepository.DeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repos.DownloadRepository.DeleteByUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.repos.NoteRepository.DeleteByAuthor(ctx, tx, userID); err != nil {
			return err
		}
		return s.repos.UserRepository.Delete(ctx, tx, userID)
	})
	if err != nil {
		return err
	}

	for _, name := range storedFiles {
		if err := s.storage.DeleteFile(name); err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("Failed to remove stored document")
		}
	}
	return nil
}

// ListFeedback returns every rating carrying feedback text.
func (s *AdminService) ListFeedback(ctx context.Context) ([]dto.FeedbackResponse, error) {
	return s.repos.RatingRepository.ListFeedback(ctx)
}

// DeleteFeedback clears the feedback text of a rating. The score stays so
// the note's average is unaffected.
func (s *AdminService) DeleteFeedback(ctx context.Context, ratingID int64) error {
	return s.repos.RatingRepository.ClearComment(ctx, ratingID)
}

// Analytics assembles the download and catalog statistics.
func (s *AdminService) Analytics(ctx context.Context) (*dto.AnalyticsResponse, error) {
	byDay, err := s.repos.DownloadRepository.CountByDay(ctx, analyticsWindowDays)
	if err != nil {
		return nil, err
	}

	top, err := s.repos.NoteRepository.MostDownloaded(ctx, analyticsTopSize)
	if err != nil {
		return nil, err
	}

	zero, err := s.repos.NoteRepository.ZeroDownloads(ctx)
	if err != nil {
		return nil, err
	}

	bySubject, err := s.repos.NoteRepository.CountApprovedBySubject(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		DownloadsByDay:    byDay,
		TopNotes:          toNoteResponses(top),
		ZeroDownloadNotes: toNoteResponses(zero),
		NotesBySubject:    bySubject,
	}, nil
}

// ChangePassword updates the calling admin's password after verifying the
// current one.
func (s *AdminService) ChangePassword(ctx context.Context, userID int64, req dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.repos.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repos.UserRepository.UpdatePasswordHash(ctx, user.ID, passwordHash)
}
