package services

import (
	"context"
	"strings"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/repositories"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
)

// CommentService implements note comments.
type CommentService struct {
	commentRepo *repositories.CommentRepository
	noteRepo    *repositories.NoteRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo *repositories.CommentRepository, noteRepo *repositories.NoteRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, noteRepo: noteRepo}
}

// AddComment attaches a comment to an approved note.
func (s *CommentService) AddComment(ctx context.Context, userID int64, username string, noteID int64, req dto.AddCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.ErrEmptyComment
	}

	details, err := s.noteRepo.GetDetailsByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !details.IsApproved {
		return nil, apperrors.ErrNoteNotFound
	}

	comment := &models.Comment{
		Content: content,
		UserID:  userID,
		NoteID:  noteID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &dto.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		UserID:    comment.UserID,
		Username:  username,
		CreatedAt: comment.CreatedAt,
	}, nil
}
