package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/pkg/logger"
)

// CommentRepository handles database operations for comments.
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment and sets its generated ID and creation time.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO comments (content, user_id, note_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		comment.Content, comment.UserID, comment.NoteID,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create comment")
	}
	return err
}

// ListByNote returns a note's comments with their authors, newest first.
func (r *CommentRepository) ListByNote(ctx context.Context, noteID int64) ([]dto.CommentResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.content, c.user_id, u.username, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.note_id = $1
		ORDER BY c.created_at DESC`, noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list comments")
		return nil, err
	}
	defer rows.Close()

	var comments []dto.CommentResponse
	for rows.Next() {
		var c dto.CommentResponse
		if err := rows.Scan(&c.ID, &c.Content, &c.UserID, &c.Username, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// DeleteByNote removes all comments of a note inside a transaction.
func (r *CommentRepository) DeleteByNote(ctx context.Context, q Querier, noteID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM comments WHERE note_id = $1", noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete comments by note")
	}
	return err
}

// DeleteByUser removes every comment a user authored inside a
// transaction.
func (r *CommentRepository) DeleteByUser(ctx context.Context, q Querier, userID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM comments WHERE user_id = $1", userID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete comments by user")
	}
	return err
}

// DeleteByNotes removes all comments of the given notes inside a
// transaction.
func (r *CommentRepository) DeleteByNotes(ctx context.Context, q Querier, noteIDs []int64) error {
	if len(noteIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, "DELETE FROM comments WHERE note_id = ANY($1)", noteIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete comments by notes")
	}
	return err
}
