package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
	"github.com/edunotes/edunotes/internal/pkg/helpers"
	"github.com/edunotes/edunotes/internal/pkg/logger"
)

// RatingRepository handles database operations for ratings.
type RatingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(db *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{db: db}
}

// upsertRatingSQL updates the score on re-rate and only replaces the
// feedback text when the new rating carries one. A score-only re-rate
// keeps the comment already on file.
const upsertRatingSQL = `
	INSERT INTO ratings (score, comment, user_id, note_id)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT ON CONSTRAINT ratings_user_note_key
	DO UPDATE SET score = EXCLUDED.score,
	              comment = COALESCE(EXCLUDED.comment, ratings.comment)
	RETURNING id, created_at`

// Upsert inserts the caller's rating of a note, or updates it when the
// (user, note) pair already has one. The unique constraint makes this a
// single atomic statement, so two concurrent ratings by the same user
// can never produce two rows.
func (r *RatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	err := r.db.QueryRow(ctx, upsertRatingSQL,
		rating.Score, helpers.GetNullString(rating.Comment), rating.UserID, rating.NoteID,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to upsert rating")
	}
	return err
}

// GetByUserAndNote returns the caller's rating of a note, if any.
func (r *RatingRepository) GetByUserAndNote(ctx context.Context, userID, noteID int64) (*models.Rating, error) {
	query, args, err := squirrel.Select("id", "score", "comment", "user_id", "note_id", "created_at").
		From("ratings").
		Where(squirrel.Eq{"user_id": userID, "note_id": noteID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rating models.Rating
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&rating.ID, &rating.Score, &rating.Comment, &rating.UserID, &rating.NoteID, &rating.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRatingNotFound
		}
		logger.Error().Err(err).Msg("Failed to get rating")
		return nil, err
	}
	return &rating, nil
}

// AverageScore returns the mean score of a note's ratings, zero when the
// note has none.
func (r *RatingRepository) AverageScore(ctx context.Context, noteID int64) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(AVG(score), 0) FROM ratings WHERE note_id = $1", noteID).Scan(&avg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to compute average rating")
		return 0, err
	}
	return avg, nil
}

// Count returns the total number of ratings.
func (r *RatingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM ratings").Scan(&count)
	return count, err
}

const feedbackSelect = `
	SELECT r.id, r.score, r.comment, r.note_id, n.title, r.user_id, u.username, r.created_at
	FROM ratings r
	JOIN notes n ON n.id = r.note_id
	JOIN users u ON u.id = r.user_id`

func (r *RatingRepository) queryFeedback(ctx context.Context, query string, args ...any) ([]dto.FeedbackResponse, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list feedback")
		return nil, err
	}
	defer rows.Close()

	var feedback []dto.FeedbackResponse
	for rows.Next() {
		var f dto.FeedbackResponse
		err := rows.Scan(&f.ID, &f.Score, &f.Comment, &f.NoteID, &f.NoteTitle,
			&f.UserID, &f.Username, &f.CreatedAt)
		if err != nil {
			return nil, err
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

// ListFeedback returns every rating carrying a non-empty feedback
// comment, newest first.
func (r *RatingRepository) ListFeedback(ctx context.Context) ([]dto.FeedbackResponse, error) {
	return r.queryFeedback(ctx, feedbackSelect+`
		WHERE r.comment IS NOT NULL AND r.comment <> ''
		ORDER BY r.created_at DESC`)
}

// RecentRatings returns the newest ratings with or without comments.
func (r *RatingRepository) RecentRatings(ctx context.Context, limit int) ([]dto.FeedbackResponse, error) {
	return r.queryFeedback(ctx, feedbackSelect+`
		ORDER BY r.created_at DESC
		LIMIT $1`, limit)
}

// ClearComment blanks the feedback text of a rating while keeping its
// score.
func (r *RatingRepository) ClearComment(ctx context.Context, ratingID int64) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE ratings SET comment = NULL WHERE id = $1", ratingID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to clear rating comment")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRatingNotFound
	}
	return nil
}

// DeleteByNote removes all ratings of a note inside a transaction.
func (r *RatingRepository) DeleteByNote(ctx context.Context, q Querier, noteID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM ratings WHERE note_id = $1", noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete ratings by note")
	}
	return err
}

// DeleteByUser removes every rating a user authored inside a transaction.
func (r *RatingRepository) DeleteByUser(ctx context.Context, q Querier, userID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM ratings WHERE user_id = $1", userID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete ratings by user")
	}
	return err
}

// DeleteByNotes removes all ratings of the given notes inside a
// transaction.
func (r *RatingRepository) DeleteByNotes(ctx context.Context, q Querier, noteIDs []int64) error {
	if len(noteIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, "DELETE FROM ratings WHERE note_id = ANY($1)", noteIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete ratings by notes")
	}
	return err
}
