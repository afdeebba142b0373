package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/pkg/logger"
)

// DownloadRepository records download events for analytics.
type DownloadRepository struct {
	db *pgxpool.Pool
}

// NewDownloadRepository creates a new DownloadRepository.
func NewDownloadRepository(db *pgxpool.Pool) *DownloadRepository {
	return &DownloadRepository{db: db}
}

// Create inserts a download event. It runs in the same transaction as the
// note counter increment so the audit trail and the counter stay in step.
func (r *DownloadRepository) Create(ctx context.Context, q Querier, download *models.Download) error {
	err := q.QueryRow(ctx,
		"INSERT INTO downloads (user_id, note_id) VALUES ($1, $2) RETURNING id, downloaded_at",
		download.UserID, download.NoteID,
	).Scan(&download.ID, &download.DownloadedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to record download")
	}
	return err
}

// CountByDay buckets download events per calendar day over the last n
// days, oldest first.
func (r *DownloadRepository) CountByDay(ctx context.Context, days int) ([]dto.DownloadsByDay, error) {
	rows, err := r.db.Query(ctx, `
		SELECT TO_CHAR(downloaded_at::date, 'YYYY-MM-DD'), COUNT(*)
		FROM downloads
		WHERE downloaded_at >= NOW() - make_interval(days => $1)
		GROUP BY downloaded_at::date
		ORDER BY downloaded_at::date`, days)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to bucket downloads by day")
		return nil, err
	}
	defer rows.Close()

	var buckets []dto.DownloadsByDay
	for rows.Next() {
		var b dto.DownloadsByDay
		if err := rows.Scan(&b.Date, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// DeleteByNote removes a note's download records inside a transaction.
func (r *DownloadRepository) DeleteByNote(ctx context.Context, q Querier, noteID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM downloads WHERE note_id = $1", noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete downloads by note")
	}
	return err
}

// DeleteByUser removes every download record a user produced inside a
// transaction.
func (r *DownloadRepository) DeleteByUser(ctx context.Context, q Querier, userID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM downloads WHERE user_id = $1", userID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete downloads by user")
	}
	return err
}

// DeleteByNotes removes the download records of the given notes inside a
// transaction.
func (r *DownloadRepository) DeleteByNotes(ctx context.Context, q Querier, noteIDs []int64) error {
	if len(noteIDs) == 0 {
		return nil
	}
	_, err := q.Exec(ctx, "DELETE FROM downloads WHERE note_id = ANY($1)", noteIDs)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete downloads by notes")
	}
	return err
}
