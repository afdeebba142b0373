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

// NoteDetails is a note row joined with its subject, author and the
// average rating computed at read time.
type NoteDetails struct {
	models.Note
	SubjectName    string
	SubjectCode    string
	AuthorUsername string
	AverageRating  float64
}

// NoteRepository handles database operations for notes.
type NoteRepository struct {
	db *pgxpool.Pool
}

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{db: db}
}

const avgRatingExpr = "COALESCE((SELECT AVG(r.score) FROM ratings r WHERE r.note_id = n.id), 0)"

func selectNoteDetails() squirrel.SelectBuilder {
	return squirrel.Select(
		"n.id", "n.title", "n.description", "n.stored_filename", "n.original_filename",
		"n.file_size", "n.semester", "n.is_approved", "n.download_count",
		"n.user_id", "n.subject_id", "n.uploaded_at",
		"s.name", "s.code", "u.username",
		avgRatingExpr,
	).
		From("notes n").
		Join("subjects s ON s.id = n.subject_id").
		Join("users u ON u.id = n.user_id").
		PlaceholderFormat(squirrel.Dollar)
}

func scanNoteDetails(row pgx.Row) (*NoteDetails, error) {
	var d NoteDetails
	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &d.StoredFilename, &d.OriginalFilename,
		&d.FileSize, &d.Semester, &d.IsApproved, &d.DownloadCount,
		&d.UserID, &d.SubjectID, &d.UploadedAt,
		&d.SubjectName, &d.SubjectCode, &d.AuthorUsername,
		&d.AverageRating,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *NoteRepository) queryDetails(ctx context.Context, builder squirrel.SelectBuilder) ([]NoteDetails, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to query notes")
		return nil, err
	}
	defer rows.Close()

	var notes []NoteDetails
	for rows.Next() {
		d, err := scanNoteDetails(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *d)
	}
	return notes, rows.Err()
}

// BrowseOrderClause maps a browse sort key to its ORDER BY clause.
// Unknown keys fall back to newest first.
func BrowseOrderClause(sort string) string {
	switch sort {
	case "downloads":
		return "n.download_count DESC"
	case "rating":
		// Historical quirk kept for compatibility: rating sort orders by
		// note id descending rather than by the computed average.
		return "n.id DESC"
	default:
		return "n.uploaded_at DESC"
	}
}

// Create inserts a note and sets its generated ID and upload time.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	query, args, err := squirrel.Insert("notes").
		Columns("title", "description", "stored_filename", "original_filename",
			"file_size", "semester", "is_approved", "download_count", "user_id", "subject_id").
		Values(note.Title, note.Description, note.StoredFilename, note.OriginalFilename,
			note.FileSize, note.Semester, note.IsApproved, note.DownloadCount, note.UserID, note.SubjectID).
		Suffix("RETURNING id, uploaded_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&note.ID, &note.UploadedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create note")
		return err
	}
	return nil
}

// GetDetailsByID returns one note with its joined fields.
func (r *NoteRepository) GetDetailsByID(ctx context.Context, id int64) (*NoteDetails, error) {
	query, args, err := selectNoteDetails().
		Where(squirrel.Eq{"n.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	d, err := scanNoteDetails(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Msg("Failed to get note by id")
		return nil, err
	}
	return d, nil
}

// Browse returns a page of approved notes matching the filters, plus the
// total match count for pagination.
func (r *NoteRepository) Browse(ctx context.Context, req dto.BrowseNotesRequest) ([]NoteDetails, int64, error) {
	conds := squirrel.And{squirrel.Eq{"n.is_approved": true}}
	if req.Subject > 0 {
		conds = append(conds, squirrel.Eq{"n.subject_id": req.Subject})
	}
	if req.Semester > 0 {
		conds = append(conds, squirrel.Eq{"n.semester": req.Semester})
	}
	if req.Search != "" {
		conds = append(conds, SearchCondition(req.Search, "n.title", "n.description"))
	}

	countQuery, countArgs, err := squirrel.Select("COUNT(*)").
		From("notes n").
		Where(conds).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Failed to count notes")
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(req.Page, helpers.BrowsePageSize)
	notes, err := r.queryDetails(ctx, selectNoteDetails().
		Where(conds).
		OrderBy(BrowseOrderClause(req.Sort)).
		Offset(offset).
		Limit(uint64(limit)))
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// ListByAuthor returns every note a user uploaded, newest first.
func (r *NoteRepository) ListByAuthor(ctx context.Context, userID int64) ([]NoteDetails, error) {
	return r.queryDetails(ctx, selectNoteDetails().
		Where(squirrel.Eq{"n.user_id": userID}).
		OrderBy("n.uploaded_at DESC"))
}

// AdminList returns notes of any approval state matching the moderation
// filters, newest first.
func (r *NoteRepository) AdminList(ctx context.Context, filter dto.AdminNoteFilterRequest) ([]NoteDetails, error) {
	builder := selectNoteDetails().OrderBy("n.uploaded_at DESC")

	switch filter.Status {
	case "approved":
		builder = builder.Where(squirrel.Eq{"n.is_approved": true})
	case "pending":
		builder = builder.Where(squirrel.Eq{"n.is_approved": false})
	}
	if filter.Subject > 0 {
		builder = builder.Where(squirrel.Eq{"n.subject_id": filter.Subject})
	}
	if filter.Search != "" {
		builder = builder.Where(SearchCondition(filter.Search, "n.title", "n.description"))
	}

	return r.queryDetails(ctx, builder)
}

// LatestApproved returns the newest approved notes.
func (r *NoteRepository) LatestApproved(ctx context.Context, limit int) ([]NoteDetails, error) {
	return r.queryDetails(ctx, selectNoteDetails().
		Where(squirrel.Eq{"n.is_approved": true}).
		OrderBy("n.uploaded_at DESC").
		Limit(uint64(limit)))
}

// MostDownloaded returns the approved notes with the highest download
// counts.
func (r *NoteRepository) MostDownloaded(ctx context.Context, limit int) ([]NoteDetails, error) {
	return r.queryDetails(ctx, selectNoteDetails().
		Where(squirrel.Eq{"n.is_approved": true}).
		OrderBy("n.download_count DESC").
		Limit(uint64(limit)))
}

// ZeroDownloads returns approved notes nobody has downloaded yet.
func (r *NoteRepository) ZeroDownloads(ctx context.Context) ([]NoteDetails, error) {
	return r.queryDetails(ctx, selectNoteDetails().
		Where(squirrel.Eq{"n.is_approved": true, "n.download_count": 0}).
		OrderBy("n.uploaded_at DESC"))
}

// Recent returns the newest notes regardless of approval state.
func (r *NoteRepository) Recent(ctx context.Context, limit int) ([]NoteDetails, error) {
	return r.queryDetails(ctx, selectNoteDetails().
		OrderBy("n.uploaded_at DESC").
		Limit(uint64(limit)))
}

// Approve marks a note as approved.
func (r *NoteRepository) Approve(ctx context.Context, noteID int64) error {
	tag, err := r.db.Exec(ctx, "UPDATE notes SET is_approved = TRUE WHERE id = $1", noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to approve note")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// IncrementDownloadCount bumps the counter atomically in the database so
// concurrent downloads never lose an increment.
func (r *NoteRepository) IncrementDownloadCount(ctx context.Context, q Querier, noteID int64) error {
	tag, err := q.Exec(ctx,
		"UPDATE notes SET download_count = download_count + 1 WHERE id = $1", noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to increment download count")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// Delete removes the note row. Ratings, comments and download records must
// be deleted first inside the same transaction.
func (r *NoteRepository) Delete(ctx context.Context, q Querier, noteID int64) error {
	tag, err := q.Exec(ctx, "DELETE FROM notes WHERE id = $1", noteID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete note")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// Count returns the total number of notes.
func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM notes").Scan(&count)
	return count, err
}

// CountApproved returns the number of approved notes.
func (r *NoteRepository) CountApproved(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM notes WHERE is_approved").Scan(&count)
	return count, err
}

// CountPending returns the number of notes awaiting approval.
func (r *NoteRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM notes WHERE NOT is_approved").Scan(&count)
	return count, err
}

// SumDownloads returns the total download count across all notes.
func (r *NoteRepository) SumDownloads(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(download_count), 0) FROM notes").Scan(&sum)
	return sum, err
}

// CountApprovedBySubject returns per-subject counts of approved notes.
func (r *NoteRepository) CountApprovedBySubject(ctx context.Context) ([]dto.SubjectNoteCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.name, COUNT(n.id)
		FROM subjects s
		LEFT JOIN notes n ON n.subject_id = s.id AND n.is_approved
		GROUP BY s.name
		ORDER BY s.name`)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count notes by subject")
		return nil, err
	}
	defer rows.Close()

	var counts []dto.SubjectNoteCount
	for rows.Next() {
		var c dto.SubjectNoteCount
		if err := rows.Scan(&c.Subject, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// StoredFilenamesByAuthor lists the storage names of all notes a user
// uploaded, for blob cleanup when the account is deleted.
func (r *NoteRepository) StoredFilenamesByAuthor(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT stored_filename FROM notes WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteByAuthor removes all notes a user uploaded, as part of the
// account deletion transaction.
func (r *NoteRepository) DeleteByAuthor(ctx context.Context, q Querier, userID int64) error {
	_, err := q.Exec(ctx, "DELETE FROM notes WHERE user_id = $1", userID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete notes by author")
	}
	return err
}

// NoteIDsByAuthor lists the IDs of all notes a user uploaded.
func (r *NoteRepository) NoteIDsByAuthor(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, "SELECT id FROM notes WHERE user_id = $1", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
