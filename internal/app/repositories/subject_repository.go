package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
	"github.com/edunotes/edunotes/internal/pkg/logger"
)

// SubjectRepository handles database operations for subjects.
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new SubjectRepository.
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create inserts a subject and sets its generated ID.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query, args, err := squirrel.Insert("subjects").
		Columns("name", "code").
		Values(subject.Name, subject.Code).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&subject.ID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create subject")
		return err
	}
	return nil
}

// GetAll returns all subjects ordered by name.
func (r *SubjectRepository) GetAll(ctx context.Context) ([]models.Subject, error) {
	query, args, err := squirrel.Select("id", "name", "code").
		From("subjects").
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list subjects")
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// GetByID finds a subject by ID.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query, args, err := squirrel.Select("id", "name", "code").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var s models.Subject
	err = r.db.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		logger.Error().Err(err).Msg("Failed to get subject by id")
		return nil, err
	}
	return &s, nil
}

// Count returns the total number of subjects.
func (r *SubjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM subjects").Scan(&count)
	return count, err
}
