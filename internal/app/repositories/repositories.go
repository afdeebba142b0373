package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so cascade deletes can run their
// statements inside one transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SearchCondition matches a substring of any of the given columns.
// Plain LIKE, so case sensitivity is whatever the column collation says.
func SearchCondition(search string, columns ...string) squirrel.Or {
	pattern := "%" + search + "%"
	cond := make(squirrel.Or, 0, len(columns))
	for _, column := range columns {
		cond = append(cond, squirrel.Like{column: pattern})
	}
	return cond
}

// Repositories bundles all repository instances.
type Repositories struct {
	UserRepository     *UserRepository
	SubjectRepository  *SubjectRepository
	NoteRepository     *NoteRepository
	RatingRepository   *RatingRepository
	CommentRepository  *CommentRepository
	DownloadRepository *DownloadRepository
}

// NewRepositories creates all repositories backed by the given pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		SubjectRepository:  NewSubjectRepository(db),
		NoteRepository:     NewNoteRepository(db),
		RatingRepository:   NewRatingRepository(db),
		CommentRepository:  NewCommentRepository(db),
		DownloadRepository: NewDownloadRepository(db),
	}
}
