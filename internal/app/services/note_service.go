package services

import (
	"context"
	"errors"
	"math"
	"mime/multipart"

	"github.com/jackc/pgx/v5"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/repositories"
	"github.com/edunotes/edunotes/internal/db"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
	"github.com/edunotes/edunotes/internal/pkg/filestorage"
	"github.com/edunotes/edunotes/internal/pkg/helpers"
	"github.com/edunotes/edunotes/internal/pkg/logger"
)

const homeSectionSize = 6

// NoteService implements upload, browse, detail, download and the
// user-facing aggregate views.
type NoteService struct {
	noteRepo     *repositories.NoteRepository
	subjectRepo  *repositories.SubjectRepository
	userRepo     *repositories.UserRepository
	commentRepo  *repositories.CommentRepository
	ratingRepo   *repositories.RatingRepository
	downloadRepo *repositories.DownloadRepository
	database     *db.PostgresDB
	storage      filestorage.FileStorage
}

// NewNoteService creates a new NoteService.
func NewNoteService(
	noteRepo *repositories.NoteRepository,
	subjectRepo *repositories.SubjectRepository,
	userRepo *repositories.UserRepository,
	commentRepo *repositories.CommentRepository,
	ratingRepo *repositories.RatingRepository,
	downloadRepo *repositories.DownloadRepository,
	database *db.PostgresDB,
	storage filestorage.FileStorage,
) *NoteService {
	return &NoteService{
		noteRepo:     noteRepo,
		subjectRepo:  subjectRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		ratingRepo:   ratingRepo,
		downloadRepo: downloadRepo,
		database:     database,
		storage:      storage,
	}
}

// RoundRating rounds an average score to one decimal for API responses.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func toNoteResponse(d repositories.NoteDetails) dto.NoteResponse {
	return dto.NoteResponse{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		OriginalFilename: d.OriginalFilename,
		FileSize:         d.FileSize,
		Semester:         d.Semester,
		IsApproved:       d.IsApproved,
		DownloadCount:    d.DownloadCount,
		SubjectID:        d.SubjectID,
		SubjectName:      d.SubjectName,
		SubjectCode:      d.SubjectCode,
		AuthorID:         d.UserID,
		AuthorUsername:   d.AuthorUsername,
		AverageRating:    RoundRating(d.AverageRating),
		UploadedAt:       d.UploadedAt,
	}
}

func toNoteResponses(details []repositories.NoteDetails) []dto.NoteResponse {
	notes := make([]dto.NoteResponse, 0, len(details))
	for _, d := range details {
		notes = append(notes, toNoteResponse(d))
	}
	return notes
}

// canView reports whether a note is visible to the given viewer. Pending
// notes exist only for their author and admins; everyone else gets the
// same not-found as a missing note.
func canView(d *repositories.NoteDetails, viewerID int64, isAdmin bool) bool {
	return d.IsApproved || isAdmin || (viewerID > 0 && viewerID == d.UserID)
}

// downloadable reports whether a note can be served. Only approved notes
// are, regardless of who asks; a pending upload is preview-only for its
// author through the detail view.
func downloadable(d *repositories.NoteDetails) bool {
	return d.IsApproved
}

// Upload stores the document and creates a pending note.
func (s *NoteService) Upload(ctx context.Context, userID int64, req dto.CreateNoteRequest, file *multipart.FileHeader) (*dto.NoteResponse, error) {
	if !filestorage.IsAllowedDocument(file.Filename) {
		return nil, apperrors.ErrFileTypeNotAllowed
	}

	if _, err := s.subjectRepo.GetByID(ctx, req.SubjectID); err != nil {
		return nil, err
	}

	storedName, size, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, err
	}

	note, err := models.NewNote(req.Title, req.Description, storedName, file.Filename,
		size, req.Semester, userID, req.SubjectID)
	if err != nil {
		s.cleanupBlob(storedName)
		return nil, err
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		s.cleanupBlob(storedName)
		return nil, err
	}

	details, err := s.noteRepo.GetDetailsByID(ctx, note.ID)
	if err != nil {
		return nil, err
	}

	resp := toNoteResponse(*details)
	return &resp, nil
}

func (s *NoteService) cleanupBlob(storedName string) {
	if err := s.storage.DeleteFile(storedName); err != nil {
		logger.Warn().Err(err).Str("file", storedName).Msg("Failed to remove orphaned upload")
	}
}

// Browse returns a page of approved notes matching the filters.
func (s *NoteService) Browse(ctx context.Context, req dto.BrowseNotesRequest) (*dto.NoteListResponse, error) {
	details, total, err := s.noteRepo.Browse(ctx, req)
	if err != nil {
		return nil, err
	}

	return &dto.NoteListResponse{
		Notes:      toNoteResponses(details),
		Pagination: helpers.NewPaginationInfo(total, req.Page, helpers.BrowsePageSize),
	}, nil
}

// GetDetail returns the detail view of a note for the given viewer.
// viewerID is zero for anonymous callers.
func (s *NoteService) GetDetail(ctx context.Context, noteID, viewerID int64, isAdmin bool) (*dto.NoteDetailResponse, error) {
	details, err := s.noteRepo.GetDetailsByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !canView(details, viewerID, isAdmin) {
		return nil, apperrors.ErrNoteNotFound
	}

	comments, err := s.commentRepo.ListByNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	resp := &dto.NoteDetailResponse{
		Note:     toNoteResponse(*details),
		Comments: comments,
	}

	if viewerID > 0 {
		rating, err := s.ratingRepo.GetByUserAndNote(ctx, viewerID, noteID)
		if err != nil && !errors.Is(err, apperrors.ErrRatingNotFound) {
			return nil, err
		}
		if rating != nil {
			resp.UserRating = &dto.RatingResponse{
				ID:        rating.ID,
				Score:     rating.Score,
				Comment:   rating.Comment,
				UserID:    rating.UserID,
				NoteID:    rating.NoteID,
				CreatedAt: rating.CreatedAt,
			}
		}
	}

	return resp, nil
}

// Download resolves the blob path of a note, bumps the download counter
// and records the event. The increment and the audit row commit together.
// Only approved notes are downloadable; pending ones are not found even
// for their author.
func (s *NoteService) Download(ctx context.Context, noteID, userID int64) (path, filename string, err error) {
	details, err := s.noteRepo.GetDetailsByID(ctx, noteID)
	if err != nil {
		return "", "", err
	}
	if !downloadable(details) {
		return "", "", apperrors.ErrNoteNotFound
	}
	if !s.storage.Exists(details.StoredFilename) {
		return "", "", apperrors.ErrNoteFileMissing
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.noteRepo.IncrementDownloadCount(ctx, tx, noteID); err != nil {
			return err
		}
		return s.downloadRepo.Create(ctx, tx, &models.Download{UserID: userID, NoteID: noteID})
	})
	if err != nil {
		return "", "", err
	}

	return s.storage.FullPath(details.StoredFilename), details.OriginalFilename, nil
}

// ListSubjects returns all subjects.
func (s *NoteService) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

// Home assembles the public landing payload.
func (s *NoteService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	latest, err := s.noteRepo.LatestApproved(ctx, homeSectionSize)
	if err != nil {
		return nil, err
	}
	popular, err := s.noteRepo.MostDownloaded(ctx, homeSectionSize)
	if err != nil {
		return nil, err
	}
	totalNotes, err := s.noteRepo.CountApproved(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalDownloads, err := s.noteRepo.SumDownloads(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HomeResponse{
		LatestNotes:    toNoteResponses(latest),
		PopularNotes:   toNoteResponses(popular),
		TotalNotes:     totalNotes,
		TotalUsers:     totalUsers,
		TotalDownloads: totalDownloads,
	}, nil
}

// Dashboard summarizes the calling user's uploads.
func (s *NoteService) Dashboard(ctx context.Context, userID int64) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.noteRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	approved := 0
	var downloads int64
	for _, d := range details {
		if d.IsApproved {
			approved++
		}
		downloads += d.DownloadCount
	}

	return &dto.DashboardResponse{
		User:                   toUserResponse(user),
		Notes:                  toNoteResponses(details),
		TotalUploads:           len(details),
		ApprovedUploads:        approved,
		TotalDownloadsReceived: downloads,
	}, nil
}
