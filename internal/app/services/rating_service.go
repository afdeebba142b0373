package services

import (
	"context"
	"strings"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/repositories"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
)

// RatingService implements note rating with optional feedback text.
type RatingService struct {
	ratingRepo *repositories.RatingRepository
	noteRepo   *repositories.NoteRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratingRepo *repositories.RatingRepository, noteRepo *repositories.NoteRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo, noteRepo: noteRepo}
}

// RateNote records or replaces the caller's rating of an approved note and
// returns the recomputed average.
func (s *RatingService) RateNote(ctx context.Context, userID, noteID int64, req dto.RateNoteRequest) (*dto.RateNoteResponse, error) {
	if req.Score < models.MinRatingScore || req.Score > models.MaxRatingScore {
		return nil, apperrors.ErrInvalidRatingScore
	}

	details, err := s.noteRepo.GetDetailsByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !details.IsApproved {
		return nil, apperrors.ErrNoteNotFound
	}

	rating := &models.Rating{
		Score:  req.Score,
		UserID: userID,
		NoteID: noteID,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		rating.Comment = &comment
	}

	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return nil, err
	}

	avg, err := s.ratingRepo.AverageScore(ctx, noteID)
	if err != nil {
		return nil, err
	}

	return &dto.RateNoteResponse{
		Message:       "Rating saved",
		AverageRating: RoundRating(avg),
	}, nil
}
