package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/services"
	"github.com/edunotes/edunotes/internal/middleware"
)

// RatingController handles note ratings.
type RatingController struct {
	ratingService *services.RatingService
}

// NewRatingController creates a new RatingController.
func NewRatingController(ratingService *services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// RateNote records or replaces the caller's rating of a note.
func (ctrl *RatingController) RateNote(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	var req dto.RateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	resp, err := ctrl.ratingService.RateNote(c.Request.Context(), middleware.GetUserID(c), noteID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}
