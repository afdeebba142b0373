package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/services"
	"github.com/edunotes/edunotes/internal/middleware"
)

// CommentController handles note comments.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// AddComment attaches a comment to a note.
func (ctrl *CommentController) AddComment(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	resp, err := ctrl.commentService.AddComment(c.Request.Context(),
		middleware.GetUserID(c), middleware.GetUsername(c), noteID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}
