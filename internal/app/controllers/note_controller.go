package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/services"
	"github.com/edunotes/edunotes/internal/middleware"
)

// NoteController handles note browsing, detail, upload and download.
type NoteController struct {
	noteService *services.NoteService
}

// NewNoteController creates a new NoteController.
func NewNoteController(noteService *services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid id parameter").WithField(name),
		})
		return 0, false
	}
	return id, true
}

// Browse returns a page of approved notes.
func (ctrl *NoteController) Browse(c *gin.Context) {
	var req dto.BrowseNotesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	resp, err := ctrl.noteService.Browse(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Detail returns one note with its comments and the caller's rating.
func (ctrl *NoteController) Detail(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	resp, err := ctrl.noteService.GetDetail(c.Request.Context(), noteID,
		middleware.GetUserID(c), middleware.GetIsAdmin(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Upload stores a document and creates a pending note.
func (ctrl *NoteController) Upload(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Document file is required").WithField("file"),
		})
		return
	}

	resp, err := ctrl.noteService.Upload(c.Request.Context(), middleware.GetUserID(c), req, file)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.APIResponse{Data: resp})
}

// Download streams the document under its original filename.
func (ctrl *NoteController) Download(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	path, filename, err := ctrl.noteService.Download(c.Request.Context(), noteID,
		middleware.GetUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.FileAttachment(path, filename)
}
