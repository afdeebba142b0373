package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/services"
	"github.com/edunotes/edunotes/internal/middleware"
)

// UserController handles the public landing page, the subject catalog and
// the caller's own views.
type UserController struct {
	authService *services.AuthService
	noteService *services.NoteService
}

// NewUserController creates a new UserController.
func NewUserController(authService *services.AuthService, noteService *services.NoteService) *UserController {
	return &UserController{authService: authService, noteService: noteService}
}

// Home returns the public landing payload.
func (ctrl *UserController) Home(c *gin.Context) {
	resp, err := ctrl.noteService.Home(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Subjects lists the subject catalog.
func (ctrl *UserController) Subjects(c *gin.Context) {
	subjects, err := ctrl.noteService.ListSubjects(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: subjects})
}

// Dashboard summarizes the caller's uploads.
func (ctrl *UserController) Dashboard(c *gin.Context) {
	resp, err := ctrl.noteService.Dashboard(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// Profile returns the caller's account.
func (ctrl *UserController) Profile(c *gin.Context) {
	user, err := ctrl.authService.GetProfile(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: user})
}
