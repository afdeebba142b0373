package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/app/services"
	"github.com/edunotes/edunotes/internal/middleware"
)

// AdminController handles moderation, user administration and analytics.
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController.
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// Dashboard returns the moderation overview.
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	resp, err := ctrl.adminService.Dashboard(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ListNotes returns notes of any approval state.
func (ctrl *AdminController) ListNotes(c *gin.Context) {
	var filter dto.AdminNoteFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	notes, err := ctrl.adminService.ListNotes(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: notes})
}

// ApproveNote publishes a pending note.
func (ctrl *AdminController) ApproveNote(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	if err := ctrl.adminService.ApproveNote(c.Request.Context(), noteID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Note approved"}})
}

// DeleteNote removes a note and its dependent records.
func (ctrl *AdminController) DeleteNote(c *gin.Context) {
	noteID, ok := parseIDParam(c, "noteId")
	if !ok {
		return
	}

	if err := ctrl.adminService.DeleteNote(c.Request.Context(), noteID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Note deleted"}})
}

// ListUsers returns accounts matching the filter.
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	var filter dto.AdminUserFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	users, err := ctrl.adminService.ListUsers(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: users})
}

// BlockUser blocks a regular account.
func (ctrl *AdminController) BlockUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := ctrl.adminService.BlockUser(c.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "User blocked"}})
}

// UnblockUser lifts a block.
func (ctrl *AdminController) UnblockUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := ctrl.adminService.UnblockUser(c.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "User unblocked"}})
}

// DeleteUser removes an account and everything it produced.
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	if err := ctrl.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "User deleted"}})
}

// ListFeedback returns ratings carrying feedback text.
func (ctrl *AdminController) ListFeedback(c *gin.Context) {
	feedback, err := ctrl.adminService.ListFeedback(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: feedback})
}

// DeleteFeedback clears the feedback text of a rating.
func (ctrl *AdminController) DeleteFeedback(c *gin.Context) {
	ratingID, ok := parseIDParam(c, "ratingId")
	if !ok {
		return
	}

	if err := ctrl.adminService.DeleteFeedback(c.Request.Context(), ratingID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Feedback removed"}})
}

// Analytics returns download and catalog statistics.
func (ctrl *AdminController) Analytics(c *gin.Context) {
	resp, err := ctrl.adminService.Analytics(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: resp})
}

// ChangePassword updates the calling admin's password.
func (ctrl *AdminController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(c, err)
		return
	}

	if err := ctrl.adminService.ChangePassword(c.Request.Context(), middleware.GetUserID(c), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Password updated"}})
}
