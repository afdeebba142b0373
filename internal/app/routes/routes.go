package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edunotes/edunotes/internal/app/controllers"
	"github.com/edunotes/edunotes/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	noteController *controllers.NoteController,
	ratingController *controllers.RatingController,
	commentController *controllers.CommentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/home", userController.Home)
	v1.GET("/subjects", userController.Subjects)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
	}

	// Browsing is public; the detail view varies with the viewer, so it
	// carries optional authentication.
	notes := v1.Group("/notes")
	{
		notes.GET("", noteController.Browse)
		notes.GET("/:noteId", authMiddleware.OptionalAuth(), noteController.Detail)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		me := authenticated.Group("/me")
		{
			me.GET("/dashboard", userController.Dashboard)
			me.GET("/profile", userController.Profile)
		}

		authenticated.POST("/notes", noteController.Upload)
		authenticated.GET("/notes/:noteId/download", noteController.Download)
		authenticated.POST("/notes/:noteId/ratings", ratingController.RateNote)
		authenticated.POST("/notes/:noteId/comments", commentController.AddComment)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdminRequired())
	{
		admin.GET("/dashboard", adminController.Dashboard)
		admin.GET("/analytics", adminController.Analytics)

		admin.GET("/notes", adminController.ListNotes)
		admin.POST("/notes/:noteId/approve", adminController.ApproveNote)
		admin.DELETE("/notes/:noteId", adminController.DeleteNote)

		admin.GET("/users", adminController.ListUsers)
		admin.POST("/users/:userId/block", adminController.BlockUser)
		admin.POST("/users/:userId/unblock", adminController.UnblockUser)
		admin.DELETE("/users/:userId", adminController.DeleteUser)

		admin.GET("/feedback", adminController.ListFeedback)
		admin.DELETE("/feedback/:ratingId", adminController.DeleteFeedback)

		admin.PUT("/settings/password", adminController.ChangePassword)
	}
}
