package services

import (
	"github.com/edunotes/edunotes/internal/app/repositories"
	"github.com/edunotes/edunotes/internal/db"
	"github.com/edunotes/edunotes/internal/pkg/auth"
	"github.com/edunotes/edunotes/internal/pkg/email"
	"github.com/edunotes/edunotes/internal/pkg/filestorage"
)

// Services bundles all service instances.
type Services struct {
	AuthService    *AuthService
	NoteService    *NoteService
	RatingService  *RatingService
	CommentService *CommentService
	AdminService   *AdminService
}

// NewServices wires all services with their collaborators.
func NewServices(
	repos *repositories.Repositories,
	database *db.PostgresDB,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	storage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService, emailService),
		NoteService: NewNoteService(repos.NoteRepository, repos.SubjectRepository,
			repos.UserRepository, repos.CommentRepository, repos.RatingRepository,
			repos.DownloadRepository, database, storage),
		RatingService:  NewRatingService(repos.RatingRepository, repos.NoteRepository),
		CommentService: NewCommentService(repos.CommentRepository, repos.NoteRepository),
		AdminService:   NewAdminService(repos, database, storage, emailService),
	}
}
