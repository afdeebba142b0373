package services

import (
	"context"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
	"github.com/edunotes/edunotes/internal/pkg/auth"
	"github.com/edunotes/edunotes/internal/pkg/dberrors"
	"github.com/edunotes/edunotes/internal/pkg/email"
	"github.com/edunotes/edunotes/internal/pkg/logger"
	"github.com/edunotes/edunotes/internal/pkg/validation"
)

// userStore is the account persistence surface the auth flows need.
// *repositories.UserRepository satisfies it.
type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// AuthService implements registration, login and password recovery.
type AuthService struct {
	userRepo     userStore
	jwtService   *auth.JWTService
	emailService email.EmailService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo userStore, jwtService *auth.JWTService, emailService email.EmailService) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		emailService: emailService,
	}
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		IsBlocked: u.IsBlocked,
		CreatedAt: u.CreatedAt,
	}
}

// Register creates a regular account. The security answer is stored
// normalized so recovery comparisons are trim- and case-insensitive.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordMismatch
	}
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("invalid email address")
	}

	taken, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	registered, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if registered {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   validation.NormalizeSecurityAnswer(req.SecurityAnswer),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The existence checks race with concurrent registrations; the
		// unique constraints are the authority.
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	if err := s.emailService.SendWelcomeEmail(user.Email, user.Username); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send welcome email")
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifies the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      toUserResponse(user),
	}, nil
}

// ForgotPassword resets a password after the account's security question
// is answered correctly.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if validation.NormalizeSecurityAnswer(req.SecurityAnswer) != user.SecurityAnswer {
		return apperrors.ErrWrongSecurityAnswer
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePasswordHash(ctx, user.ID, passwordHash)
}

// GetProfile returns the account of the given user.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}
