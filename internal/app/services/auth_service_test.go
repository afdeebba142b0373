package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/models/dto"
	"github.com/edunotes/edunotes/internal/pkg/apperrors"
	"github.com/edunotes/edunotes/internal/pkg/auth"
)

type memoryUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*models.User)}
}

func (s *memoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()
	s.users[user.Email] = user
	return nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (s *memoryUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *memoryUserStore) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	for _, u := range s.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return apperrors.ErrUserNotFound
}

type discardEmailService struct{}

func (discardEmailService) SendWelcomeEmail(toEmail, username string) error { return nil }

func (discardEmailService) SendApprovalEmail(toEmail, username, noteTitle string) error { return nil }

func newTestAuthService(t *testing.T, store *memoryUserStore) *AuthService {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "edunotes-test",
	})
	return NewAuthService(store, jwtService, discardEmailService{})
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newMemoryUserStore()
	hash, err := auth.HashPassword("opensesame")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	if err := store.Create(context.Background(), &models.User{
		Username:     "student",
		Email:        "student@example.com",
		PasswordHash: hash,
	}); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	svc := newTestAuthService(t, store)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "student@example.com",
		Password: "not-the-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "opensesame",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	store := newMemoryUserStore()
	hash, err := auth.HashPassword("opensesame")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	if err := store.Create(context.Background(), &models.User{
		Username:     "student",
		Email:        "student@example.com",
		PasswordHash: hash,
	}); err != nil {
		t.Fatalf("creating user: %v", err)
	}
	svc := newTestAuthService(t, store)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "student@example.com",
		Password: "opensesame",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a non-empty access token")
	}
	if resp.User.Username != "student" {
		t.Errorf("got username %q, want %q", resp.User.Username, "student")
	}
}
