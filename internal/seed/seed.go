package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/edunotes/edunotes/internal/app/models"
	"github.com/edunotes/edunotes/internal/app/repositories"
	"github.com/edunotes/edunotes/internal/pkg/auth"
	"github.com/edunotes/edunotes/internal/pkg/validation"
)

// Default administrator credentials. Meant for first boot; change the
// password through the admin settings endpoint afterwards.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@edunotes.com"
	defaultAdminPassword = "admin123"
	defaultAdminQuestion = "What is your favorite color?"
	defaultAdminAnswer   = "blue"
)

var defaultSubjects = []models.Subject{
	{Name: "Mathematics", Code: "MATH"},
	{Name: "Physics", Code: "PHY"},
	{Name: "Chemistry", Code: "CHEM"},
	{Name: "Computer Science", Code: "CS"},
	{Name: "Electronics", Code: "EC"},
	{Name: "Mechanical Engineering", Code: "MECH"},
	{Name: "Civil Engineering", Code: "CIVIL"},
	{Name: "English", Code: "ENG"},
	{Name: "Engineering Graphics", Code: "EG"},
	{Name: "Workshop Technology", Code: "WT"},
}

// CreateDefaultData seeds the subject catalog and the administrator
// account when they are missing. Safe to run on every boot.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	subjectRepo := repositories.NewSubjectRepository(dbPool)
	userRepo := repositories.NewUserRepository(dbPool)

	count, err := subjectRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		lgr.Info().Msg("Seeding default subjects")
		for i := range defaultSubjects {
			subject := defaultSubjects[i]
			if err := subjectRepo.Create(ctx, &subject); err != nil {
				lgr.Error().Err(err).Str("code", subject.Code).Msg("Failed to seed subject")
				return err
			}
		}
	}

	exists, err := userRepo.EmailExists(ctx, defaultAdminEmail)
	if err != nil {
		return err
	}
	if !exists {
		lgr.Info().Str("email", defaultAdminEmail).Msg("Creating default admin account")
		passwordHash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return err
		}
		admin := &models.User{
			Username:         defaultAdminUsername,
			Email:            defaultAdminEmail,
			PasswordHash:     passwordHash,
			IsAdmin:          true,
			SecurityQuestion: defaultAdminQuestion,
			SecurityAnswer:   validation.NormalizeSecurityAnswer(defaultAdminAnswer),
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default admin")
			return err
		}
	}

	return nil
}
