package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService is the outbound notification sink. Sends are best-effort:
// callers log failures and continue, the primary action never depends on a
// delivered mail.
type EmailService interface {
	SendWelcomeEmail(toEmail, username string) error
	SendApprovalEmail(toEmail, username, noteTitle string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// EmailServiceImpl implements EmailService over plain SMTP
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendWelcomeEmail greets a newly registered user.
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, username string) error {
	subject := "Welcome to EduNotes!"
	body := fmt.Sprintf(
		"Hello %s,\n\nWelcome to EduNotes! You can now start uploading and downloading study notes.\n\nBest regards,\nThe EduNotes Team\n",
		username)
	return s.send(toEmail, subject, body)
}

// SendApprovalEmail tells an author their note went live.
func (s *EmailServiceImpl) SendApprovalEmail(toEmail, username, noteTitle string) error {
	subject := "Your note has been approved!"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour note %q has been approved and is now visible to all users.\n\nBest regards,\nThe EduNotes Team\n",
		username, noteTitle)
	return s.send(toEmail, subject, body)
}

func (s *EmailServiceImpl) send(toEmail, subject, body string) error {
	// Without credentials just log the mail; useful for development setups.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	message := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, toEmail, subject, body)

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
