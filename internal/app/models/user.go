package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID               int64     `json:"id" db:"id"`                              // Unique identifier for the user
	Username         string    `json:"username" db:"username"`                  // Unique display name
	Email            string    `json:"email" db:"email"`                        // Unique email address
	PasswordHash     string    `json:"-" db:"password_hash"`                    // Salted password digest (excluded from JSON)
	IsAdmin          bool      `json:"isAdmin" db:"is_admin"`                   // Whether the user can moderate content
	IsBlocked        bool      `json:"isBlocked" db:"is_blocked"`               // Whether the account is blocked
	SecurityQuestion string    `json:"securityQuestion" db:"security_question"` // Challenge used for password recovery
	SecurityAnswer   string    `json:"-" db:"security_answer"`                  // Stored trimmed and lower-cased
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`               // Timestamp when the account was created
}
