package dto

import "time"

// --- Request DTOs ---

// RegisterRequest represents the data needed to create an account.
type RegisterRequest struct {
	Username         string `json:"username" binding:"required,min=3,max=80"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	ConfirmPassword  string `json:"confirmPassword" binding:"required"`
	SecurityQuestion string `json:"securityQuestion" binding:"required,max=200"`
	SecurityAnswer   string `json:"securityAnswer" binding:"required,max=200"`
}

// LoginRequest represents a session establishment request.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest resets a password via the account's security
// question. The answer comparison is trimmed and case-insensitive.
type ForgotPasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	SecurityAnswer  string `json:"securityAnswer" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// ChangePasswordRequest changes the calling admin's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// --- Response DTOs ---

// UserResponse represents the public view of an account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the issued token and the authenticated account.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"`
	User      UserResponse `json:"user"`
}
