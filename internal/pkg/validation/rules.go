package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches the address formats the portal accepts
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 6

	// UsernameMinLength / UsernameMaxLength bound usernames
	UsernameMinLength = 3
	UsernameMaxLength = 80
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the address matches EmailPattern.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// NormalizeSecurityAnswer lower-cases and trims a security answer so that
// comparisons during password recovery are case- and whitespace-insensitive.
// The same normalization is applied at signup before storing the answer.
func NormalizeSecurityAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
