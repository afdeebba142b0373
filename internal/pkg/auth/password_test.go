package auth

import "testing"

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("opensesame")
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	if !CheckPassword(hash, "opensesame") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "not-the-password") {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("not-a-bcrypt-digest", "opensesame") {
		t.Error("malformed digest should not verify")
	}
}
