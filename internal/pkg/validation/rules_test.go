package validation

import "testing"

func TestNormalizeSecurityAnswer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Blue", "blue"},
		{"  blue  ", "blue"},
		{"\tBLUE \n", "blue"},
		{"blue", "blue"},
	}
	for _, c := range cases {
		if got := NormalizeSecurityAnswer(c.in); got != c.want {
			t.Fatalf("NormalizeSecurityAnswer(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("student@example.edu") {
		t.Fatalf("expected valid email to pass")
	}
	if IsValidEmail("not-an-email") {
		t.Fatalf("expected invalid email to fail")
	}
	if IsValidEmail("") {
		t.Fatalf("expected empty email to fail")
	}
}
