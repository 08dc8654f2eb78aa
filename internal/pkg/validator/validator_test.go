package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-01-15", true},
		{"2025-12-31", true},
		{"2025-02-30", false},
		{"2025-13-01", false},
		{"15-01-2025", false},
		{"2025/01/15", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := IsValidDate(c.input)
		if ok != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-01", true},
		{"2025-12", true},
		{"2025-13", false},
		{"2025-01-15", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := IsValidMonth(c.input)
		if ok != c.want {
			t.Errorf("IsValidMonth(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}

func TestIsValidLatitude(t *testing.T) {
	cases := []struct {
		input float64
		want  bool
	}{
		{0, true},
		{37.5665, true},
		{-90, true},
		{90, true},
		{90.0001, false},
		{-91, false},
	}
	for _, c := range cases {
		got := IsValidLatitude(c.input)
		if got != c.want {
			t.Errorf("IsValidLatitude(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidLongitude(t *testing.T) {
	cases := []struct {
		input float64
		want  bool
	}{
		{0, true},
		{126.978, true},
		{-180, true},
		{180, true},
		{180.0001, false},
		{-181, false},
	}
	for _, c := range cases {
		got := IsValidLongitude(c.input)
		if got != c.want {
			t.Errorf("IsValidLongitude(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["email"] != "email is required" {
		t.Errorf("ToMap()[email] = %q", m["email"])
	}
	if errs.Error() != "email: email is required; password: password is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
