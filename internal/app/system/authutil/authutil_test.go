package authutil

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		pw   string
		want error
	}{
		{"abc12", ErrPasswordTooShort},
		{"", ErrPasswordTooShort},
		{strings.Repeat("x", MaxPasswordLength+1), ErrPasswordTooLong},
		{"Password", ErrPasswordCommon},
		{"TEACHER", ErrPasswordCommon},
		{"chalk dust", nil},
		{strings.Repeat("x", MaxPasswordLength), nil},
	}
	for _, tt := range tests {
		if err := ValidatePassword(tt.pw); !errors.Is(err, tt.want) {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.pw, err, tt.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("chalk dust")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "chalk dust" {
		t.Fatal("hash equals the password")
	}
	if !CheckPassword("chalk dust", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("chalk Dust", hash) {
		t.Error("wrong password accepted")
	}
	if CheckPassword("chalk dust", "not-a-bcrypt-hash") {
		t.Error("malformed hash matched")
	}
	if CheckPassword("", hash) {
		t.Error("empty password matched")
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"teacher@school.test",
		"first.last@district.k12.us",
		"a+tag@b.co",
	}
	for _, s := range valid {
		if err := ValidateEmail(s); err != nil {
			t.Errorf("ValidateEmail(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{
		"",
		"no-at-sign",
		"@school.test",
		"two@@school.test",
		"a@b@school.test",
		"teacher@school",
		"teacher@.test",
		"teacher@school.",
		"tea cher@school.test",
	}
	for _, s := range invalid {
		if err := ValidateEmail(s); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) = %v, want ErrInvalidEmail", s, err)
		}
	}
}
