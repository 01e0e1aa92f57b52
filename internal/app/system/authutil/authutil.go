// Package authutil holds the password and sign-in identifier rules shared
// by login and the bootstrap admin.
package authutil

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrPasswordCommon   = errors.New("password is too common")
	ErrInvalidEmail     = errors.New("invalid email address")
)

var commonPasswords = map[string]struct{}{
	"123456": {}, "1234567": {}, "12345678": {}, "123456789": {},
	"password": {}, "password1": {}, "qwerty": {}, "abc123": {},
	"iloveyou": {}, "letmein": {}, "football": {}, "welcome": {},
	"admin": {}, "monkey": {}, "dragon": {}, "sunshine": {},
	"classment": {}, "teacher": {}, "school": {},
}

// ValidatePassword checks length bounds and rejects well-known passwords
// regardless of case.
func ValidatePassword(pw string) error {
	if len(pw) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(pw) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if _, ok := commonPasswords[strings.ToLower(pw)]; ok {
		return ErrPasswordCommon
	}
	return nil
}

// HashPassword returns a bcrypt hash of pw.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether pw matches hash. Malformed hashes never match.
func CheckPassword(pw, hash string) bool {
	if pw == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// ValidateEmail returns ErrInvalidEmail unless s looks like local@domain.tld.
func ValidateEmail(s string) error {
	if !isValidEmail(s) {
		return ErrInvalidEmail
	}
	return nil
}

func isValidEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || strings.Count(s, "@") != 1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndexByte(domain, '.')
	if dot <= 0 || dot == len(domain)-1 {
		return false
	}
	return !strings.HasPrefix(domain, ".") && !strings.ContainsAny(s, " \t\r\n")
}
