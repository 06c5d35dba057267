package password

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	// MinLength is the minimum number of characters accepted for a new password
	MinLength = 8
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrPasswordMismatch = errors.New("비밀번호가 일치하지 않습니다.")
	ErrPasswordTooShort = fmt.Errorf("비밀번호는 최소 %d자 이상이어야 합니다.", MinLength)
)

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// Verify checks if the provided password matches the hash
func Verify(password, hash string) error {
	if password == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}

// CheckNew validates a new password against its confirmation.
func CheckNew(password, confirm string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	if password != confirm {
		return ErrPasswordMismatch
	}

	if utf8.RuneCountInString(password) < MinLength {
		return ErrPasswordTooShort
	}

	return nil
}
