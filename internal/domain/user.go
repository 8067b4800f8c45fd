package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrNameTooLong         = errors.New("name must be at most 255 characters long")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the directory.
// The email address is the uniqueness field and is stored lowercased.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email, name and hashed password.
// It generates a new UUID for the user ID, lowercases the email, and sets
// the creation/update timestamps. New users start inactive.
// Returns an error if validation fails.
func NewUser(email, name, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		Name:           name,
		HashedPassword: hashedPassword,
		IsActive:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if len(u.Name) > 255 {
		return ErrNameTooLong
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// Touch refreshes the update timestamp. Stores call this before persisting
// a mutation so UpdatedAt always reflects the last write.
func (u *User) Touch() {
	u.UpdatedAt = time.Now().UTC()
}

// validateEmailFormat performs basic validation of email format.
// Request payloads are additionally validated with go-playground/validator;
// this is the last line of defense for users constructed outside the API path.
func validateEmailFormat(email string) bool {
	atIndex := strings.IndexByte(email, '@')
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := strings.IndexByte(domainPart, '.')
	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
