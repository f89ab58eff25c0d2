package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
)

// User represents a registered wallet owner
type User struct {
	ID           uint64    // Unique identifier for the user
	Email        string    // Login identity, unique across users
	FirstName    string    // Given name
	LastName     string    // Family name
	PasswordHash string    // One-way hash of the password, never the plain text
	ProfileImage *string   // Public URL of the profile image, nil until uploaded
	CreatedAt    time.Time // When the user registered
	UpdatedAt    time.Time // When the profile last changed
}

// Profile is the public projection of a user
type Profile struct {
	Email        string
	FirstName    string
	LastName     string
	ProfileImage *string
}

// NewUser creates a user ready to be persisted
func NewUser(email, firstName, lastName, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", errs.ErrInternalServer)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash is required", errs.ErrInternalServer)
	}

	now := timeProvider.Now()
	return &User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Profile returns the public view of the user
func (u *User) Profile() Profile {
	return Profile{
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ProfileImage: u.ProfileImage,
	}
}

// Rename overwrites both name fields
func (u *User) Rename(firstName, lastName string, timeProvider coreport.TimeProvider) {
	u.FirstName = firstName
	u.LastName = lastName
	u.UpdatedAt = timeProvider.Now()
}

// SetProfileImage points the profile at a new image URL
func (u *User) SetProfileImage(url string, timeProvider coreport.TimeProvider) {
	u.ProfileImage = &url
	u.UpdatedAt = timeProvider.Now()
}
