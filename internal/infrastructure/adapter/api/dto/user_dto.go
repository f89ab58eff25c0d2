package dto

import "github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"

// RegisterRequest represents the API request for creating an account.
// Fields are validated in declaration order and only the first failure is reported.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// LoginRequest represents the API request for obtaining a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateProfileRequest represents the API request for renaming the caller
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// TokenResponse carries the bearer token issued at login
type TokenResponse struct {
	Token string `json:"token"`
}

// ProfileResponse represents the public profile of a user
type ProfileResponse struct {
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfileImage *string `json:"profile_image"`
}

// NewProfileResponse maps a profile to its response
func NewProfileResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		Email:        profile.Email,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		ProfileImage: profile.ProfileImage,
	}
}
