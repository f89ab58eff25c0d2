package usecase

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// RegisterInput carries the fields of a new registration
type RegisterInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// AccountUseCase defines registration, authentication and profile operations
type AccountUseCase interface {
	// Register creates the user and its zero balance in one transaction
	Register(ctx context.Context, input RegisterInput) error

	// Login checks the credentials and returns a bearer token
	Login(ctx context.Context, email, password string) (string, error)

	// GetProfile returns the profile of the user owning email
	GetProfile(ctx context.Context, email string) (*entity.Profile, error)

	// UpdateProfile overwrites both name fields
	UpdateProfile(ctx context.Context, email, firstName, lastName string) (*entity.Profile, error)

	// UpdateProfileImage stores upload and points the profile at it.
	// baseURL is the scheme and host the image will be served from.
	UpdateProfileImage(ctx context.Context, email string, upload *entity.ImageUpload, baseURL string) (*entity.Profile, error)

	// ResolveUser maps an authenticated email to the user it belongs to
	ResolveUser(ctx context.Context, email string) (*entity.User, error)
}
