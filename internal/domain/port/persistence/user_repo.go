package persistence

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// UserRepository defines the methods used to store and load users
type UserRepository interface {
	// Create inserts a new user and sets its ID
	//
	// Possible errors:
	// - ErrEmailTaken: if another user already owns the email
	// - ErrDatabaseConnection: if the database fails
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the email
	// - ErrDatabaseConnection: if the database fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// EmailExists reports whether a user with the email is registered
	EmailExists(ctx context.Context, email string) (bool, error)

	// Update writes the mutable profile fields of an existing user
	//
	// Possible errors:
	// - ErrUserNotFound: if the user no longer exists
	// - ErrDatabaseConnection: if the database fails
	Update(ctx context.Context, user *entity.User) error
}
