package account

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/persistence"
)

// AccountUseCase handles registration, authentication and profile logic
type AccountUseCase struct {
	userRepo     persistence.UserRepository
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenService
	images       persistence.ImageStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	userRepo persistence.UserRepository,
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenService,
	images persistence.ImageStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		userRepo:     userRepo,
		uow:          uow,
		hasher:       hasher,
		tokens:       tokens,
		images:       images,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProfile returns the profile of the user owning email
func (a *AccountUseCase) GetProfile(ctx context.Context, email string) (*entity.Profile, error) {
	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// ResolveUser maps the email of a verified token to its user.
// A token that outlived its user is treated as an invalid token.
func (a *AccountUseCase) ResolveUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := a.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrUserNotFound) {
		a.logger.Warn("Token refers to a user that no longer exists", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// inTransaction runs fn inside a unit of work, rolling back when fn or the commit fails
func (a *AccountUseCase) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := a.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := a.uow.Rollback(txCtx); rbErr != nil {
			a.logger.Error("Failed to roll back transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	return a.uow.Commit(txCtx)
}
