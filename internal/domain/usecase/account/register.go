package account

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
)

// Register creates a user and its zero balance in one transaction
func (a *AccountUseCase) Register(ctx context.Context, input usecase.RegisterInput) error {
	exists, err := a.userRepo.EmailExists(ctx, input.Email)
	if err != nil {
		return err
	}
	if exists {
		return errs.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(input.Password)
	if err != nil {
		a.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: hash password", errs.ErrInternalServer)
	}

	user, err := entity.NewUser(input.Email, input.FirstName, input.LastName, hash, a.timeProvider)
	if err != nil {
		return err
	}

	// A concurrent registration of the same email loses at the unique index
	err = a.inTransaction(ctx, func(txCtx context.Context) error {
		if err := a.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}
		balance, err := entity.NewBalance(user.ID, 0)
		if err != nil {
			return err
		}
		return a.uow.GetBalanceRepository(txCtx).Create(txCtx, balance)
	})
	if err != nil {
		a.logger.Error("Failed to register user", map[string]any{
			"email": input.Email,
			"error": err.Error(),
		})
		return err
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})
	return nil
}

// Login checks the credentials and issues a bearer token.
// An unknown email and a wrong password fail identically.
func (a *AccountUseCase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Debug("Password mismatch", map[string]any{
			"userId": user.ID,
		})
		return "", errs.ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		a.logger.Error("Failed to issue token", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("%w: issue token", errs.ErrInternalServer)
	}
	return token, nil
}
