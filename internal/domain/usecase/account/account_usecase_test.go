package account

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/sims-ppob/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/sims-ppob/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountMocks struct {
	userRepo   *persistencemocks.MockUserRepository
	uow        *persistencemocks.MockUnitOfWork
	txUserRepo *persistencemocks.MockUserRepository
	txBalances *persistencemocks.MockBalanceRepository
	hasher     *coremocks.MockPasswordHasher
	tokens     *coremocks.MockTokenService
	images     *persistencemocks.MockImageStore
	time       *coremocks.MockTimeProvider
}

type txMarker struct{}

var fixedTime = time.Date(2024, 2, 17, 10, 30, 0, 0, time.UTC)

func newAccountUseCase(t *testing.T) (*AccountUseCase, *accountMocks) {
	m := &accountMocks{
		userRepo:   persistencemocks.NewMockUserRepository(t),
		uow:        persistencemocks.NewMockUnitOfWork(t),
		txUserRepo: persistencemocks.NewMockUserRepository(t),
		txBalances: persistencemocks.NewMockBalanceRepository(t),
		hasher:     coremocks.NewMockPasswordHasher(t),
		tokens:     coremocks.NewMockTokenService(t),
		images:     persistencemocks.NewMockImageStore(t),
		time:       coremocks.NewMockTimeProvider(t),
	}
	m.time.EXPECT().Now().Return(fixedTime).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	uc := NewAccountUseCase(m.userRepo, m.uow, m.hasher, m.tokens, m.images, m.time, logger)
	return uc, m
}

func storedUser() *entity.User {
	return &entity.User{
		ID:           7,
		Email:        "a@x.com",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		PasswordHash: "hashed",
		CreatedAt:    fixedTime,
		UpdatedAt:    fixedTime,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txMarker{}, "tx")
	input := usecase.RegisterInput{Email: "a@x.com", FirstName: "Ada", LastName: "Lovelace", Password: "pw123456"}

	t.Run("should create user and zero balance in one transaction", func(t *testing.T) {
		uc, m := newAccountUseCase(t)

		m.userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil).Once()
		m.hasher.EXPECT().Hash("pw123456").Return("hashed", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.txUserRepo).Once()
		m.txUserRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "a@x.com" && u.PasswordHash == "hashed"
		})).RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = 7
			return nil
		}).Once()
		m.uow.EXPECT().GetBalanceRepository(txCtx).Return(m.txBalances).Once()
		m.txBalances.EXPECT().Create(txCtx, mock.MatchedBy(func(b *entity.Balance) bool {
			return b.UserID == 7 && b.Amount() == 0
		})).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		require.NoError(t, uc.Register(ctx, input))
	})

	t.Run("should reject an email that is already registered", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(true, nil).Once()

		// Act
		err := uc.Register(ctx, input)

		// Assert
		assert.ErrorIs(t, err, errs.ErrEmailTaken)
		assert.Equal(t, 101, errs.ErrorCode(err))
	})

	t.Run("should reject an email taken by a concurrent registration", func(t *testing.T) {
		uc, m := newAccountUseCase(t)

		m.userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil).Once()
		m.hasher.EXPECT().Hash("pw123456").Return("hashed", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.txUserRepo).Once()
		m.txUserRepo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrEmailTaken).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		assert.ErrorIs(t, uc.Register(ctx, input), errs.ErrEmailTaken)
	})

	t.Run("should roll back the user when the balance insert fails", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		dbErr := errors.New("connection reset")

		m.userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil).Once()
		m.hasher.EXPECT().Hash("pw123456").Return("hashed", nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.txUserRepo).Once()
		m.txUserRepo.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.uow.EXPECT().GetBalanceRepository(txCtx).Return(m.txBalances).Once()
		m.txBalances.EXPECT().Create(txCtx, mock.Anything).Return(dbErr).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		// Act
		err := uc.Register(ctx, input)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 999, errs.ErrorCode(err))
	})

	t.Run("should return internal error when hashing fails", func(t *testing.T) {
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().EmailExists(ctx, "a@x.com").Return(false, nil).Once()
		m.hasher.EXPECT().Hash("pw123456").Return("", errors.New("cost out of range")).Once()

		assert.ErrorIs(t, uc.Register(ctx, input), errs.ErrInternalServer)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("should issue a token for correct credentials", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()
		m.hasher.EXPECT().Verify("pw123456", "hashed").Return(true).Once()
		m.tokens.EXPECT().Issue("a@x.com").Return("signed.token", nil).Once()

		// Act
		token, err := uc.Login(ctx, "a@x.com", "pw123456")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "signed.token", token)
	})

	t.Run("should fail identically for unknown email and wrong password", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "nobody@x.com").Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()
		m.hasher.EXPECT().Verify("wrongpass", "hashed").Return(false).Once()

		// Act
		_, unknownErr := uc.Login(ctx, "nobody@x.com", "pw123456")

		// Assert
		_, wrongErr := uc.Login(ctx, "a@x.com", "wrongpass")

		assert.ErrorIs(t, unknownErr, errs.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, errs.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("should return error on repository failure", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, errs.ErrDatabaseConnection).Once()

		// Act
		_, err := uc.Login(ctx, "a@x.com", "pw123456")

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should return profile for known email", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()

		// Act
		profile, err := uc.GetProfile(ctx, "a@x.com")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, &entity.Profile{Email: "a@x.com", FirstName: "Ada", LastName: "Lovelace"}, profile)
	})

	t.Run("should return error when profile owner no longer exists", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(nil, errs.ErrUserNotFound).Once()

		// Act
		_, err := uc.GetProfile(ctx, "a@x.com")

		// Assert
		assert.Equal(t, 104, errs.ErrorCode(err))
	})

	t.Run("should overwrite names on profile update", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()
		m.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.FirstName == "Grace" && u.LastName == "Hopper"
		})).Return(nil).Once()

		// Act
		profile, err := uc.UpdateProfile(ctx, "a@x.com", "Grace", "Hopper")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Grace", profile.FirstName)
		assert.Equal(t, "Hopper", profile.LastName)
	})

	t.Run("should return error when updating a missing user", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()
		m.userRepo.EXPECT().Update(ctx, mock.Anything).Return(errs.ErrUserNotFound).Once()

		// Act
		_, err := uc.UpdateProfile(ctx, "a@x.com", "Grace", "Hopper")

		// Assert
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUpdateProfileImage(t *testing.T) {
	ctx := context.Background()
	expectedName := "a_x_com_" + "1708165800000" + ".png"

	newUpload := func(declared, detected string) *entity.ImageUpload {
		return &entity.ImageUpload{
			OriginalName: "avatar.html",
			DeclaredType: declared,
			DetectedType: detected,
			Content:      bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")),
		}
	}

	t.Run("should store and link a PNG upload", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()
		m.images.EXPECT().Save(ctx, expectedName, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, r io.Reader) error {
				_, err := io.ReadAll(r)
				return err
			}).Once()
		m.userRepo.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()

		// Act
		profile, err := uc.UpdateProfileImage(ctx, "a@x.com", newUpload("image/png", "image/png"), "http://localhost:3000/uploads/")

		// Assert
		require.NoError(t, err)
		require.NotNil(t, profile.ProfileImage)
		assert.Equal(t, "http://localhost:3000/uploads/"+expectedName, *profile.ProfileImage)
	})

	t.Run("should reject a GIF upload before anything is stored", func(t *testing.T) {
		// Arrange
		uc, _ := newAccountUseCase(t)

		// Act
		_, err := uc.UpdateProfileImage(ctx, "a@x.com", newUpload("image/gif", ""), "http://localhost/uploads")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidImageFormat)
		assert.Equal(t, 102, errs.ErrorCode(err))
	})

	t.Run("should reject a declared PNG that sniffs as something else", func(t *testing.T) {
		// Arrange
		uc, _ := newAccountUseCase(t)

		// Act
		_, err := uc.UpdateProfileImage(ctx, "a@x.com", newUpload("image/png", "application/pdf"), "http://localhost/uploads")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidImageFormat)
	})

	t.Run("should reject a missing file", func(t *testing.T) {
		// Arrange
		uc, _ := newAccountUseCase(t)

		// Act
		_, err := uc.UpdateProfileImage(ctx, "a@x.com", nil, "http://localhost/uploads")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidImageFormat)
	})

	t.Run("should remove the stored file when the update fails", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()
		m.images.EXPECT().Save(ctx, expectedName, mock.Anything).Return(nil).Once()
		m.userRepo.EXPECT().Update(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.images.EXPECT().Remove(ctx, expectedName).Return(nil).Once()

		// Act
		_, err := uc.UpdateProfileImage(ctx, "a@x.com", newUpload("image/png", ""), "http://localhost/uploads")

		// Assert
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestResolveUser(t *testing.T) {
	ctx := context.Background()

	t.Run("should resolve a known email", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "a@x.com").Return(storedUser(), nil).Once()

		// Act
		user, err := uc.ResolveUser(ctx, "a@x.com")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(7), user.ID)
	})

	t.Run("should treat a deleted user as an invalid token", func(t *testing.T) {
		// Arrange
		uc, m := newAccountUseCase(t)
		m.userRepo.EXPECT().GetByEmail(ctx, "gone@x.com").Return(nil, errs.ErrUserNotFound).Once()

		// Act
		_, err := uc.ResolveUser(ctx, "gone@x.com")

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
		assert.Equal(t, 108, errs.ErrorCode(err))
	})
}
