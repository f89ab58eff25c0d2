package credential

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/sims-ppob/mocks/port/core"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, hasher.Verify("pw123456", hash))
	assert.False(t, hasher.Verify("pw1234567", hash))
	assert.False(t, hasher.Verify("pw123456", "not-a-hash"))

	again, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}

func newTokenService(t *testing.T, now time.Time, ttl time.Duration) *JWTService {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(now).Maybe()
	svc, err := NewJWTService("s3cret", ttl, clock)
	require.NoError(t, err)
	return svc.(*JWTService)
}

func TestJWTRoundTrip(t *testing.T) {
	svc := newTokenService(t, time.Now(), time.Hour)

	token, err := svc.Issue("a@x.com")
	require.NoError(t, err)

	email, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestJWTRejections(t *testing.T) {
	now := time.Now()

	t.Run("Expired", func(t *testing.T) {
		svc := newTokenService(t, now.Add(-2*time.Hour), time.Hour)
		token, err := svc.Issue("a@x.com")
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Other secret", func(t *testing.T) {
		svc := newTokenService(t, now, time.Hour)
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
			Email:            "a@x.com",
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
		})
		token, err := forged.SignedString([]byte("other"))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		svc := newTokenService(t, now, time.Hour)
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims{Email: "a@x.com"})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Missing email claim", func(t *testing.T) {
		svc := newTokenService(t, now, time.Hour)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("s3cret"))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		svc := newTokenService(t, now, time.Hour)
		_, err := svc.Verify("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour, coremocks.NewMockTimeProvider(t))
	assert.Error(t, err)
}
