package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	payload := TokenPayload{UserID: "user-1", Email: "a@b.com", Name: "Alice"}
	token, err := GenerateToken(payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload, *decoded)
}

func TestVerifyToken_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("garbage", func(t *testing.T) {
		_, err := VerifyToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": "user-1",
			"email":   "a@b.com",
			"name":    "Alice",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = VerifyToken(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered signature", func(t *testing.T) {
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": "user-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("another-secret"))
		require.NoError(t, err)

		_, err = VerifyToken(forged)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user_id claim", func(t *testing.T) {
		anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "a@b.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = VerifyToken(anonymous)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		// alg=none, signature vide
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"user_id": "user-1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = VerifyToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGenerateToken_DefaultSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	token, err := GenerateToken(TokenPayload{UserID: "user-1"})
	require.NoError(t, err)

	decoded, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", decoded.UserID)
}
