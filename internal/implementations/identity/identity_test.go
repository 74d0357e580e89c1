package identity

import (
	"context"
	"testing"
	"time"

	"volunteercal/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) user.AccessToken {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.Nil(t, err)
	return user.AccessToken(token)
}

func validClaims() jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   "5b2e1f4a-8d3c-4f6e-9a1b-2c3d4e5f6a7b",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), validClaims())

	id, err := NewJWT(secret).Authenticate(context.Background(), token)

	require.Nil(t, err)
	assert.Equal(t, user.ID("5b2e1f4a-8d3c-4f6e-9a1b-2c3d4e5f6a7b"), id)
}

func TestAuthenticateRejectsInvalidTokens(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noSubject := validClaims()
	noSubject.Subject = ""
	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	cases := []struct {
		name  string
		token user.AccessToken
	}{
		{"garbage", user.AccessToken("not-a-jwt")},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims())},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(secret), validClaims())},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(secret), expired)},
		{"no subject", sign(t, jwt.SigningMethodHS256, []byte(secret), noSubject)},
		{"no expiry", sign(t, jwt.SigningMethodHS256, []byte(secret), noExpiry)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewJWT(secret).Authenticate(context.Background(), tc.token)

			assert.ErrorIs(t, err, user.ErrInvalidAccessToken)
		})
	}
}
