package identity

import (
	"context"
	"fmt"

	"volunteercal/internal/core/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

// JWT verifies HS256 access tokens issued by the hosted auth provider.
// The user id is taken from the "sub" claim.
type JWT struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWT(secret string) *JWT {
	if secret == "" {
		panic("jwt secret must not be empty")
	}
	return &JWT{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (a *JWT) Authenticate(ctx context.Context, token user.AccessToken) (user.ID, error) {
	claims := jwt.RegisteredClaims{}
	_, err := a.parser.ParseWithClaims(string(token), &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", user.ErrInvalidAccessToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: subject is not set", user.ErrInvalidAccessToken)
	}
	return user.ID(claims.Subject), nil
}
