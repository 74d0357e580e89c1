package auth

import (
	"context"
	"testing"

	"volunteercal/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

type input struct {
	userID user.ID
}

func (i input) WithAuthenticatedUser(id user.ID) Input {
	i.userID = id
	return i
}

type echoService struct{}

func (echoService) Run(ctx context.Context, in input) (user.ID, error) {
	return in.userID, nil
}

func TestAuthenticatedUserIsPassedToInnerService(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	authenticator := user.NewFakeAuthenticator()
	authenticator.Users["token-1"] = user.ID("user-1")
	service := WithAuthentication[input, user.ID](authenticator, echoService{})
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, user.AccessToken("token-1"))

	// Exercise ---
	userID, err := service.Run(ctx, input{})

	// Verify ---
	assert.Nil(err)
	assert.Equal(user.ID("user-1"), userID)
}

func TestMissingTokenIsRejected(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	service := WithAuthentication[input, user.ID](user.NewFakeAuthenticator(), echoService{})

	// Exercise ---
	_, err := service.Run(context.Background(), input{})

	// Verify ---
	assert.ErrorIs(err, user.ErrUnauthenticated)
}

func TestUnknownTokenIsRejected(t *testing.T) {
	// Setup ---
	assert := require.New(t)
	service := WithAuthentication[input, user.ID](user.NewFakeAuthenticator(), echoService{})
	ctx := context.WithValue(context.Background(), CONTEXT_AUTH_TOKEN_KEY, user.AccessToken("nope"))

	// Exercise ---
	_, err := service.Run(ctx, input{})

	// Verify ---
	assert.ErrorIs(err, user.ErrInvalidAccessToken)
}
