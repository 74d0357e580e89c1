package auth

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(id user.ID) Input
}

type service[T Input, S any] struct {
	authenticator user.Authenticator
	inner         services.Service[T, S]
}

func WithAuthentication[T Input, S any](
	authenticator user.Authenticator,
	inner services.Service[T, S],
) services.Service[T, S] {
	if authenticator == nil {
		panic(e.NewNilArgumentError("authenticator"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		authenticator: authenticator,
		inner:         inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	token, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.AccessToken)
	if !ok || token == "" {
		return result, user.ErrUnauthenticated
	}
	userID, err := s.authenticator.Authenticate(ctx, token)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(userID).(T))
}
