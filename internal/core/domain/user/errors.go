package user

import "errors"

var (
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrUnauthenticated    = errors.New("user is not authenticated")
)
