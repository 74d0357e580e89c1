package user

import "context"

// ID is the identifier issued by the hosted auth provider.
type ID string

// AccessToken is a bearer token issued by the hosted auth provider.
type AccessToken string

func (t AccessToken) String() string {
	return "***"
}

// Authenticator resolves an access token to the user it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token AccessToken) (ID, error)
}
