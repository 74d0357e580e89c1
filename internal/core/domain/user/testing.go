package user

import "context"

// FakeAuthenticator accepts tokens listed in Users.
type FakeAuthenticator struct {
	Users map[AccessToken]ID
}

func NewFakeAuthenticator() *FakeAuthenticator {
	return &FakeAuthenticator{Users: make(map[AccessToken]ID)}
}

func (a *FakeAuthenticator) Authenticate(ctx context.Context, token AccessToken) (ID, error) {
	id, ok := a.Users[token]
	if !ok {
		return "", ErrInvalidAccessToken
	}
	return id, nil
}
