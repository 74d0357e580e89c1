package profile

import (
	"context"
	"errors"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/user"
)

var ErrProfileDoesNotExist = errors.New("profile does not exist")

type Profile struct {
	ID       user.ID
	Email    c.Email
	FullName c.Optional[string]
}

type Repository interface {
	GetByID(ctx context.Context, id user.ID) (Profile, error)
}
