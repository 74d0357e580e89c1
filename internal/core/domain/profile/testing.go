package profile

import (
	"context"
	"sync"

	"volunteercal/internal/core/domain/user"
)

type FakeRepository struct {
	Profiles map[user.ID]Profile
	GetError error
	lock     sync.Mutex
}

func NewFakeRepository(profiles ...Profile) *FakeRepository {
	r := &FakeRepository{Profiles: make(map[user.ID]Profile)}
	for _, p := range profiles {
		r.Profiles[p.ID] = p
	}
	return r
}

func (r *FakeRepository) GetByID(ctx context.Context, id user.ID) (Profile, error) {
	if r.GetError != nil {
		return Profile{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	p, ok := r.Profiles[id]
	if !ok {
		return p, ErrProfileDoesNotExist
	}
	return p, nil
}
