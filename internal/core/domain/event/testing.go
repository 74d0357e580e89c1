package event

import (
	"context"
	"sync"
)

type FakeRepository struct {
	Events   map[ID]Event
	GetError error
	lock     sync.Mutex
}

func NewFakeRepository(events ...Event) *FakeRepository {
	r := &FakeRepository{Events: make(map[ID]Event)}
	for _, e := range events {
		r.Events[e.ID] = e
	}
	return r
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (Event, error) {
	if r.GetError != nil {
		return Event{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	e, ok := r.Events[id]
	if !ok {
		return e, ErrEventDoesNotExist
	}
	return e, nil
}
