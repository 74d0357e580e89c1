package reminder

import (
	"context"
	"sort"
	"sync"
	"time"

	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/user"

	"github.com/google/uuid"
)

// FakeRepository is an in-memory Repository for service tests.
type FakeRepository struct {
	CreateError   error
	ListDueError  error
	MarkSentError error
	UpdateError   error
	KnownEventIDs map[event.ID]struct{}
	ListDueWith   []time.Time
	MarkSentCalls []ID
	reminders     map[ID]Reminder
	lock          sync.Mutex
}

func NewFakeRepository(reminders ...Reminder) *FakeRepository {
	r := &FakeRepository{reminders: make(map[ID]Reminder)}
	for _, rem := range reminders {
		r.reminders[rem.ID] = rem
	}
	return r
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.KnownEventIDs != nil {
		if _, ok := r.KnownEventIDs[input.EventID]; !ok {
			return rem, ErrEventOrUserDoesNotExist
		}
	}
	rem = Reminder{
		ID:        ID(uuid.NewString()),
		EventID:   input.EventID,
		UserID:    input.UserID,
		RemindAt:  input.RemindAt,
		Channel:   input.Channel.OrDefault(),
		CreatedAt: input.CreatedAt,
	}
	r.reminders[rem.ID] = rem
	return rem, nil
}

func (r *FakeRepository) Lock(ctx context.Context, id ID) error {
	return nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.reminders[id]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	return rem, nil
}

func (r *FakeRepository) ListByUser(ctx context.Context, userID user.ID) ([]Reminder, error) {
	return r.filter(func(rem Reminder) bool { return rem.UserID == userID }), nil
}

func (r *FakeRepository) ListByEvent(ctx context.Context, eventID event.ID) ([]Reminder, error) {
	return r.filter(func(rem Reminder) bool { return rem.EventID == eventID }), nil
}

func (r *FakeRepository) ListDue(ctx context.Context, now time.Time, limit uint) ([]Reminder, error) {
	if r.ListDueError != nil {
		return nil, r.ListDueError
	}
	r.lock.Lock()
	r.ListDueWith = append(r.ListDueWith, now)
	r.lock.Unlock()

	due := r.filter(func(rem Reminder) bool { return rem.IsDue(now) })
	if uint(len(due)) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (rem Reminder, err error) {
	if r.UpdateError != nil {
		return rem, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.reminders[input.ID]
	if !ok {
		return rem, ErrReminderDoesNotExist
	}
	if input.DoRemindAtUpdate {
		rem.RemindAt = input.RemindAt
	}
	if input.DoChannelUpdate {
		rem.Channel = input.Channel
	}
	r.reminders[rem.ID] = rem
	return rem, nil
}

func (r *FakeRepository) MarkSent(ctx context.Context, id ID) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.MarkSentCalls = append(r.MarkSentCalls, id)
	if r.MarkSentError != nil {
		return false, r.MarkSentError
	}
	rem, ok := r.reminders[id]
	if !ok || rem.Sent {
		return false, nil
	}
	rem.Sent = true
	r.reminders[id] = rem
	return true, nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.reminders[id]; !ok {
		return ErrReminderDoesNotExist
	}
	delete(r.reminders, id)
	return nil
}

func (r *FakeRepository) DeleteByEvent(ctx context.Context, eventID event.ID) (uint, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for id, rem := range r.reminders {
		if rem.EventID == eventID {
			delete(r.reminders, id)
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) Add(rem Reminder) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.reminders[rem.ID] = rem
}

// Get returns the stored reminder, ignoring injected errors.
func (r *FakeRepository) Get(id ID) (Reminder, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.reminders[id]
	return rem, ok
}

func (r *FakeRepository) filter(keep func(Reminder) bool) []Reminder {
	r.lock.Lock()
	defer r.lock.Unlock()
	reminders := make([]Reminder, 0)
	for _, rem := range r.reminders {
		if keep(rem) {
			reminders = append(reminders, rem)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		if reminders[i].RemindAt.Equal(reminders[j].RemindAt) {
			return reminders[i].ID < reminders[j].ID
		}
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
	return reminders
}

// FakeClaimer grants every claim unless the id is listed in Taken.
type FakeClaimer struct {
	Taken      map[ID]struct{}
	ClaimError error
	Claimed    []ID
	Released   []ID
	lock       sync.Mutex
}

func NewFakeClaimer() *FakeClaimer {
	return &FakeClaimer{Taken: make(map[ID]struct{})}
}

func (c *FakeClaimer) Claim(ctx context.Context, id ID) (bool, error) {
	if c.ClaimError != nil {
		return false, c.ClaimError
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.Taken[id]; ok {
		return false, nil
	}
	c.Taken[id] = struct{}{}
	c.Claimed = append(c.Claimed, id)
	return true, nil
}

func (c *FakeClaimer) Release(ctx context.Context, id ID) error {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.Taken, id)
	c.Released = append(c.Released, id)
	return nil
}
