package notification

import (
	"context"
	"sort"
	"sync"

	"volunteercal/internal/core/domain/user"

	"github.com/google/uuid"
)

type FakeRepository struct {
	CreateError   error
	notifications []Notification
	lock          sync.Mutex
}

func NewFakeRepository(notifications ...Notification) *FakeRepository {
	return &FakeRepository{notifications: notifications}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (n Notification, err error) {
	if r.CreateError != nil {
		return n, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	n = Notification{
		ID:             ID(uuid.NewString()),
		UserID:         input.UserID,
		Type:           input.Type,
		Title:          input.Title,
		Message:        input.Message,
		RelatedEventID: input.RelatedEventID,
		RelatedGroupID: input.RelatedGroupID,
		CreatedAt:      input.CreatedAt,
	}
	r.notifications = append(r.notifications, n)
	return n, nil
}

func (r *FakeRepository) ListByUser(ctx context.Context, options ReadOptions) ([]Notification, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	result := make([]Notification, 0)
	for _, n := range r.notifications {
		if n.UserID != options.UserID || (options.UnreadOnly && n.IsRead) {
			continue
		}
		result = append(result, n)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if options.Offset >= uint(len(result)) {
		return []Notification{}, nil
	}
	result = result[options.Offset:]
	if options.Limit > 0 && uint(len(result)) > options.Limit {
		result = result[:options.Limit]
	}
	return result, nil
}

func (r *FakeRepository) CountUnread(ctx context.Context, userID user.ID) (uint, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) MarkRead(ctx context.Context, id ID, userID user.ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			r.notifications[ix].IsRead = true
			return nil
		}
	}
	return ErrNotificationDoesNotExist
}

func (r *FakeRepository) MarkAllRead(ctx context.Context, userID user.ID) (uint, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	var count uint
	for ix, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			r.notifications[ix].IsRead = true
			count++
		}
	}
	return count, nil
}

func (r *FakeRepository) Delete(ctx context.Context, id ID, userID user.ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			r.notifications = append(r.notifications[:ix], r.notifications[ix+1:]...)
			return nil
		}
	}
	return ErrNotificationDoesNotExist
}

// All returns a copy of every stored notification.
func (r *FakeRepository) All() []Notification {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Notification(nil), r.notifications...)
}

type FakePublisher struct {
	Published []Notification
	Error     error
	lock      sync.Mutex
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (p *FakePublisher) PublishNotification(ctx context.Context, n Notification) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, n)
	return nil
}
