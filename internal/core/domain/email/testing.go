package email

import (
	"context"
	"sync"
)

type FakeTransport struct {
	Sent  []Message
	Error error
	// FailFor makes Send fail only for the listed recipients.
	FailFor map[string]error
	lock    sync.Mutex
}

func NewFakeTransport() *FakeTransport {
	return &FakeTransport{FailFor: make(map[string]error)}
}

func (t *FakeTransport) Send(ctx context.Context, m Message) error {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.Error != nil {
		return t.Error
	}
	if err, ok := t.FailFor[string(m.To.Email)]; ok {
		return err
	}
	t.Sent = append(t.Sent, m)
	return nil
}

func (t *FakeTransport) SentCount() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return len(t.Sent)
}
