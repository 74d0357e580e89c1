package uow

import (
	"context"

	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/reminder"
)

type FakeUnitOfWorkContext struct {
	ReminderRepository     *reminder.FakeRepository
	NotificationRepository *notification.FakeRepository
	WasRollbackCalled      bool
	WasCommitCalled        bool
}

func NewFakeUnitOfWorkContext(
	reminderRepository *reminder.FakeRepository,
	notificationRepository *notification.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		ReminderRepository:     reminderRepository,
		NotificationRepository: notificationRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Reminders() reminder.Repository {
	return c.ReminderRepository
}

func (c *FakeUnitOfWorkContext) Notifications() notification.Repository {
	return c.NotificationRepository
}

type FakeUnitOfWork struct {
	Context    *FakeUnitOfWorkContext
	BeginError error
}

func NewFakeUnitOfWork(reminders ...reminder.Reminder) *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			reminder.NewFakeRepository(reminders...),
			notification.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Reminders() *reminder.FakeRepository {
	return u.Context.ReminderRepository
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	if u.BeginError != nil {
		return nil, u.BeginError
	}
	return u.Context, nil
}
