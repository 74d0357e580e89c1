package uow

import (
	"context"

	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/reminder"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Reminders() reminder.Repository
	Notifications() notification.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
