package notificationpublisher

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
)

// Log only records that a notification was created. It is used by processes
// that have no realtime side channel.
type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	return &Log{log: log}
}

func (p *Log) PublishNotification(ctx context.Context, n notification.Notification) error {
	p.log.Info(
		ctx,
		"Notification has been created.",
		logging.Entry("notificationID", n.ID),
		logging.Entry("userID", n.UserID),
	)
	return nil
}
