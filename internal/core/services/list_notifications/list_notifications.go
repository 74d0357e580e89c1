package listnotifications

import (
	"context"

	c "volunteercal/internal/core/domain/common"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
	"volunteercal/internal/core/services/auth"
)

const DEFAULT_LIMIT = 50

const MAX_LIMIT = 200

type Input struct {
	UserID     user.ID
	UnreadOnly bool
	Limit      c.Optional[uint]
	Offset     uint
}

func (i Input) WithAuthenticatedUser(id user.ID) auth.Input {
	i.UserID = id
	return i
}

type Result struct {
	Notifications []notification.Notification
	UnreadCount   uint
}

type service struct {
	log                    logging.Logger
	notificationRepository notification.Repository
}

func New(
	log logging.Logger,
	notificationRepository notification.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notificationRepository == nil {
		panic(e.NewNilArgumentError("notificationRepository"))
	}
	return &service{
		log:                    log,
		notificationRepository: notificationRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	limit := input.Limit.ValueOr(DEFAULT_LIMIT)
	if limit == 0 || limit > MAX_LIMIT {
		limit = MAX_LIMIT
	}

	notifications, err := s.notificationRepository.ListByUser(ctx, notification.ReadOptions{
		UserID:     input.UserID,
		UnreadOnly: input.UnreadOnly,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	unreadCount, err := s.notificationRepository.CountUnread(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	result.Notifications = notifications
	result.UnreadCount = unreadCount
	return result, nil
}
