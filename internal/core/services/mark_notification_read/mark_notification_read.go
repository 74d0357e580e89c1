package marknotificationread

import (
	"context"
	"errors"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
	"volunteercal/internal/core/services/auth"
)

type Input struct {
	UserID         user.ID
	NotificationID notification.ID
}

func (i Input) WithAuthenticatedUser(id user.ID) auth.Input {
	i.UserID = id
	return i
}

type Result struct{}

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
	err = s.notificationRepository.MarkRead(ctx, input.NotificationID, input.UserID)
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, notification.ErrNotificationDoesNotExist):
		s.log.Info(ctx, "Notification not found.", logging.Entry("input", input))
	default:
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
	}
	return result, err
}
