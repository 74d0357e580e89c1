package countunreadnotifications

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
	"volunteercal/internal/core/services/auth"
)

type Input struct {
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(id user.ID) auth.Input {
	i.UserID = id
	return i
}

type Result struct {
	Count uint
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
	count, err := s.notificationRepository.CountUnread(ctx, input.UserID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Count = count
	return result, nil
}
