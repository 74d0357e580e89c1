package createreminder

import (
	"context"
	"errors"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"
	uow "volunteercal/internal/core/domain/unit_of_work"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
	"volunteercal/internal/core/services/auth"
)

type Input struct {
	UserID   user.ID
	EventID  event.ID
	RemindAt time.Time
	Channel  reminder.Channel
}

func (i Input) Validate() error {
	if i.RemindAt.IsZero() {
		return reminder.ErrRemindAtNotSet
	}
	return nil
}

func (i Input) WithAuthenticatedUser(id user.ID) auth.Input {
	i.UserID = id
	return i
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	now        func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		s.log.Info(ctx, "Invalid input.", logging.Entry("input", input), logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	rem, err := uow.Reminders().Create(ctx, reminder.CreateInput{
		EventID:   input.EventID,
		UserID:    input.UserID,
		RemindAt:  input.RemindAt.UTC(),
		Channel:   input.Channel.OrDefault(),
		CreatedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, reminder.ErrEventOrUserDoesNotExist) {
			s.log.Info(ctx, "Event or user not found.", logging.Entry("input", input))
		} else {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder successfully created.", logging.Entry("reminder", rem))
	result.Reminder = rem
	return result, nil
}
