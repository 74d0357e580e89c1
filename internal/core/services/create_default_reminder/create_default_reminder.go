package createdefaultreminder

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

	"github.com/golang-module/carbon/v2"
)

type Input struct {
	EventID        event.ID
	UserID         user.ID
	EventStartTime time.Time
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
	offset     time.Duration
	now        func() time.Time
}

// New returns the service that creates the reminder every member gets when
// signing up for an event. A zero offset means reminder.DefaultOffset.
func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	offset time.Duration,
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
	if offset <= 0 {
		offset = reminder.DefaultOffset
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
		offset:     offset,
		now:        now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.EventStartTime.IsZero() {
		return result, reminder.ErrRemindAtNotSet
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	remindAt := carbon.Time2Carbon(input.EventStartTime).
		SubMinutes(int(s.offset / time.Minute)).
		Carbon2Time().
		UTC()
	rem, err := uow.Reminders().Create(ctx, reminder.CreateInput{
		EventID:   input.EventID,
		UserID:    input.UserID,
		RemindAt:  remindAt,
		Channel:   reminder.ChannelBoth,
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

	s.log.Info(ctx, "Default reminder created.", logging.Entry("reminder", rem))
	result.Reminder = rem
	return result, nil
}
