package updatereminder

import (
	"context"
	"errors"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"
	uow "volunteercal/internal/core/domain/unit_of_work"
	"volunteercal/internal/core/domain/user"
	"volunteercal/internal/core/services"
	"volunteercal/internal/core/services/auth"
)

type Input struct {
	UserID           user.ID
	ReminderID       reminder.ID
	DoRemindAtUpdate bool
	RemindAt         time.Time
	DoChannelUpdate  bool
	Channel          reminder.Channel
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
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	return &service{
		log:        log,
		unitOfWork: unitOfWork,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.DoRemindAtUpdate && input.RemindAt.IsZero() {
		return result, reminder.ErrRemindAtNotSet
	}
	if input.DoChannelUpdate && input.Channel == reminder.ChannelUnknown {
		return result, reminder.ErrInvalidChannel
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	reminderRepository := uow.Reminders()
	if err := reminderRepository.Lock(ctx, input.ReminderID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	rem, err := reminderRepository.GetByID(ctx, input.ReminderID)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrReminderDoesNotExist):
			s.log.Info(ctx, "Reminder not found.", logging.Entry("input", input))
		default:
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	if rem.UserID != input.UserID {
		s.log.Info(ctx, "Reminder belongs to another user.", logging.Entry("input", input))
		return result, reminder.ErrReminderPermission
	}
	if rem.Sent {
		s.log.Info(ctx, "Reminder is already sent and can't be updated.", logging.Entry("input", input))
		return result, reminder.ErrReminderAlreadySent
	}

	updatedReminder, err := reminderRepository.Update(ctx, reminder.UpdateInput{
		ID:               input.ReminderID,
		DoRemindAtUpdate: input.DoRemindAtUpdate,
		RemindAt:         input.RemindAt.UTC(),
		DoChannelUpdate:  input.DoChannelUpdate,
		Channel:          input.Channel,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully updated.",
		logging.Entry("input", input),
		logging.Entry("reminder", updatedReminder),
	)
	result.Reminder = updatedReminder
	return result, nil
}
