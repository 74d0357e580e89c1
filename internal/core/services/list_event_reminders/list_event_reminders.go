package listeventreminders

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/services"
)

type Input struct {
	EventID event.ID
}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.reminderRepository.ListByEvent(ctx, input.EventID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	result.Reminders = reminders
	return result, nil
}
