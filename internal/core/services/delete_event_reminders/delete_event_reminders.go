package deleteeventreminders

import (
	"context"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	uow "volunteercal/internal/core/domain/unit_of_work"
	"volunteercal/internal/core/services"
)

type Input struct {
	EventID event.ID
}

type Result struct {
	DeletedCount uint
}

type service struct {
	log        logging.Logger
	unitOfWork uow.UnitOfWork
}

// New returns the service used when an event is cancelled. Deleting the
// reminders of an event that has none is not an error.
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
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	defer uow.Rollback(ctx)

	count, err := uow.Reminders().DeleteByEvent(ctx, input.EventID)
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
		"Event reminders deleted.",
		logging.Entry("eventID", input.EventID),
		logging.Entry("count", count),
	)
	result.DeletedCount = count
	return result, nil
}
