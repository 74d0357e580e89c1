package schedulereminders

import (
	"context"
	"time"

	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/services"
)

// Recorder receives pass statistics.
type Recorder interface {
	ObservePass(duration time.Duration, err error)
	AddReminders(outcome string, count int)
}

type metricsService struct {
	recorder Recorder
	inner    services.Service[Input, Result]
	now      func() time.Time
}

func WithMetrics(
	recorder Recorder,
	inner services.Service[Input, Result],
	now func() time.Time,
) services.Service[Input, Result] {
	if recorder == nil {
		panic(e.NewNilArgumentError("recorder"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &metricsService{recorder: recorder, inner: inner, now: now}
}

func (s *metricsService) Run(ctx context.Context, input Input) (Result, error) {
	startedAt := s.now()
	result, err := s.inner.Run(ctx, input)
	s.recorder.ObservePass(s.now().Sub(startedAt), err)
	if err != nil {
		return result, err
	}
	s.recorder.AddReminders("processed", result.Processed)
	s.recorder.AddReminders("in_app_sent", result.InAppSent)
	s.recorder.AddReminders("email_sent", result.EmailSent)
	s.recorder.AddReminders("email_failed", result.EmailFailed)
	s.recorder.AddReminders("orphaned", result.Orphaned)
	s.recorder.AddReminders("skipped", result.Skipped)
	s.recorder.AddReminders("failed", result.Failed)
	return result, nil
}
