package schedulereminders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	c "volunteercal/internal/core/domain/common"
	e "volunteercal/internal/core/domain/errors"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/logging"
	"volunteercal/internal/core/domain/notification"
	"volunteercal/internal/core/domain/profile"
	"volunteercal/internal/core/domain/reminder"
	"volunteercal/internal/core/services"
	sendreminderemail "volunteercal/internal/core/services/send_reminder_email"
)

// markSentTimeout bounds the sent transition once delivery has been attempted.
const markSentTimeout = 5 * time.Second

type Input struct{}

type Result struct {
	Processed   int
	InAppSent   int
	EmailSent   int
	EmailFailed int
	Orphaned    int
	Skipped     int
	Failed      int
}

type Config struct {
	BatchSize   uint
	Workers     int
	PassTimeout time.Duration
}

type service struct {
	log           logging.Logger
	reminders     reminder.Repository
	notifications notification.Repository
	events        event.Repository
	profiles      profile.Repository
	claimer       reminder.Claimer
	publisher     notification.Publisher
	sendEmail     services.Service[sendreminderemail.Input, sendreminderemail.Result]
	now           func() time.Time
	config        Config
}

func New(
	log logging.Logger,
	reminders reminder.Repository,
	notifications notification.Repository,
	events event.Repository,
	profiles profile.Repository,
	claimer reminder.Claimer,
	publisher notification.Publisher,
	sendEmail services.Service[sendreminderemail.Input, sendreminderemail.Result],
	now func() time.Time,
	config Config,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if notifications == nil {
		panic(e.NewNilArgumentError("notifications"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	if profiles == nil {
		panic(e.NewNilArgumentError("profiles"))
	}
	if claimer == nil {
		panic(e.NewNilArgumentError("claimer"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if sendEmail == nil {
		panic(e.NewNilArgumentError("sendEmail"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if config.BatchSize == 0 {
		config.BatchSize = reminder.BatchSize
	}
	if config.Workers <= 0 {
		config.Workers = 1
	}
	return &service{
		log:           log,
		reminders:     reminders,
		notifications: notifications,
		events:        events,
		profiles:      profiles,
		claimer:       claimer,
		publisher:     publisher,
		sendEmail:     sendEmail,
		now:           now,
		config:        config,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if s.config.PassTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.PassTimeout)
		defer cancel()
	}

	now := s.now()
	due, err := s.reminders.ListDue(ctx, now, s.config.BatchSize)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("now", now))
		return result, err
	}
	if len(due) == 0 {
		s.log.Debug(ctx, "No reminders due.", logging.Entry("now", now))
		return result, nil
	}
	s.log.Info(ctx, "Got due reminders.", logging.Entry("count", len(due)))

	outcomes := make([]outcome, len(due))
	semaphore := make(chan struct{}, s.config.Workers)
	var wg sync.WaitGroup
	for ix := range due {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(ix int) {
			defer wg.Done()
			defer func() { <-semaphore }()
			outcomes[ix] = s.process(ctx, due[ix], now)
		}(ix)
	}
	wg.Wait()

	result.Processed = len(due)
	for _, o := range outcomes {
		result.add(o)
	}
	s.log.Info(
		ctx,
		"Reminder pass finished.",
		logging.Entry("processed", result.Processed),
		logging.Entry("inAppSent", result.InAppSent),
		logging.Entry("emailSent", result.EmailSent),
		logging.Entry("emailFailed", result.EmailFailed),
		logging.Entry("orphaned", result.Orphaned),
		logging.Entry("skipped", result.Skipped),
		logging.Entry("failed", result.Failed),
	)
	return result, nil
}

type outcome struct {
	inAppSent   bool
	emailSent   bool
	emailFailed bool
	orphaned    bool
	skipped     bool
	failed      bool
}

func (r *Result) add(o outcome) {
	if o.inAppSent {
		r.InAppSent++
	}
	if o.emailSent {
		r.EmailSent++
	}
	if o.emailFailed {
		r.EmailFailed++
	}
	if o.orphaned {
		r.Orphaned++
	}
	if o.skipped {
		r.Skipped++
	}
	if o.failed {
		r.Failed++
	}
}

// process handles one due reminder. It never returns an error: every failure
// is folded into the outcome so that one reminder cannot abort the pass.
func (s *service) process(ctx context.Context, rem reminder.Reminder, now time.Time) (o outcome) {
	if ctx.Err() != nil {
		s.log.Warning(ctx, "Pass deadline reached, reminder is left for the next pass.", logging.Entry("reminderID", rem.ID))
		o.failed = true
		return o
	}

	claimed, err := s.claimer.Claim(ctx, rem.ID)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not claim reminder, processing without a lease.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("err", err),
		)
		claimed = true
	}
	if !claimed {
		s.log.Info(ctx, "Reminder is claimed by another pass, skip.", logging.Entry("reminderID", rem.ID))
		o.skipped = true
		return o
	}

	ev, prof, err := s.resolve(ctx, rem)
	if errors.Is(err, event.ErrEventDoesNotExist) || errors.Is(err, profile.ErrProfileDoesNotExist) {
		s.log.Warning(
			ctx,
			"Reminder is orphaned, retiring it.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("err", err),
		)
		o.orphaned = true
		o.failed = !s.markSent(ctx, rem)
		return o
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		if err := s.claimer.Release(ctx, rem.ID); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		}
		o.failed = true
		return o
	}

	if rem.Channel.IncludesInApp() {
		o.inAppSent = s.notify(ctx, rem, ev, now)
	}
	if rem.Channel.IncludesEmail() {
		_, err := s.sendEmail.Run(ctx, sendreminderemail.Input{
			ReminderID:     string(rem.ID),
			RecipientEmail: prof.Email,
			RecipientName:  prof.FullName,
			EventTitle:     ev.Title,
			EventStart:     ev.StartTime,
			EventLocation:  ev.Location,
		})
		if err != nil {
			s.log.Warning(
				ctx,
				"Reminder email was not delivered.",
				logging.Entry("reminderID", rem.ID),
				logging.Entry("err", err),
			)
			o.emailFailed = true
		} else {
			o.emailSent = true
		}
	}

	o.failed = !s.markSent(ctx, rem)
	return o
}

func (s *service) resolve(ctx context.Context, rem reminder.Reminder) (event.Event, profile.Profile, error) {
	ev, err := s.events.GetByID(ctx, rem.EventID)
	if err != nil {
		return ev, profile.Profile{}, err
	}
	prof, err := s.profiles.GetByID(ctx, rem.UserID)
	return ev, prof, err
}

func (s *service) notify(ctx context.Context, rem reminder.Reminder, ev event.Event, now time.Time) bool {
	n, err := s.notifications.Create(ctx, notification.CreateInput{
		UserID:         rem.UserID,
		Type:           notification.TypeEventReminder,
		Title:          "Reminder: " + ev.Title,
		Message:        c.NewOptional(reminderMessage(ev), true),
		RelatedEventID: c.NewOptional(ev.ID, true),
		CreatedAt:      now,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false
	}
	if err := s.publisher.PublishNotification(ctx, n); err != nil {
		s.log.Warning(
			ctx,
			"Could not publish notification.",
			logging.Entry("notificationID", n.ID),
			logging.Entry("err", err),
		)
	}
	return true
}

func (s *service) markSent(ctx context.Context, rem reminder.Reminder) bool {
	// Delivery has already happened, so the transition must outlive the pass deadline.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), markSentTimeout)
	defer cancel()

	transitioned, err := s.reminders.MarkSent(ctx, rem.ID)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		return false
	}
	if !transitioned {
		s.log.Warning(ctx, "Reminder was already marked as sent.", logging.Entry("reminderID", rem.ID))
	}
	return true
}

func reminderMessage(ev event.Event) string {
	return fmt.Sprintf("Your event \"%s\" starts at %s.", ev.Title, event.HumanTime(ev.StartTime))
}
