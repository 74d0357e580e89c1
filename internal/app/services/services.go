package services

import (
	"volunteercal/internal/app/deps"
	"volunteercal/internal/core/services"
	"volunteercal/internal/core/services/auth"
	countunreadnotifications "volunteercal/internal/core/services/count_unread_notifications"
	createdefaultreminder "volunteercal/internal/core/services/create_default_reminder"
	createreminder "volunteercal/internal/core/services/create_reminder"
	deleteeventreminders "volunteercal/internal/core/services/delete_event_reminders"
	deletenotification "volunteercal/internal/core/services/delete_notification"
	deletereminder "volunteercal/internal/core/services/delete_reminder"
	listeventreminders "volunteercal/internal/core/services/list_event_reminders"
	listnotifications "volunteercal/internal/core/services/list_notifications"
	listuserreminders "volunteercal/internal/core/services/list_user_reminders"
	markallnotificationsread "volunteercal/internal/core/services/mark_all_notifications_read"
	marknotificationread "volunteercal/internal/core/services/mark_notification_read"
	schedulereminders "volunteercal/internal/core/services/schedule_reminders"
	sendreminderemail "volunteercal/internal/core/services/send_reminder_email"
	updatereminder "volunteercal/internal/core/services/update_reminder"
)

type Services struct {
	ScheduleReminders services.Service[schedulereminders.Input, schedulereminders.Result]
	SendReminderEmail services.Service[sendreminderemail.Input, sendreminderemail.Result]

	CreateDefaultReminder services.Service[createdefaultreminder.Input, createdefaultreminder.Result]
	ListEventReminders    services.Service[listeventreminders.Input, listeventreminders.Result]
	DeleteEventReminders  services.Service[deleteeventreminders.Input, deleteeventreminders.Result]

	CreateReminder    services.Service[createreminder.Input, createreminder.Result]
	ListUserReminders services.Service[listuserreminders.Input, listuserreminders.Result]
	UpdateReminder    services.Service[updatereminder.Input, updatereminder.Result]
	DeleteReminder    services.Service[deletereminder.Input, deletereminder.Result]

	ListNotifications        services.Service[listnotifications.Input, listnotifications.Result]
	CountUnreadNotifications services.Service[countunreadnotifications.Input, countunreadnotifications.Result]
	MarkNotificationRead     services.Service[marknotificationread.Input, marknotificationread.Result]
	MarkAllNotificationsRead services.Service[markallnotificationsread.Input, markallnotificationsread.Result]
	DeleteNotification       services.Service[deletenotification.Input, deletenotification.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SendReminderEmail = sendreminderemail.New(
		deps.Logger,
		deps.EmailTransport,
		deps.EmailSender,
		deps.Config.EmailRequestTimeout,
	)
	s.ScheduleReminders = schedulereminders.WithMetrics(
		deps.Metrics,
		schedulereminders.New(
			deps.Logger,
			deps.ReminderRepository,
			deps.NotificationRepository,
			deps.EventRepository,
			deps.ProfileRepository,
			deps.ReminderClaimer,
			deps.NotificationPublisher,
			s.SendReminderEmail,
			deps.Now,
			schedulereminders.Config{
				BatchSize:   deps.Config.RemindersBatchSize,
				Workers:     deps.Config.RemindersWorkers,
				PassTimeout: deps.Config.RemindersPassTimeout,
			},
		),
		deps.Now,
	)

	s.CreateDefaultReminder = createdefaultreminder.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.Config.DefaultReminderOffset,
		deps.Now,
	)
	s.ListEventReminders = listeventreminders.New(deps.Logger, deps.ReminderRepository)
	s.DeleteEventReminders = deleteeventreminders.New(deps.Logger, deps.UnitOfWork)

	s.CreateReminder = auth.WithAuthentication(
		deps.Authenticator,
		createreminder.New(deps.Logger, deps.UnitOfWork, deps.Now),
	)
	s.ListUserReminders = auth.WithAuthentication(
		deps.Authenticator,
		listuserreminders.New(deps.Logger, deps.ReminderRepository),
	)
	s.UpdateReminder = auth.WithAuthentication(
		deps.Authenticator,
		updatereminder.New(deps.Logger, deps.UnitOfWork),
	)
	s.DeleteReminder = auth.WithAuthentication(
		deps.Authenticator,
		deletereminder.New(deps.Logger, deps.UnitOfWork),
	)

	s.ListNotifications = auth.WithAuthentication(
		deps.Authenticator,
		listnotifications.New(deps.Logger, deps.NotificationRepository),
	)
	s.CountUnreadNotifications = auth.WithAuthentication(
		deps.Authenticator,
		countunreadnotifications.New(deps.Logger, deps.NotificationRepository),
	)
	s.MarkNotificationRead = auth.WithAuthentication(
		deps.Authenticator,
		marknotificationread.New(deps.Logger, deps.NotificationRepository),
	)
	s.MarkAllNotificationsRead = auth.WithAuthentication(
		deps.Authenticator,
		markallnotificationsread.New(deps.Logger, deps.NotificationRepository),
	)
	s.DeleteNotification = auth.WithAuthentication(
		deps.Authenticator,
		deletenotification.New(deps.Logger, deps.NotificationRepository),
	)

	return s
}
