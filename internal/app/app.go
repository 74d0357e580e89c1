package app

import (
	"net/http"

	"volunteercal/internal/app/deps"
	"volunteercal/internal/app/services"
	"volunteercal/internal/http/handlers/auth"
	createdefaultreminder "volunteercal/internal/http/handlers/internalapi/create_default_reminder"
	deleteeventreminders "volunteercal/internal/http/handlers/internalapi/delete_event_reminders"
	listeventreminders "volunteercal/internal/http/handlers/internalapi/list_event_reminders"
	"volunteercal/internal/http/handlers/jobs"
	schedulereminders "volunteercal/internal/http/handlers/jobs/schedule_reminders"
	sendreminder "volunteercal/internal/http/handlers/jobs/send_reminder"
	countunreadnotifications "volunteercal/internal/http/handlers/notifications/count_unread_notifications"
	deletenotification "volunteercal/internal/http/handlers/notifications/delete_notification"
	notificationevents "volunteercal/internal/http/handlers/notifications/events"
	listnotifications "volunteercal/internal/http/handlers/notifications/list_notifications"
	markallnotificationsread "volunteercal/internal/http/handlers/notifications/mark_all_notifications_read"
	marknotificationread "volunteercal/internal/http/handlers/notifications/mark_notification_read"
	createreminder "volunteercal/internal/http/handlers/reminders/create_reminder"
	deletereminder "volunteercal/internal/http/handlers/reminders/delete_reminder"
	listuserreminders "volunteercal/internal/http/handlers/reminders/list_user_reminders"
	updatereminder "volunteercal/internal/http/handlers/reminders/update_reminder"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    deps.Config.Address(),
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	requireServiceKey := auth.RequireServiceKey(deps.ServiceKey)

	// Job endpoints answer preflight requests themselves, so they are kept
	// away from the shared CORS middleware.
	jobsRouter := chi.NewRouter()
	jobsRouter.Use(jobs.CORS)
	jobsRouter.Use(requireServiceKey)
	jobsRouter.Handle("/schedule-reminders", schedulereminders.New(s.ScheduleReminders))
	jobsRouter.Method(http.MethodPost, "/send-reminder", sendreminder.New(s.SendReminderEmail))

	internalRouter := chi.NewRouter()
	internalRouter.Use(requireServiceKey)
	internalRouter.Method(
		http.MethodPost,
		"/events/{eventID}/signups/{userID}/reminder",
		createdefaultreminder.New(s.CreateDefaultReminder),
	)
	internalRouter.Method(http.MethodGet, "/events/{eventID}/reminders", listeventreminders.New(s.ListEventReminders))
	internalRouter.Method(
		http.MethodDelete,
		"/events/{eventID}/reminders",
		deleteeventreminders.New(s.DeleteEventReminders),
	)

	reminderRouter := chi.NewRouter()
	reminderRouter.Use(auth.SetAuthTokenToContext)
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	reminderRouter.Method(http.MethodGet, "/", listuserreminders.New(s.ListUserReminders))
	reminderRouter.Method(http.MethodPatch, "/{reminderID}", updatereminder.New(s.UpdateReminder))
	reminderRouter.Method(http.MethodDelete, "/{reminderID}", deletereminder.New(s.DeleteReminder))

	notificationRouter := chi.NewRouter()
	notificationRouter.Method(
		http.MethodGet,
		"/events",
		notificationevents.New(deps.Logger, deps.SseServer, deps.Authenticator),
	)
	notificationRouter.Group(func(r chi.Router) {
		r.Use(auth.SetAuthTokenToContext)
		r.Method(http.MethodGet, "/", listnotifications.New(s.ListNotifications))
		r.Method(http.MethodGet, "/unread_count", countunreadnotifications.New(s.CountUnreadNotifications))
		r.Method(http.MethodPut, "/read", markallnotificationsread.New(s.MarkAllNotificationsRead))
		r.Method(http.MethodPut, "/{notificationID}/read", marknotificationread.New(s.MarkNotificationRead))
		r.Method(http.MethodDelete, "/{notificationID}", deletenotification.New(s.DeleteNotification))
	})

	router := chi.NewRouter()
	router.Mount("/jobs", jobsRouter)
	router.Mount("/internal", internalRouter)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	router.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.Config.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))
		r.Mount("/reminders", reminderRouter)
		r.Mount("/notifications", notificationRouter)
	})

	return router
}
