package response

import (
	"time"

	"volunteercal/internal/core/domain/reminder"
)

type Reminder struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	RemindAt  time.Time `json:"remind_at"`
	Channel   string    `json:"channel"`
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = string(dr.ID)
	r.EventID = string(dr.EventID)
	r.UserID = string(dr.UserID)
	r.RemindAt = dr.RemindAt
	r.Channel = dr.Channel.String()
	r.Sent = dr.Sent
	r.CreatedAt = dr.CreatedAt
}

func Reminders(drs []reminder.Reminder) []Reminder {
	reminders := make([]Reminder, 0, len(drs))
	for _, dr := range drs {
		r := Reminder{}
		r.FromDomainType(dr)
		reminders = append(reminders, r)
	}
	return reminders
}
