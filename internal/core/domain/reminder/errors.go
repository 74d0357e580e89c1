package reminder

import "errors"

var (
	ErrReminderDoesNotExist    = errors.New("reminder does not exist")
	ErrReminderAlreadySent     = errors.New("reminder has already been sent")
	ErrReminderPermission      = errors.New("reminder belongs to another user")
	ErrEventOrUserDoesNotExist = errors.New("reminder references unknown event or user")
	ErrRemindAtNotSet          = errors.New("reminder time is not set")
)
