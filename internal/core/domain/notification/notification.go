package notification

import (
	"errors"
	"time"

	c "volunteercal/internal/core/domain/common"
	"volunteercal/internal/core/domain/event"
	"volunteercal/internal/core/domain/user"
)

var (
	ErrNotificationDoesNotExist = errors.New("notification does not exist")
	ErrParseType                = errors.New("invalid notification type")
)

type ID string

type GroupID string

type Type struct {
	v string
}

var (
	TypeUnknown            = Type{}
	TypeEventReminder      = Type{v: "event_reminder"}
	TypeEventUpdate        = Type{v: "event_update"}
	TypeEventCancelled     = Type{v: "event_cancelled"}
	TypeGroupInvite        = Type{v: "group_invite"}
	TypeNewMember          = Type{v: "new_member"}
	TypeSignupConfirmation = Type{v: "signup_confirmation"}
)

func ParseType(value string) (Type, error) {
	switch value {
	case "event_reminder":
		return TypeEventReminder, nil
	case "event_update":
		return TypeEventUpdate, nil
	case "event_cancelled":
		return TypeEventCancelled, nil
	case "group_invite":
		return TypeGroupInvite, nil
	case "new_member":
		return TypeNewMember, nil
	case "signup_confirmation":
		return TypeSignupConfirmation, nil
	default:
		return TypeUnknown, ErrParseType
	}
}

func (t Type) String() string {
	return t.v
}

type Notification struct {
	ID             ID
	UserID         user.ID
	Type           Type
	Title          string
	Message        c.Optional[string]
	RelatedEventID c.Optional[event.ID]
	RelatedGroupID c.Optional[GroupID]
	IsRead         bool
	CreatedAt      time.Time
}
