package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	c "volunteercal/internal/core/domain/common"
)

var (
	ErrInvalidInput   = errors.New("missing required fields")
	ErrNotConfigured  = errors.New("email provider not configured")
	ErrDeliveryFailed = errors.New("email delivery failed")
)

// DeliveryError carries the provider's response for diagnostics.
type DeliveryError struct {
	StatusCode int
	Details    string
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", ErrDeliveryFailed, e.Details)
	}
	return fmt.Sprintf("%s: status %d: %s", ErrDeliveryFailed, e.StatusCode, e.Details)
}

func (e *DeliveryError) Unwrap() error {
	return ErrDeliveryFailed
}

// ReminderEmail is the resolved context needed to email one reminder.
type ReminderEmail struct {
	ReminderID     string
	RecipientEmail c.Email
	RecipientName  c.Optional[string]
	EventTitle     string
	EventStart     time.Time
	EventLocation  c.Optional[string]
}

type Address struct {
	Name  string
	Email c.Email
}

func (a Address) String() string {
	if a.Name == "" {
		return string(a.Email)
	}
	// Display names are quoted so commas and quotes in them stay part of the name.
	return (&mail.Address{Name: a.Name, Address: string(a.Email)}).String()
}

type Message struct {
	From    Address
	To      Address
	Subject string
	HTML    string
	Text    string
	// Reference identifies the reminder the message was rendered for.
	Reference string
}

// Transport submits one message to an external provider, exactly once.
type Transport interface {
	Send(ctx context.Context, m Message) error
}
