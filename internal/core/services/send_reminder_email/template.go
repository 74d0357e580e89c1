package sendreminderemail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"volunteercal/internal/core/domain/email"
	"volunteercal/internal/core/domain/event"
)

const defaultRecipientName = "Volunteer"

var reminderTemplate = template.Must(template.New("reminder").Parse(`<div style="font-family: sans-serif; max-width: 520px; margin: 0 auto;">
  <h2 style="color: #4F46E5;">Upcoming Event Reminder</h2>
  <p>Hi {{.Name}},</p>
  <p>This is a friendly reminder that you're signed up for:</p>
  <div style="background: #F3F4F6; border-radius: 8px; padding: 16px; margin: 16px 0;">
    <strong style="font-size: 16px;">{{.Title}}</strong>
    {{- if .Start}}<br/>
    <span style="color: #6B7280;">{{.Start}}</span>
    {{- end}}
    {{- if .Location}}<br/>
    <span style="color: #6B7280;">Location: {{.Location}}</span>
    {{- end}}
  </div>
  <p>Thank you for volunteering!</p>
  <p style="color: #9CA3AF; font-size: 12px;">The VolunteerCal Team</p>
</div>
`))

type templateData struct {
	Name     string
	Title    string
	Start    string
	Location string
}

func newTemplateData(input email.ReminderEmail) templateData {
	data := templateData{
		Name:     input.RecipientName.ValueOr(defaultRecipientName),
		Title:    input.EventTitle,
		Location: input.EventLocation.ValueOr(""),
	}
	// An unknown start is left out rather than rendered as year one.
	if !input.EventStart.IsZero() {
		data.Start = event.HumanTime(input.EventStart)
	}
	return data
}

func renderHTML(input email.ReminderEmail) (string, error) {
	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, newTemplateData(input)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderText(input email.ReminderEmail) string {
	data := newTemplateData(input)
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", data.Name)
	b.WriteString("This is a friendly reminder that you're signed up for:\n\n")
	fmt.Fprintf(&b, "%s\n", data.Title)
	if data.Start != "" {
		fmt.Fprintf(&b, "%s\n", data.Start)
	}
	if data.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", data.Location)
	}
	b.WriteString("\nThank you for volunteering!\nThe VolunteerCal Team\n")
	return b.String()
}

func subject(input email.ReminderEmail) string {
	return "Reminder: " + input.EventTitle
}
