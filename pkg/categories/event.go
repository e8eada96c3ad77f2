package categories

import (
	"strings"
	"time"

	"github.com/goliatone/go-qrgen/pkg/model"
)

const (
	FieldEventTitle       = "event_title"
	FieldEventStart       = "event_start"
	FieldEventEnd         = "event_end"
	FieldEventLocation    = "event_location"
	FieldEventDescription = "event_description"
)

const (
	// EventInputLayout is the accepted start/end format, e.g. 2025-01-01T14:00.
	EventInputLayout = "2006-01-02T15:04"
	eventStampLayout = "20060102T150405"
)

// EventHandler builds an iCalendar VEVENT block.
type EventHandler struct{}

func (EventHandler) Category() model.Category { return model.Event }

func (EventHandler) Fields() []model.FieldSpec {
	return []model.FieldSpec{
		{Key: FieldEventTitle, Kind: model.FieldKindText, Required: true},
		{Key: FieldEventStart, Kind: model.FieldKindText, Required: true},
		{Key: FieldEventEnd, Kind: model.FieldKindText},
		{Key: FieldEventLocation, Kind: model.FieldKindText},
		{Key: FieldEventDescription, Kind: model.FieldKindTextArea},
	}
}

func (EventHandler) Validate(fields model.FieldMap) error {
	if fields.Get(FieldEventTitle) == "" {
		return missing(model.Event, FieldEventTitle, "Event title is required!")
	}
	if _, err := time.Parse(EventInputLayout, fields.Get(FieldEventStart)); err != nil {
		return malformed(model.Event, FieldEventStart, "Invalid start date/time format (use YYYY-MM-DDTHH:MM)")
	}
	return nil
}

// Format returns "" when either timestamp fails to parse. The end time
// defaults to the start time.
func (EventHandler) Format(fields model.FieldMap) string {
	title := strings.TrimSpace(fields.Get(FieldEventTitle))
	start := strings.TrimSpace(fields.Get(FieldEventStart))
	if title == "" || start == "" {
		return ""
	}
	end := strings.TrimSpace(fields.Get(FieldEventEnd))
	if end == "" {
		end = start
	}

	startAt, err := time.Parse(EventInputLayout, start)
	if err != nil {
		return ""
	}
	endAt, err := time.Parse(EventInputLayout, end)
	if err != nil {
		return ""
	}

	return strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"SUMMARY:" + title,
		"DTSTART:" + startAt.Format(eventStampLayout),
		"DTEND:" + endAt.Format(eventStampLayout),
		"LOCATION:" + strings.TrimSpace(fields.Get(FieldEventLocation)),
		"DESCRIPTION:" + strings.TrimSpace(fields.Get(FieldEventDescription)),
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\n")
}
