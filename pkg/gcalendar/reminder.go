package gcalendar

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/calendar/v3"
)

// CreateCareReminder creates an all-day calendar event on the care due date,
// e.g. "Water Monstera". Care reminders are day-granularity, so the event
// carries a date rather than a datetime.
func (c *Client) CreateCareReminder(ctx context.Context, req ReminderRequest) (*Reminder, error) {
	if strings.TrimSpace(req.PlantName) == "" {
		return nil, fmt.Errorf("plant name is required")
	}

	summary := fmt.Sprintf("%s %s", req.Action, req.PlantName)
	dueDate := req.DueAt.Format("2006-01-02")

	event := &calendar.Event{
		Summary:     summary,
		Description: req.Note,
		Start: &calendar.EventDateTime{
			Date:     dueDate,
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			Date:     dueDate,
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create care reminder: %w", err)
	}

	return &Reminder{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		DueAt:    req.DueAt,
	}, nil
}
