package gcalendar

import "time"

// ReminderRequest is the input for creating a care reminder event.
type ReminderRequest struct {
	CalendarID string // defaults to "primary"
	PlantName  string
	Action     string // "Water", "Fertilize"
	DueAt      time.Time
	Note       string
	Timezone   string // e.g. "Europe/Amsterdam"
}

// Reminder is a simplified representation of a created calendar event.
type Reminder struct {
	ID       string
	Summary  string
	HtmlLink string
	DueAt    time.Time
}
