package usecase

import (
	"plant-care-management/internal/care/repository"
	"plant-care-management/internal/suggestion"
	"plant-care-management/pkg/gcalendar"
	pkgLog "plant-care-management/pkg/log"
)

// CalendarConfig points care reminders at one calendar.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	suggestions suggestion.UseCase
	calendar    *gcalendar.Client // nil disables calendar reminders
	calendarCfg CalendarConfig
}

// New creates a new care UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, suggestions suggestion.UseCase, calendar *gcalendar.Client, calendarCfg CalendarConfig) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		suggestions: suggestions,
		calendar:    calendar,
		calendarCfg: calendarCfg,
	}
}
