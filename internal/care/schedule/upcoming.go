package schedule

import (
	"sort"
	"time"

	"plant-care-management/internal/care"
	"plant-care-management/pkg/daymath"
)

const (
	// DefaultHorizonDays is the week-ahead window for upcoming tasks.
	DefaultHorizonDays = 7
	// DefaultUpcomingLimit caps the rendered upcoming list; the total
	// matched count is returned separately for a "+N more" affordance.
	DefaultUpcomingLimit = 6
)

// SelectUpcoming filters non-urgent tasks due within the horizon and ranks
// them soonest-first, ties broken by plant name for determinism. Returns at
// most limit entries plus the total number of matches before capping.
// Pure function of its inputs.
func SelectUpcoming(tasks []care.CareTask, now time.Time, horizonDays, limit int) ([]care.UpcomingEntry, int) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}

	var entries []care.UpcomingEntry
	for _, task := range tasks {
		if task.Status != care.StatusOK || task.DueAt == nil {
			continue
		}
		d := daymath.DaysUntil(now, *task.DueAt)
		if d <= 0 || d > horizonDays {
			continue
		}
		entries = append(entries, care.UpcomingEntry{Task: task, DaysUntilDue: d})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DaysUntilDue != entries[j].DaysUntilDue {
			return entries[i].DaysUntilDue < entries[j].DaysUntilDue
		}
		return entries[i].Task.PlantName < entries[j].Task.PlantName
	})

	total := len(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, total
}
