package suggestion

import (
	"errors"
	"testing"
	"time"

	"plant-care-management/internal/model"
	"plant-care-management/pkg/daymath"
)

func historyWithGaps(start time.Time, gaps []int) []model.CareEvent {
	events := []model.CareEvent{{PlantID: "p1", Kind: model.CareKindWatering, PerformedAt: start}}
	cur := start
	for _, g := range gaps {
		cur = daymath.AddDays(cur, g)
		events = append(events, model.CareEvent{PlantID: "p1", Kind: model.CareKindWatering, PerformedAt: cur})
	}
	return events
}

func TestAnalyze(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Invalid Current Interval", func(t *testing.T) {
		_, err := Analyze(historyWithGaps(start, []int{7, 7, 7}), 0)
		if !errors.Is(err, ErrInvalidInterval) {
			t.Errorf("expected ErrInvalidInterval, got %v", err)
		}
	})

	t.Run("Two Events Never Suggest", func(t *testing.T) {
		result, err := Analyze(historyWithGaps(start, []int{3}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ShouldSuggest {
			t.Errorf("expected no suggestion for 2 events")
		}
	})

	t.Run("Consistent Pattern Suggests Shorter Interval", func(t *testing.T) {
		// Watering roughly every 6-7 days against a 10-day schedule.
		result, err := Analyze(historyWithGaps(start, []int{6, 7, 6, 8, 7, 6}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.ShouldSuggest {
			t.Fatalf("expected a suggestion, got %+v", result)
		}
		if result.SuggestedDays < 6 || result.SuggestedDays > 7 {
			t.Errorf("expected proposal near 6-7 days, got %d", result.SuggestedDays)
		}
		if result.Confidence == nil {
			t.Fatalf("expected a confidence score")
		}
		if *result.Confidence <= 0 || *result.Confidence > 1 {
			t.Errorf("confidence out of bounds: %f", *result.Confidence)
		}
	})

	t.Run("Pattern Matching Schedule Stays Quiet", func(t *testing.T) {
		result, err := Analyze(historyWithGaps(start, []int{6, 7, 6, 8, 7, 6}), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ShouldSuggest {
			t.Errorf("expected no suggestion when behavior matches schedule")
		}
	})

	t.Run("Outlier Gap Removed By IQR", func(t *testing.T) {
		// One 25-day vacation gap among steady 6-7 day waterings.
		result, err := Analyze(historyWithGaps(start, []int{6, 6, 7, 7, 6, 7, 25}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.ShouldSuggest {
			t.Fatalf("expected a suggestion, got %+v", result)
		}
		if result.SuggestedDays < 6 || result.SuggestedDays > 7 {
			t.Errorf("outlier skewed the proposal: %d", result.SuggestedDays)
		}
		if result.DataPointsUsed != 6 {
			t.Errorf("expected 6 gaps after outlier removal, got %d", result.DataPointsUsed)
		}
	})

	t.Run("Minimum Sample Size Withholds Confidence", func(t *testing.T) {
		result, err := Analyze(historyWithGaps(start, []int{6, 7, 6}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.ShouldSuggest {
			t.Fatalf("expected a suggestion at minimum history")
		}
		if result.Confidence != nil {
			t.Errorf("expected nil confidence at minimum sample size, got %f", *result.Confidence)
		}
	})

	t.Run("Confidence Falls With Variance", func(t *testing.T) {
		steady, err := Analyze(historyWithGaps(start, []int{7, 7, 7, 6, 8, 7}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		noisy, err := Analyze(historyWithGaps(start, []int{4, 10, 5, 9, 4, 10}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if steady.Confidence == nil || noisy.Confidence == nil {
			t.Fatalf("expected confidence on both analyses")
		}
		if *steady.Confidence <= *noisy.Confidence {
			t.Errorf("steady pattern should score higher: %f vs %f", *steady.Confidence, *noisy.Confidence)
		}
	})

	t.Run("Confidence Rises With More Events", func(t *testing.T) {
		few, err := Analyze(historyWithGaps(start, []int{7, 6, 8, 7}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		many, err := Analyze(historyWithGaps(start, []int{7, 6, 8, 7, 7, 6, 8, 7}), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if few.Confidence == nil || many.Confidence == nil {
			t.Fatalf("expected confidence on both analyses")
		}
		if *many.Confidence < *few.Confidence {
			t.Errorf("more history should not lower confidence: %f vs %f", *many.Confidence, *few.Confidence)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		history := historyWithGaps(start, []int{6, 7, 6, 8, 7, 6})
		first, err := Analyze(history, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := Analyze(history, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.SuggestedDays != second.SuggestedDays || first.ShouldSuggest != second.ShouldSuggest {
			t.Errorf("analysis not deterministic: %+v vs %+v", first, second)
		}
		if (first.Confidence == nil) != (second.Confidence == nil) {
			t.Fatalf("confidence presence differs across runs")
		}
		if first.Confidence != nil && *first.Confidence != *second.Confidence {
			t.Errorf("confidence differs across runs: %f vs %f", *first.Confidence, *second.Confidence)
		}
	})
}
