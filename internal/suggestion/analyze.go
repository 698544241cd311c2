package suggestion

import (
	"math"
	"sort"

	"plant-care-management/internal/model"
	"plant-care-management/pkg/daymath"
)

// Policy constants for the schedule analysis.
const (
	// MinEventsRequired is the minimum history size before anything is
	// proposed; fewer events always yield no suggestion.
	MinEventsRequired = 4
	// MinDifferenceDays is the smallest gap between observed and configured
	// interval worth surfacing; smaller deltas are treated as noise.
	MinDifferenceDays = 2
	// MaxReasonableGapDays drops absurd gaps (abandoned tracking, data
	// imports) before analysis.
	MaxReasonableGapDays = 90
	// CooldownDays suppresses re-proposing a dismissed value for the same
	// plant/care-kind pair.
	CooldownDays = 30

	// minFilteredGaps is the floor of surviving gaps after outlier removal.
	// At exactly this floor a proposal is still made but without a
	// confidence estimate.
	minFilteredGaps = 3
)

// Analyze examines a plant's care history against its configured interval
// and decides whether a different interval fits observed behavior better.
// Events must be ordered ascending by time. Deterministic: identical input
// always yields identical output.
//
// Method: gaps between consecutive events, IQR outlier fences (1.5×IQR),
// then the rounded median of surviving gaps. Confidence is
// clamp01((100 − 8·stddev + min(10, n)) / 100); it rises with more data and
// falls with variance, and is withheld entirely at the minimum sample size.
func Analyze(events []model.CareEvent, currentIntervalDays int) (Analysis, error) {
	if currentIntervalDays <= 0 {
		return Analysis{}, ErrInvalidInterval
	}
	if len(events) < MinEventsRequired {
		return Analysis{}, nil
	}

	gaps := interEventGaps(events)
	if len(gaps) < minFilteredGaps {
		return Analysis{DataPointsUsed: len(gaps)}, nil
	}

	filtered := removeOutliersIQR(gaps)
	if len(filtered) < minFilteredGaps {
		return Analysis{DataPointsUsed: len(filtered)}, nil
	}

	medianInterval := int(math.Round(median(filtered)))
	result := Analysis{
		MedianInterval: medianInterval,
		DataPointsUsed: len(filtered),
	}

	if abs(medianInterval-currentIntervalDays) < MinDifferenceDays {
		return result, nil
	}

	result.ShouldSuggest = true
	result.SuggestedDays = medianInterval
	if len(filtered) > minFilteredGaps {
		c := confidence(filtered)
		result.Confidence = &c
	}
	return result, nil
}

// interEventGaps returns the day gaps between consecutive events, keeping
// only gaps in [1, MaxReasonableGapDays].
func interEventGaps(events []model.CareEvent) []float64 {
	var gaps []float64
	for i := 1; i < len(events); i++ {
		d := daymath.DaysBetween(events[i-1].PerformedAt, events[i].PerformedAt)
		if d > 0 && d <= MaxReasonableGapDays {
			gaps = append(gaps, float64(d))
		}
	}
	return gaps
}

// removeOutliersIQR drops values outside Q1−1.5·IQR .. Q3+1.5·IQR.
// With fewer than 4 values or a zero IQR there is nothing to trim.
func removeOutliersIQR(values []float64) []float64 {
	if len(values) < 4 {
		return values
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	q1 := median(sorted[:len(sorted)/2])
	q3 := median(sorted[(len(sorted)+1)/2:])
	iqr := q3 - q1
	if iqr == 0 {
		return values
	}

	lower := q1 - 1.5*iqr
	upper := q3 + 1.5*iqr

	var kept []float64
	for _, v := range values {
		if v >= lower && v <= upper {
			kept = append(kept, v)
		}
	}
	return kept
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(values)))
}

// confidence maps gap consistency to [0,1]: a steady pattern scores high,
// a noisy one low, with a small bonus for larger samples.
func confidence(gaps []float64) float64 {
	bonus := math.Min(10, float64(len(gaps)))
	raw := (100 - stdDev(gaps)*8 + bonus) / 100
	return math.Max(0, math.Min(1, raw))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
