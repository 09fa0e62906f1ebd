package store

import (
	"math"
	"sort"

	"backend-queue/internal/models"
)

// fallbackMinutesPerToken is used for the wait estimate until there is
// served history to average over.
const fallbackMinutesPerToken = 5

// WaitDuration returns the elapsed wait of a served token in minutes.
// Negative elapsed time (clock skew) clamps to zero, as does a token
// without a served timestamp.
func WaitDuration(t models.Token) float64 {
	if t.ServedAt == nil {
		return 0
	}
	d := t.ServedAt.Sub(t.CreatedAt)
	if d < 0 {
		return 0
	}
	return d.Minutes()
}

// AverageWaitMinutes is the mean wait over served tokens, rounded to whole
// minutes. Zero-duration samples still count toward the mean. Returns 0
// when nothing has been served.
func AverageWaitMinutes(served []models.Token) int {
	if len(served) == 0 {
		return 0
	}
	var sum float64
	for _, t := range served {
		sum += WaitDuration(t)
	}
	return int(math.Round(sum / float64(len(served))))
}

// EstimateWaitMinutes is the wait shown to a user joining the queue:
// waiting count times the average service pace, with a conservative
// 5-minute fallback when there is no history yet.
func EstimateWaitMinutes(waitingCount, averageWaitMinutes int) int {
	perToken := averageWaitMinutes
	if perToken <= 0 {
		perToken = fallbackMinutesPerToken
	}
	return waitingCount * perToken
}

// ComputeTimings summarizes recently served tokens: min, max, mean and
// median wait in minutes, each rounded to two decimals. Zero durations
// (missing timestamps, clamped skew) are excluded from the summary but
// still count in TotalServed.
func ComputeTimings(served []models.Token) models.Timings {
	durations := make([]float64, 0, len(served))
	for _, t := range served {
		if d := WaitDuration(t); d > 0 {
			durations = append(durations, d)
		}
	}

	timings := models.Timings{TotalServed: len(served)}
	if len(durations) == 0 {
		return timings
	}

	sort.Float64s(durations)

	var sum float64
	for _, d := range durations {
		sum += d
	}

	n := len(durations)
	var median float64
	if n%2 == 0 {
		median = (durations[n/2-1] + durations[n/2]) / 2
	} else {
		median = durations[n/2]
	}

	timings.MinTime = Round2(durations[0])
	timings.MaxTime = Round2(durations[n-1])
	timings.AverageTime = Round2(sum / float64(n))
	timings.MedianTime = Round2(median)
	return timings
}

// ServedEntries maps served tokens to the recent-served dashboard rows.
func ServedEntries(served []models.Token) []models.ServedEntry {
	entries := make([]models.ServedEntry, 0, len(served))
	for _, t := range served {
		var duration float64
		if t.ServedAt != nil {
			duration = Round2(t.ServedAt.Sub(t.CreatedAt).Minutes())
		}
		entries = append(entries, models.ServedEntry{
			TokenNumber:         t.TokenNumber,
			ServiceType:         t.ServiceType,
			Duration:            duration,
			ServedAt:            t.ServedAt,
			AssignedServiceTime: t.AssignedServiceTime,
		})
	}
	return entries
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
