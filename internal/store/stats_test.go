package store

import (
	"testing"
	"time"

	"backend-queue/internal/models"
)

func servedToken(number int64, waited time.Duration) models.Token {
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	served := created.Add(waited)
	return models.Token{
		TokenNumber: number,
		ServiceType: "General",
		Status:      models.StatusServed,
		CreatedAt:   created,
		ServedAt:    &served,
	}
}

func TestWaitDuration(t *testing.T) {
	if got := WaitDuration(servedToken(1, 4*time.Minute)); got != 4 {
		t.Fatalf("WaitDuration = %v, want 4", got)
	}

	// Clock skew clamps to zero.
	if got := WaitDuration(servedToken(1, -3*time.Minute)); got != 0 {
		t.Fatalf("WaitDuration with negative elapsed = %v, want 0", got)
	}

	// Not yet served.
	if got := WaitDuration(models.Token{Status: models.StatusWaiting}); got != 0 {
		t.Fatalf("WaitDuration without servedAt = %v, want 0", got)
	}
}

func TestAverageWaitMinutes(t *testing.T) {
	cases := []struct {
		name   string
		served []models.Token
		want   int
	}{
		{"no served tokens", nil, 0},
		{"even spread", []models.Token{
			servedToken(1, 2*time.Minute),
			servedToken(2, 4*time.Minute),
			servedToken(3, 6*time.Minute),
			servedToken(4, 8*time.Minute),
		}, 5},
		{"rounds to whole minutes", []models.Token{
			servedToken(1, 2*time.Minute),
			servedToken(2, 3*time.Minute),
		}, 3},
		{"negative elapsed counts as zero", []models.Token{
			servedToken(1, 4*time.Minute),
			servedToken(2, -10*time.Minute),
		}, 2},
	}

	for _, tt := range cases {
		if got := AverageWaitMinutes(tt.served); got != tt.want {
			t.Fatalf("%s: AverageWaitMinutes = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestEstimateWaitMinutes(t *testing.T) {
	cases := []struct {
		waiting int
		avg     int
		want    int
	}{
		{4, 7, 28},
		{4, 0, 20}, // 5-minute fallback until history exists
		{0, 7, 0},
		{3, 1, 3},
	}

	for _, tt := range cases {
		if got := EstimateWaitMinutes(tt.waiting, tt.avg); got != tt.want {
			t.Fatalf("EstimateWaitMinutes(%d, %d) = %d, want %d", tt.waiting, tt.avg, got, tt.want)
		}
	}
}

func TestComputeTimings(t *testing.T) {
	served := []models.Token{
		servedToken(1, 2*time.Minute),
		servedToken(2, 4*time.Minute),
		servedToken(3, 6*time.Minute),
		servedToken(4, 8*time.Minute),
	}

	timings := ComputeTimings(served)
	if timings.MinTime != 2 || timings.MaxTime != 8 {
		t.Fatalf("min/max = %v/%v, want 2/8", timings.MinTime, timings.MaxTime)
	}
	if timings.AverageTime != 5 {
		t.Fatalf("average = %v, want 5", timings.AverageTime)
	}
	if timings.MedianTime != 5 {
		t.Fatalf("even median = %v, want 5", timings.MedianTime)
	}
	if timings.TotalServed != 4 {
		t.Fatalf("totalServed = %d, want 4", timings.TotalServed)
	}
}

func TestComputeTimingsOddMedian(t *testing.T) {
	served := []models.Token{
		servedToken(1, 6*time.Minute),
		servedToken(2, 2*time.Minute),
		servedToken(3, 4*time.Minute),
	}

	if got := ComputeTimings(served).MedianTime; got != 4 {
		t.Fatalf("odd median = %v, want 4", got)
	}
}

func TestComputeTimingsRounding(t *testing.T) {
	served := []models.Token{servedToken(1, 100*time.Second)}

	timings := ComputeTimings(served)
	if timings.MinTime != 1.67 || timings.MaxTime != 1.67 {
		t.Fatalf("rounded min/max = %v/%v, want 1.67", timings.MinTime, timings.MaxTime)
	}
}

func TestComputeTimingsFiltersZeroDurations(t *testing.T) {
	served := []models.Token{
		servedToken(1, 4*time.Minute),
		servedToken(2, -1*time.Minute), // clamped, excluded from summary
		{Status: models.StatusServed},  // no servedAt, excluded
	}

	timings := ComputeTimings(served)
	if timings.TotalServed != 3 {
		t.Fatalf("totalServed = %d, want 3", timings.TotalServed)
	}
	if timings.MinTime != 4 || timings.AverageTime != 4 {
		t.Fatalf("summary over nonzero durations = %+v", timings)
	}
}

func TestComputeTimingsEmpty(t *testing.T) {
	timings := ComputeTimings(nil)
	if timings.MinTime != 0 || timings.MaxTime != 0 || timings.AverageTime != 0 || timings.MedianTime != 0 {
		t.Fatalf("empty timings = %+v, want zeros", timings)
	}
}

func TestServedEntries(t *testing.T) {
	minutes := 12.5
	token := servedToken(7, 90*time.Second)
	token.AssignedServiceTime = &minutes

	entries := ServedEntries([]models.Token{token})
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].TokenNumber != 7 || entries[0].Duration != 1.5 {
		t.Fatalf("entry = %+v", entries[0])
	}
	if entries[0].AssignedServiceTime == nil || *entries[0].AssignedServiceTime != 12.5 {
		t.Fatalf("assigned service time not carried over: %+v", entries[0])
	}
}
