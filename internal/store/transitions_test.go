package store

import (
	"testing"

	"backend-queue/internal/models"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		from string
		next string
		ok   bool
	}{
		{models.StatusWaiting, models.StatusServing, true},
		{models.StatusServing, models.StatusServed, true},
		{models.StatusServed, "", false},
		{"unknown", "", false},
	}

	for _, tt := range cases {
		next, ok := NextStatus(tt.from)
		if next != tt.next || ok != tt.ok {
			t.Fatalf("NextStatus(%q) = (%q, %v), want (%q, %v)", tt.from, next, ok, tt.next, tt.ok)
		}
	}
}

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from  string
		to    string
		valid bool
	}{
		{models.StatusWaiting, models.StatusServing, true},
		{models.StatusServing, models.StatusServed, true},
		{models.StatusWaiting, models.StatusServed, false},
		{models.StatusServing, models.StatusWaiting, false},
		{models.StatusServed, models.StatusWaiting, false},
		{models.StatusServed, models.StatusServing, false},
		{"unknown", models.StatusServing, false},
	}

	for _, tt := range cases {
		if got := ValidTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("ValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}
