package domain_test

import (
	"testing"
	"time"

	"jejum/internal/modules/progression/domain"
)

func TestComputeXP(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		hours     float64
		completed bool
		want      int
	}{
		{"incomplete fast earns hourly xp only", 16, false, 160},
		{"completed 16h fast", 16, true, 210},
		{"completed fast over 24h gets both bonuses", 25, true, 350},
		{"exactly 24h gets completion bonus only", 24, true, 290},
		{"fractional hours floor", 1.99, false, 19},
		{"zero hours", 0, false, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.ComputeXP(tc.hours, tc.completed); got != tc.want {
				t.Fatalf("ComputeXP(%v, %t) = %d, want %d", tc.hours, tc.completed, got, tc.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()
	cases := []struct{ xp, want int }{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
	}
	for _, tc := range cases {
		tc := tc
		if got := domain.Level(tc.xp); got != tc.want {
			t.Fatalf("Level(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestDaysBetweenCountsFullPeriods(t *testing.T) {
	t.Parallel()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		gap  time.Duration
		want int
	}{
		{"same instant", 0, 0},
		{"23h is zero days", 23 * time.Hour, 0},
		{"exactly 24h is one day", 24 * time.Hour, 1},
		{"47h is one day", 47 * time.Hour, 1},
		{"49h is two days", 49 * time.Hour, 2},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.DaysBetween(base.Add(tc.gap), base); got != tc.want {
				t.Fatalf("DaysBetween = %d, want %d", got, tc.want)
			}
			// Symmetric in argument order.
			if got := domain.DaysBetween(base, base.Add(tc.gap)); got != tc.want {
				t.Fatalf("DaysBetween reversed = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestUpdateStreak(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		previous int
		lastFast time.Time
		want     int
	}{
		{"first ever fast starts at one", 0, time.Time{}, 1},
		{"next day increments", 4, now.Add(-26 * time.Hour), 5},
		{"same day keeps streak", 4, now.Add(-5 * time.Hour), 4},
		{"same day from zero still starts", 0, now.Add(-5 * time.Hour), 1},
		{"two day gap resets", 9, now.Add(-49 * time.Hour), 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.UpdateStreak(tc.previous, tc.lastFast, now); got != tc.want {
				t.Fatalf("UpdateStreak(%d) = %d, want %d", tc.previous, got, tc.want)
			}
		})
	}
}
