package domain_test

import (
	"math"
	"testing"
	"time"

	"jejum/internal/modules/profile/domain"
	"jejum/internal/platform/instant"
)

func TestAppendWeightReplacesSameDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	evening := morning.Add(10 * time.Hour)

	history := domain.AppendWeight(nil, 82.5, morning)
	if len(history) != 1 {
		t.Fatalf("len = %d, want 1", len(history))
	}

	history = domain.AppendWeight(history, 82.1, evening)
	if len(history) != 1 {
		t.Fatalf("same-day append: len = %d, want 1", len(history))
	}
	if history[0].Weight != 82.1 {
		t.Errorf("weight = %v, want 82.1", history[0].Weight)
	}
	if !history[0].Date.Time.Equal(evening) {
		t.Errorf("date = %v, want %v", history[0].Date.Time, evening)
	}
}

func TestAppendWeightNewDay(t *testing.T) {
	t.Parallel()

	day1 := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	day2 := day1.Add(25 * time.Hour)

	history := domain.AppendWeight(nil, 82.5, day1)
	history = domain.AppendWeight(history, 82.0, day2)

	if len(history) != 2 {
		t.Fatalf("len = %d, want 2", len(history))
	}
	if history[0].Weight != 82.5 || history[1].Weight != 82.0 {
		t.Errorf("history = %+v", history)
	}
}

func TestAppendWeightDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	original := []domain.WeightEntry{{Date: instant.Of(now), Weight: 90}}

	domain.AppendWeight(original, 85, now.Add(time.Hour))

	if original[0].Weight != 90 {
		t.Errorf("input slice mutated: %+v", original)
	}
}

func TestBMIFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		weight    float64
		height    float64
		wantValue float64
		wantLabel string
	}{
		{"centimetres", 80, 180, 24.69, "Peso normal"},
		{"metres", 80, 1.80, 24.69, "Peso normal"},
		{"underweight", 50, 175, 16.33, "Abaixo do peso"},
		{"overweight", 90, 175, 29.39, "Sobrepeso"},
		{"obese", 100, 170, 34.60, "Obesidade"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.BMIFor(tt.weight, tt.height)
			if err != nil {
				t.Fatalf("BMIFor: %v", err)
			}
			if math.Abs(got.Value-tt.wantValue) > 0.01 {
				t.Errorf("value = %.2f, want %.2f", got.Value, tt.wantValue)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestBMIForRejectsZeroReadings(t *testing.T) {
	t.Parallel()

	if _, err := domain.BMIFor(0, 180); err == nil {
		t.Error("zero weight: want error")
	}
	if _, err := domain.BMIFor(80, 0); err == nil {
		t.Error("zero height: want error")
	}
}

func TestGoalProgress(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := []domain.WeightEntry{{Date: instant.Of(start), Weight: 90}}

	tests := []struct {
		name    string
		current float64
		target  float64
		want    float64
	}{
		{"halfway", 85, 80, 50},
		{"reached", 80, 80, 100},
		{"beyond target clamps", 75, 80, 100},
		{"moved away clamps", 95, 80, 0},
		{"no target", 85, 0, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := domain.GoalProgress(history, tt.current, tt.target)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("GoalProgress(%v, %v) = %v, want %v", tt.current, tt.target, got, tt.want)
			}
		})
	}

	if got := domain.GoalProgress(nil, 85, 80); got != 0 {
		t.Errorf("empty history: got %v, want 0", got)
	}
}
