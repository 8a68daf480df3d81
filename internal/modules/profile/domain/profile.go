package domain

import (
	"fmt"
	"time"

	"jejum/internal/platform/instant"
)

type WeightEntry struct {
	Date   instant.Instant `json:"date"`
	Weight float64         `json:"weight"`
}

// UserProfile is the singleton profile/progression record. Level is always
// derivable from CurrentXP; NextLevelXP is a cached display value.
type UserProfile struct {
	Name                      string          `json:"name"`
	Photo                     string          `json:"photo,omitempty"`
	Weight                    float64         `json:"weight"`
	WeightHistory             []WeightEntry   `json:"weightHistory"`
	TargetWeight              float64         `json:"targetWeight"`
	Height                    float64         `json:"height"`
	Level                     int             `json:"level"`
	CurrentXP                 int             `json:"currentXP"`
	NextLevelXP               int             `json:"nextLevelXP"`
	Streak                    int             `json:"streak"`
	LastFastingDate           instant.Instant `json:"lastFastingDate"`
	Theme                     string          `json:"theme"`
	OnboardingCompleted       bool            `json:"onboardingCompleted"`
	ShowSpiritualContent      bool            `json:"showSpiritualContent"`
	ShowHealthStats           bool            `json:"showHealthStats"`
	WaterNotificationEnabled  bool            `json:"waterNotificationEnabled"`
	WaterNotificationInterval int             `json:"waterNotificationInterval"`
}

func Default() UserProfile {
	return UserProfile{
		WeightHistory:             []WeightEntry{},
		Level:                     1,
		NextLevelXP:               100,
		Theme:                     "light",
		WaterNotificationEnabled:  true,
		WaterNotificationInterval: 60,
	}
}

// AppendWeight records today's weight, overwriting the latest entry when it
// is from the same day so the history keeps one point per day.
func AppendWeight(history []WeightEntry, weight float64, now time.Time) []WeightEntry {
	entry := WeightEntry{Date: instant.Of(now), Weight: weight}
	if n := len(history); n > 0 {
		last := history[n-1].Date.Time
		if gap := now.Sub(last); gap > -24*time.Hour && gap < 24*time.Hour {
			out := make([]WeightEntry, n)
			copy(out, history)
			out[n-1] = entry
			return out
		}
	}
	return append(append([]WeightEntry{}, history...), entry)
}

type BMIReading struct {
	Value float64
	Label string
}

// BMIFor accepts height in centimetres or metres. Values under 3 are treated
// as metres.
func BMIFor(weight, height float64) (BMIReading, error) {
	if weight <= 0 || height <= 0 {
		return BMIReading{}, fmt.Errorf("weight and height are required")
	}
	meters := height
	if meters >= 3 {
		meters = height / 100
	}
	bmi := weight / (meters * meters)
	label := "Obesidade"
	switch {
	case bmi < 18.5:
		label = "Abaixo do peso"
	case bmi < 24.9:
		label = "Peso normal"
	case bmi < 29.9:
		label = "Sobrepeso"
	}
	return BMIReading{Value: bmi, Label: label}, nil
}

// GoalProgress reports how far the user has moved from the first recorded
// weight towards the target, clamped to [0,100].
func GoalProgress(history []WeightEntry, current, target float64) float64 {
	if len(history) == 0 || target <= 0 || current <= 0 {
		return 0
	}
	start := history[0].Weight
	if start == target {
		return 100
	}
	pct := 100 * (start - current) / (start - target)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
