package domain

import (
	"fmt"
	"math"
	"time"
)

// Pure timer math. The presentation layer calls these once per second; none
// of them mutate anything.

func ElapsedSeconds(now, start time.Time) int64 {
	return int64(now.Sub(start) / time.Second)
}

func targetSeconds(targetHours float64) int64 {
	return int64(math.Round(targetHours * 3600))
}

// RemainingSeconds is signed: negative means the fast ran past its target
// ("extra time").
func RemainingSeconds(now, start time.Time, targetHours float64) int64 {
	return targetSeconds(targetHours) - ElapsedSeconds(now, start)
}

// Percentage of the target already elapsed, clamped to [0,100].
func Percentage(now, start time.Time, targetHours float64) float64 {
	target := targetSeconds(targetHours)
	if target <= 0 {
		return 0
	}
	pct := 100 * float64(ElapsedSeconds(now, start)) / float64(target)
	return math.Min(100, math.Max(0, pct))
}

// FormatClock renders seconds as HH:MM:SS with a leading minus for negative
// input. The hour field is unbounded.
func FormatClock(totalSeconds int64) string {
	sign := ""
	if totalSeconds < 0 {
		sign = "-"
		totalSeconds = -totalSeconds
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}

// WaterRecommendationLiters suggests how much water to drink over a fast of
// the given length.
func WaterRecommendationLiters(hours float64) float64 {
	return hours * 0.15
}
