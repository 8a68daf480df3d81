package domain

import (
	"math"
	"time"
)

const (
	LevelBaseXP       = 100
	XPPerHour         = 10
	XPBonusCompletion = 50
	XPBonusOver24h    = 50
)

// ComputeXP scores a finished fast. Bonuses are additive and applied exactly
// once, at the finish transition; history edits never re-run scoring.
func ComputeXP(actualHours float64, completed bool) int {
	xp := int(math.Floor(actualHours * XPPerHour))
	if completed {
		xp += XPBonusCompletion
		if actualHours > 24 {
			xp += XPBonusOver24h
		}
	}
	return xp
}

func Level(xp int) int {
	return xp/LevelBaseXP + 1
}

// NextLevelXP is a cached display value; the real invariant is Level(xp).
func NextLevelXP(level int) int {
	return level*LevelBaseXP + LevelBaseXP
}

// DaysBetween counts full 24-hour periods between two instants, truncated
// towards zero. Calendar boundaries are deliberately ignored.
func DaysBetween(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}

// UpdateStreak applies the consecutive-day policy: at most one increment per
// day, reset after any gap of two or more days. A zero lastFast means this is
// the first recorded fast.
func UpdateStreak(previous int, lastFast, finishedAt time.Time) int {
	days := 0
	if !lastFast.IsZero() {
		days = DaysBetween(finishedAt, lastFast)
	}
	if days <= 1 {
		if days == 1 || previous == 0 {
			return previous + 1
		}
		return previous
	}
	return 1
}
