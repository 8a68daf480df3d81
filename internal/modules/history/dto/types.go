package dto

import "time"

// RecordInput is a manual history entry as typed by the user. Derived fields
// (actual duration, completion) are intentionally absent: they are always
// recomputed from start/end/target.
type RecordInput struct {
	ID          string
	Start       time.Time
	End         time.Time
	TargetHours float64
	ModeID      string
	Intention   string
	Notes       string
	Mood        string
	LastMeal    string
	WaterCount  int
}

type RecordOutput struct {
	ID          string
	ActualHours float64
	Completed   bool
}

type SessionOutput struct {
	ID          string
	Start       time.Time
	End         time.Time
	TargetHours float64
	ActualHours float64
	Completed   bool
	Mode        string
	Mood        string
	WaterCount  int
	Intention   string
	Notes       string
	LastMeal    string
}
