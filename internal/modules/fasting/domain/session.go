package domain

import (
	"fmt"

	"jejum/internal/platform/instant"
)

const SchemaVersion = 1

// Mood is the 5-point scale recorded when a fast is broken.
type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodBad      Mood = "bad"
	MoodTerrible Mood = "terrible"
)

func (m Mood) Validate() error {
	switch m {
	case "", MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodTerrible:
		return nil
	default:
		return fmt.Errorf("unknown mood %q", string(m))
	}
}

// FastingSession is one fast, active or historical. EndTime stays zero while
// the fast is running; ActualHours and Completed exist only in terminal form
// and are always derived, never trusted from input.
type FastingSession struct {
	ID          string          `json:"id"`
	StartTime   instant.Instant `json:"startTime"`
	EndTime     instant.Instant `json:"endTime"`
	TargetHours float64         `json:"targetDurationHours"`
	ActualHours float64         `json:"actualDurationHours,omitempty"`
	Completed   bool            `json:"completed"`
	Mode        FastingType     `json:"mode"`
	Intention   string          `json:"intention,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	WaterCount  int             `json:"waterCount,omitempty"`
	Mood        Mood            `json:"mood,omitempty"`
	LastMeal    string          `json:"lastMeal,omitempty"`
}

func (s FastingSession) Active() bool {
	return s.EndTime.IsZero()
}

func (s FastingSession) Validate() error {
	if s.TargetHours <= 0 {
		return fmt.Errorf("target duration must be positive, got %v", s.TargetHours)
	}
	if s.StartTime.IsZero() {
		return fmt.Errorf("start time is required")
	}
	if !s.EndTime.IsZero() && s.EndTime.Before(s.StartTime.Time) {
		return fmt.Errorf("end time precedes start time")
	}
	if err := s.Mood.Validate(); err != nil {
		return err
	}
	if s.WaterCount < 0 {
		return fmt.Errorf("water count must be non-negative")
	}
	return nil
}

// RecomputeDerived rewrites ActualHours and Completed from start/end/target.
// History edits go through this so stale values typed into a form can never
// stick.
func (s *FastingSession) RecomputeDerived() {
	if s.EndTime.IsZero() {
		s.ActualHours = 0
		s.Completed = false
		return
	}
	s.ActualHours = s.EndTime.Sub(s.StartTime.Time).Hours()
	s.Completed = s.ActualHours >= s.TargetHours
}
