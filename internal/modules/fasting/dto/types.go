package dto

import "time"

type StartInput struct {
	Hours     float64
	ModeID    string
	Intention string
}

type StartOutput struct {
	SessionID   string
	Mode        string
	TargetHours float64
	StartedAt   time.Time
}

type StatusOutput struct {
	SessionID        string
	Mode             string
	TargetHours      float64
	StartedAt        time.Time
	ElapsedSeconds   int64
	RemainingSeconds int64
	ElapsedClock     string
	RemainingClock   string
	Percentage       float64
	StageTitle       string
	StageDesc        string
	WaterCount       int
	WaterGoalLiters  float64
	Intention        string
	Notes            string
}

type WaterOutput struct {
	WaterCount int
}

type FinishInput struct {
	Mood     string
	LastMeal string
}

type UnlockedAchievement struct {
	ID    string
	Title string
	Icon  string
}

type FinishOutput struct {
	SessionID   string
	ActualHours float64
	Completed   bool
	XPEarned    int
	TotalXP     int
	Level       int
	LeveledUp   bool
	Streak      int
	Unlocked    []UnlockedAchievement
	NotePath    string
}
