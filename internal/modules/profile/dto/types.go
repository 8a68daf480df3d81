package dto

import "time"

type WeightPoint struct {
	Date   time.Time
	Weight float64
}

type ProfileOutput struct {
	Name                      string
	Weight                    float64
	TargetWeight              float64
	Height                    float64
	WeightHistory             []WeightPoint
	Level                     int
	CurrentXP                 int
	NextLevelXP               int
	Streak                    int
	LastFastingDate           time.Time
	Theme                     string
	OnboardingCompleted       bool
	ShowSpiritualContent      bool
	ShowHealthStats           bool
	WaterNotificationEnabled  bool
	WaterNotificationInterval int
	BMI                       float64
	BMILabel                  string
	GoalProgressPct           float64
}

// SetInput carries only the fields the user chose to change.
type SetInput struct {
	Name                      *string
	Weight                    *float64
	TargetWeight              *float64
	Height                    *float64
	Theme                     *string
	ShowSpiritualContent      *bool
	ShowHealthStats           *bool
	WaterNotificationEnabled  *bool
	WaterNotificationInterval *int
	OnboardingCompleted       *bool
}

type WeightRecordOutput struct {
	Date     time.Time
	Weight   float64
	Replaced bool
}
