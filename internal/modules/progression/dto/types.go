package dto

import "time"

type AchievementOutput struct {
	ID           string
	Title        string
	Description  string
	Icon         string
	Unlocked     bool
	DateUnlocked time.Time
}

type ProgressOutput struct {
	Level        int
	CurrentXP    int
	NextLevelXP  int
	Streak       int
	Achievements []AchievementOutput
	Unlocked     int
	Total        int
}
