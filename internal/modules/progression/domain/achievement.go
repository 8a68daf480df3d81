package domain

import (
	"time"

	"jejum/internal/platform/instant"
)

// Achievement is a one-way unlockable badge. Unlocked and DateUnlocked are
// the only mutable fields; once unlocked, an achievement never reverts.
type Achievement struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Icon         string          `json:"icon"`
	Unlocked     bool            `json:"unlocked"`
	DateUnlocked instant.Instant `json:"dateUnlocked,omitempty"`
}

var catalog = []Achievement{
	{ID: "first_fast", Title: "O Início", Description: "Complete seu primeiro jejum.", Icon: "🌱"},
	{ID: "streak_3", Title: "Consistência", Description: "3 dias seguidos de jejum.", Icon: "🔥"},
	{ID: "streak_7", Title: "Imparável", Description: "7 dias seguidos de jejum.", Icon: "🚀"},
	{ID: "streak_30", Title: "Mestre do Hábito", Description: "30 dias seguidos de jejum.", Icon: "👑"},
	{ID: "fast_16", Title: "Intermediário", Description: "Complete um jejum de 16h.", Icon: "⭐"},
	{ID: "fast_24", Title: "Guerreiro", Description: "Complete um jejum de 24h.", Icon: "🛡️"},
	{ID: "xp_1000", Title: "Level Up", Description: "Alcance 1000 de XP total.", Icon: "📈"},
}

func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// MergeWithCatalog reconciles stored unlock state against the static catalog:
// achievements added after the stored payload was written appear locked
// instead of vanishing, and unknown stored ids are dropped.
func MergeWithCatalog(stored []Achievement) []Achievement {
	byID := make(map[string]Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}
	out := make([]Achievement, 0, len(catalog))
	for _, def := range catalog {
		if found, ok := byID[def.ID]; ok {
			out = append(out, found)
			continue
		}
		out = append(out, def)
	}
	return out
}

// FinishFacts are the post-finish values the achievement rules look at.
type FinishFacts struct {
	Streak      int
	ActualHours float64
	TotalXP     int
}

func ruleSatisfied(id string, facts FinishFacts) bool {
	switch id {
	case "first_fast":
		// True on every finish; the one-way unlock makes it fire exactly once.
		return true
	case "streak_3":
		return facts.Streak >= 3
	case "streak_7":
		return facts.Streak >= 7
	case "streak_30":
		return facts.Streak >= 30
	case "fast_16":
		return facts.ActualHours >= 16
	case "fast_24":
		return facts.ActualHours >= 24
	case "xp_1000":
		return facts.TotalXP >= 1000
	default:
		return false
	}
}

// Evaluate scans the fixed catalog and flips newly satisfied achievements,
// stamping DateUnlocked once. Already-unlocked entries are returned untouched,
// so re-evaluation is idempotent. The second return value lists only the
// achievements unlocked by this call.
func Evaluate(achievements []Achievement, facts FinishFacts, now time.Time) ([]Achievement, []Achievement) {
	updated := make([]Achievement, len(achievements))
	var unlocked []Achievement
	for i, a := range achievements {
		if !a.Unlocked && ruleSatisfied(a.ID, facts) {
			a.Unlocked = true
			a.DateUnlocked = instant.Of(now)
			unlocked = append(unlocked, a)
		}
		updated[i] = a
	}
	return updated, unlocked
}

// FinishOutcome is everything the finish transition needs to merge back into
// the profile and achievement list.
type FinishOutcome struct {
	XPEarned     int
	NewXP        int
	NewLevel     int
	LeveledUp    bool
	NewStreak    int
	Achievements []Achievement
	Unlocked     []Achievement
}

// ApplyFinish converts a finished session's facts into XP, level, streak and
// achievement effects. Pure; the caller owns merging the outcome into the
// aggregate.
func ApplyFinish(currentXP, currentLevel, streak int, lastFast time.Time, achievements []Achievement, actualHours float64, completed bool, finishedAt time.Time) FinishOutcome {
	earned := ComputeXP(actualHours, completed)
	newXP := currentXP + earned
	newLevel := Level(newXP)
	newStreak := UpdateStreak(streak, lastFast, finishedAt)
	updated, unlocked := Evaluate(achievements, FinishFacts{
		Streak:      newStreak,
		ActualHours: actualHours,
		TotalXP:     newXP,
	}, finishedAt)
	return FinishOutcome{
		XPEarned:     earned,
		NewXP:        newXP,
		NewLevel:     newLevel,
		LeveledUp:    newLevel > currentLevel,
		NewStreak:    newStreak,
		Achievements: updated,
		Unlocked:     unlocked,
	}
}
