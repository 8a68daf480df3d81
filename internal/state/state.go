package state

import (
	fastingdomain "jejum/internal/modules/fasting/domain"
	historydomain "jejum/internal/modules/history/domain"
	profiledomain "jejum/internal/modules/profile/domain"
	progressiondomain "jejum/internal/modules/progression/domain"
	"jejum/internal/platform/instant"
)

// AppState is the aggregate root and the unit of persistence: loaded once at
// startup, saved whole after every accepted transition. There is exactly one
// logical writer, so transitions are plain read-modify-write.
type AppState struct {
	User                  profiledomain.UserProfile        `json:"user"`
	ActiveSession         *fastingdomain.FastingSession    `json:"activeSession"`
	History               []fastingdomain.FastingSession   `json:"history"`
	Achievements          []progressiondomain.Achievement  `json:"achievements"`
	LastWaterReminderTime instant.Instant                  `json:"lastWaterReminderTime"`
}

func Default() AppState {
	return AppState{
		User:         profiledomain.Default(),
		History:      []fastingdomain.FastingSession{},
		Achievements: progressiondomain.Catalog(),
	}
}

// Sanitize repairs a decoded aggregate: weight entries without a positive
// weight are dropped, achievements are merged against the static catalog so
// new definitions appear locked, and level is re-derived from XP.
func Sanitize(s AppState) AppState {
	cleanWeights := make([]profiledomain.WeightEntry, 0, len(s.User.WeightHistory))
	for _, w := range s.User.WeightHistory {
		if w.Weight > 0 {
			cleanWeights = append(cleanWeights, w)
		}
	}
	s.User.WeightHistory = cleanWeights
	if s.User.CurrentXP < 0 {
		s.User.CurrentXP = 0
	}
	s.User.Level = progressiondomain.Level(s.User.CurrentXP)
	if s.User.NextLevelXP == 0 {
		s.User.NextLevelXP = progressiondomain.NextLevelXP(s.User.Level)
	}
	if s.User.WaterNotificationInterval <= 0 {
		s.User.WaterNotificationInterval = 60
	}
	if s.History == nil {
		s.History = []fastingdomain.FastingSession{}
	}
	historydomain.SortByStartDesc(s.History)
	s.Achievements = progressiondomain.MergeWithCatalog(s.Achievements)
	return s
}
