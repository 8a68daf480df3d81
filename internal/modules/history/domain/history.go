package domain

import (
	"sort"

	fastingdomain "jejum/internal/modules/fasting/domain"
)

// SortByStartDesc maintains the persisted ordering invariant: most recent
// fast first. Every mutation path runs this so reads never re-sort.
func SortByStartDesc(sessions []fastingdomain.FastingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime.Time)
	})
}

// IndexByID returns the position of a session, or -1.
func IndexByID(sessions []fastingdomain.FastingSession, id string) int {
	for i, s := range sessions {
		if s.ID == id {
			return i
		}
	}
	return -1
}
