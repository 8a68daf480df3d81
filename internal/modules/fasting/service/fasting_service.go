package service

import (
	"fmt"

	"jejum/internal/modules/fasting/domain"
	"jejum/internal/platform/clock"
	apperrors "jejum/internal/platform/errors"
	"jejum/internal/platform/id"
	"jejum/internal/platform/instant"
)

type FastingService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewFastingService(clock clock.Clock, idGen id.Generator) *FastingService {
	return &FastingService{clock: clock, idGen: idGen}
}

// NewSession builds a fresh active session. A preset mode id supplies the
// hours and type; "custom" or an empty id is a custom fast with explicit
// hours. Explicit hours that disagree with the preset also make the fast
// custom, so the stored mode never misdescribes the target.
func (s *FastingService) NewSession(hours float64, modeID, intention string) (domain.FastingSession, error) {
	fastingType := domain.TypeCustom
	if modeID != "" && modeID != domain.CustomModeID {
		mode, ok := domain.ModeByID(modeID)
		if !ok {
			return domain.FastingSession{}, fmt.Errorf("unknown fasting mode %q", modeID)
		}
		fastingType = mode.Type
		switch {
		case hours == 0:
			hours = mode.Hours
		case hours != mode.Hours:
			fastingType = domain.TypeCustom
		}
	}
	if hours <= 0 {
		return domain.FastingSession{}, fmt.Errorf("%w: %v hours", apperrors.ErrInvalidDuration, hours)
	}
	return domain.FastingSession{
		ID:          s.idGen.New(),
		StartTime:   instant.Of(s.clock.Now()),
		TargetHours: hours,
		Mode:        fastingType,
		Intention:   intention,
	}, nil
}

// Close moves an active session to terminal form: end time, derived duration
// and completion, mood and last meal.
func (s *FastingService) Close(active domain.FastingSession, mood domain.Mood, lastMeal string) domain.FastingSession {
	end := s.clock.Now()
	active.EndTime = instant.Of(end)
	active.ActualHours = end.Sub(active.StartTime.Time).Hours()
	active.Completed = active.ActualHours >= active.TargetHours
	active.Mood = mood
	active.LastMeal = lastMeal
	return active
}
