package service

import (
	"fmt"

	fastingdomain "jejum/internal/modules/fasting/domain"
	"jejum/internal/modules/history/dto"
	apperrors "jejum/internal/platform/errors"
	"jejum/internal/platform/id"
	"jejum/internal/platform/instant"
)

type HistoryService struct {
	idGen id.Generator
}

func NewHistoryService(idGen id.Generator) *HistoryService {
	return &HistoryService{idGen: idGen}
}

// Build turns a manual record into a terminal session, deriving duration and
// completion from start/end/target. An empty id marks a new record.
func (s *HistoryService) Build(input dto.RecordInput) (fastingdomain.FastingSession, error) {
	if input.Start.IsZero() || input.End.IsZero() {
		return fastingdomain.FastingSession{}, fmt.Errorf("start and end times are required")
	}
	if input.End.Before(input.Start) {
		return fastingdomain.FastingSession{}, fmt.Errorf("end time precedes start time")
	}
	if input.TargetHours <= 0 {
		return fastingdomain.FastingSession{}, fmt.Errorf("%w: %v hours", apperrors.ErrInvalidDuration, input.TargetHours)
	}
	fastingType := fastingdomain.TypeCustom
	if input.ModeID != "" && input.ModeID != fastingdomain.CustomModeID {
		mode, ok := fastingdomain.ModeByID(input.ModeID)
		if !ok {
			return fastingdomain.FastingSession{}, fmt.Errorf("unknown fasting mode %q", input.ModeID)
		}
		fastingType = mode.Type
	}
	mood := fastingdomain.Mood(input.Mood)
	if err := mood.Validate(); err != nil {
		return fastingdomain.FastingSession{}, err
	}
	recordID := input.ID
	if recordID == "" {
		recordID = s.idGen.New()
	}
	waterCount := input.WaterCount
	if waterCount < 0 {
		waterCount = 0
	}
	session := fastingdomain.FastingSession{
		ID:          recordID,
		StartTime:   instant.Of(input.Start),
		EndTime:     instant.Of(input.End),
		TargetHours: input.TargetHours,
		Mode:        fastingType,
		Intention:   input.Intention,
		Notes:       input.Notes,
		Mood:        mood,
		LastMeal:    input.LastMeal,
		WaterCount:  waterCount,
	}
	session.RecomputeDerived()
	return session, nil
}

// Merge overlays the provided fields of a manual edit on an existing record,
// then re-derives duration and completion. Zero-valued inputs keep the
// stored value; water is cleared with a negative count, since zero is a
// real count.
func (s *HistoryService) Merge(existing fastingdomain.FastingSession, input dto.RecordInput) (fastingdomain.FastingSession, error) {
	merged := input
	merged.ID = existing.ID
	if merged.Start.IsZero() {
		merged.Start = existing.StartTime.Time
	}
	if merged.End.IsZero() {
		merged.End = existing.EndTime.Time
	}
	if merged.TargetHours == 0 {
		merged.TargetHours = existing.TargetHours
	}
	if merged.Intention == "" {
		merged.Intention = existing.Intention
	}
	if merged.Notes == "" {
		merged.Notes = existing.Notes
	}
	if merged.Mood == "" {
		merged.Mood = string(existing.Mood)
	}
	if merged.LastMeal == "" {
		merged.LastMeal = existing.LastMeal
	}
	if merged.WaterCount == 0 {
		merged.WaterCount = existing.WaterCount
	}
	session, err := s.Build(merged)
	if err != nil {
		return fastingdomain.FastingSession{}, err
	}
	if input.ModeID == "" {
		session.Mode = existing.Mode
	}
	return session, nil
}
