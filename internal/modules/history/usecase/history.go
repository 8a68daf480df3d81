package usecase

import (
	"context"
	"fmt"

	fastingdomain "jejum/internal/modules/fasting/domain"
	historydomain "jejum/internal/modules/history/domain"
	historydto "jejum/internal/modules/history/dto"
	historyin "jejum/internal/modules/history/port/in"
	historyout "jejum/internal/modules/history/port/out"
	"jejum/internal/modules/history/service"
	apperrors "jejum/internal/platform/errors"
)

// Interactor owns direct history edits: backfilling a forgotten fast or
// correcting a recorded one. These paths recompute derived fields but never
// award XP, touch the streak, or evaluate achievements; only the finish
// transition scores.
type Interactor struct {
	svc    *service.HistoryService
	states historyout.StateStore
	index  historyout.SessionIndex
}

func NewInteractor(svc *service.HistoryService, states historyout.StateStore, index historyout.SessionIndex) historyin.Usecase {
	return &Interactor{svc: svc, states: states, index: index}
}

func (i *Interactor) List(ctx context.Context) ([]historydto.SessionOutput, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]historydto.SessionOutput, 0, len(appState.History))
	for _, s := range appState.History {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, input historydto.RecordInput) (historydto.RecordOutput, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return historydto.RecordOutput{}, err
	}
	input.ID = ""
	session, err := i.svc.Build(input)
	if err != nil {
		return historydto.RecordOutput{}, err
	}
	appState.History = append(appState.History, session)
	historydomain.SortByStartDesc(appState.History)
	if err := i.states.Save(ctx, appState); err != nil {
		return historydto.RecordOutput{}, err
	}
	if err := i.index.Upsert(ctx, session); err != nil {
		return historydto.RecordOutput{}, fmt.Errorf("project session: %w", err)
	}
	return historydto.RecordOutput{ID: session.ID, ActualHours: session.ActualHours, Completed: session.Completed}, nil
}

func (i *Interactor) Edit(ctx context.Context, input historydto.RecordInput) (historydto.RecordOutput, error) {
	if input.ID == "" {
		return historydto.RecordOutput{}, fmt.Errorf("record id is required")
	}
	appState, err := i.states.Load(ctx)
	if err != nil {
		return historydto.RecordOutput{}, err
	}
	idx := historydomain.IndexByID(appState.History, input.ID)
	if idx < 0 {
		return historydto.RecordOutput{}, fmt.Errorf("%w: %s", apperrors.ErrNotFound, input.ID)
	}
	session, err := i.svc.Merge(appState.History[idx], input)
	if err != nil {
		return historydto.RecordOutput{}, err
	}
	appState.History[idx] = session
	historydomain.SortByStartDesc(appState.History)
	if err := i.states.Save(ctx, appState); err != nil {
		return historydto.RecordOutput{}, err
	}
	if err := i.index.Upsert(ctx, session); err != nil {
		return historydto.RecordOutput{}, fmt.Errorf("project session: %w", err)
	}
	return historydto.RecordOutput{ID: session.ID, ActualHours: session.ActualHours, Completed: session.Completed}, nil
}

// Delete is a silent no-op when the id is unknown.
func (i *Interactor) Delete(ctx context.Context, recordID string) error {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return err
	}
	idx := historydomain.IndexByID(appState.History, recordID)
	if idx < 0 {
		return nil
	}
	appState.History = append(appState.History[:idx], appState.History[idx+1:]...)
	if err := i.states.Save(ctx, appState); err != nil {
		return err
	}
	return i.index.Delete(ctx, recordID)
}

func toOutput(s fastingdomain.FastingSession) historydto.SessionOutput {
	return historydto.SessionOutput{
		ID:          s.ID,
		Start:       s.StartTime.Time,
		End:         s.EndTime.Time,
		TargetHours: s.TargetHours,
		ActualHours: s.ActualHours,
		Completed:   s.Completed,
		Mode:        string(s.Mode),
		Mood:        string(s.Mood),
		WaterCount:  s.WaterCount,
		Intention:   s.Intention,
		Notes:       s.Notes,
		LastMeal:    s.LastMeal,
	}
}
