package usecase

import (
	"context"
	"fmt"
	"time"

	"jejum/internal/modules/fasting/domain"
	fastingdto "jejum/internal/modules/fasting/dto"
	fastingin "jejum/internal/modules/fasting/port/in"
	fastingout "jejum/internal/modules/fasting/port/out"
	"jejum/internal/modules/fasting/service"
	historydomain "jejum/internal/modules/history/domain"
	progressiondomain "jejum/internal/modules/progression/domain"
	"jejum/internal/platform/clock"
	apperrors "jejum/internal/platform/errors"
	"jejum/internal/platform/instant"
)

// Interactor drives the session state machine: Idle -> Active -> Idle, with
// in-place edits (water, journal) as Active self-transitions. Every accepted
// transition is a whole-state read-modify-write followed by one save.
type Interactor struct {
	svc    *service.FastingService
	clock  clock.Clock
	states fastingout.StateStore
	notes  fastingout.NoteStore
	index  fastingout.SessionIndex
}

func NewInteractor(svc *service.FastingService, clk clock.Clock, states fastingout.StateStore, notes fastingout.NoteStore, index fastingout.SessionIndex) fastingin.Usecase {
	return &Interactor{svc: svc, clock: clk, states: states, notes: notes, index: index}
}

func (i *Interactor) Start(ctx context.Context, input fastingdto.StartInput) (fastingdto.StartOutput, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return fastingdto.StartOutput{}, err
	}
	if appState.ActiveSession != nil {
		return fastingdto.StartOutput{}, apperrors.ErrActiveSessionExists
	}
	session, err := i.svc.NewSession(input.Hours, input.ModeID, input.Intention)
	if err != nil {
		return fastingdto.StartOutput{}, err
	}
	appState.ActiveSession = &session
	appState.LastWaterReminderTime = session.StartTime
	if err := i.states.Save(ctx, appState); err != nil {
		return fastingdto.StartOutput{}, err
	}
	return fastingdto.StartOutput{
		SessionID:   session.ID,
		Mode:        string(session.Mode),
		TargetHours: session.TargetHours,
		StartedAt:   session.StartTime.Time,
	}, nil
}

// Status derives display values from the stored start time against the
// clock. It never mutates state; the TUI calls it once per second.
func (i *Interactor) Status(ctx context.Context) (fastingdto.StatusOutput, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return fastingdto.StatusOutput{}, err
	}
	session := appState.ActiveSession
	if session == nil {
		return fastingdto.StatusOutput{}, apperrors.ErrNoActiveSession
	}
	now := i.clock.Now()
	elapsed := domain.ElapsedSeconds(now, session.StartTime.Time)
	remaining := domain.RemainingSeconds(now, session.StartTime.Time, session.TargetHours)
	stage := domain.StageFor(float64(elapsed) / 3600)
	return fastingdto.StatusOutput{
		SessionID:        session.ID,
		Mode:             string(session.Mode),
		TargetHours:      session.TargetHours,
		StartedAt:        session.StartTime.Time,
		ElapsedSeconds:   elapsed,
		RemainingSeconds: remaining,
		ElapsedClock:     domain.FormatClock(elapsed),
		RemainingClock:   domain.FormatClock(remaining),
		Percentage:       domain.Percentage(now, session.StartTime.Time, session.TargetHours),
		StageTitle:       stage.Title,
		StageDesc:        stage.Desc,
		WaterCount:       session.WaterCount,
		WaterGoalLiters:  domain.WaterRecommendationLiters(session.TargetHours),
		Intention:        session.Intention,
		Notes:            session.Notes,
	}, nil
}

func (i *Interactor) AddWater(ctx context.Context) (fastingdto.WaterOutput, error) {
	return i.adjustWater(ctx, 1)
}

func (i *Interactor) RemoveWater(ctx context.Context) (fastingdto.WaterOutput, error) {
	return i.adjustWater(ctx, -1)
}

func (i *Interactor) adjustWater(ctx context.Context, delta int) (fastingdto.WaterOutput, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return fastingdto.WaterOutput{}, err
	}
	if appState.ActiveSession == nil {
		return fastingdto.WaterOutput{}, apperrors.ErrNoActiveSession
	}
	next := appState.ActiveSession.WaterCount + delta
	if next < 0 {
		// Decrementing an empty counter is a no-op, not an error.
		return fastingdto.WaterOutput{WaterCount: 0}, nil
	}
	appState.ActiveSession.WaterCount = next
	if err := i.states.Save(ctx, appState); err != nil {
		return fastingdto.WaterOutput{}, err
	}
	return fastingdto.WaterOutput{WaterCount: next}, nil
}

func (i *Interactor) SetNotes(ctx context.Context, notes string) error {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return err
	}
	if appState.ActiveSession == nil {
		return apperrors.ErrNoActiveSession
	}
	appState.ActiveSession.Notes = notes
	return i.states.Save(ctx, appState)
}

// Finish is irreversible: stopping early still records a session with
// completed=false. Scoring and achievement evaluation run only here, never
// on manual history edits.
func (i *Interactor) Finish(ctx context.Context, input fastingdto.FinishInput) (fastingdto.FinishOutput, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return fastingdto.FinishOutput{}, err
	}
	if appState.ActiveSession == nil {
		return fastingdto.FinishOutput{}, apperrors.ErrNoActiveSession
	}
	mood := domain.Mood(input.Mood)
	if err := mood.Validate(); err != nil {
		return fastingdto.FinishOutput{}, err
	}

	closed := i.svc.Close(*appState.ActiveSession, mood, input.LastMeal)
	outcome := progressiondomain.ApplyFinish(
		appState.User.CurrentXP,
		appState.User.Level,
		appState.User.Streak,
		appState.User.LastFastingDate.Time,
		appState.Achievements,
		closed.ActualHours,
		closed.Completed,
		closed.EndTime.Time,
	)

	appState.ActiveSession = nil
	appState.History = append([]domain.FastingSession{closed}, appState.History...)
	historydomain.SortByStartDesc(appState.History)
	appState.Achievements = outcome.Achievements
	appState.User.CurrentXP = outcome.NewXP
	appState.User.Level = outcome.NewLevel
	appState.User.Streak = outcome.NewStreak
	appState.User.LastFastingDate = closed.EndTime
	appState.User.NextLevelXP = progressiondomain.NextLevelXP(outcome.NewLevel)

	if err := i.states.Save(ctx, appState); err != nil {
		return fastingdto.FinishOutput{}, err
	}
	if err := i.index.Upsert(ctx, closed); err != nil {
		return fastingdto.FinishOutput{}, fmt.Errorf("project session: %w", err)
	}
	notePath, err := i.notes.Save(ctx, closed)
	if err != nil {
		return fastingdto.FinishOutput{}, fmt.Errorf("write journal note: %w", err)
	}

	unlocked := make([]fastingdto.UnlockedAchievement, 0, len(outcome.Unlocked))
	for _, a := range outcome.Unlocked {
		unlocked = append(unlocked, fastingdto.UnlockedAchievement{ID: a.ID, Title: a.Title, Icon: a.Icon})
	}
	return fastingdto.FinishOutput{
		SessionID:   closed.ID,
		ActualHours: closed.ActualHours,
		Completed:   closed.Completed,
		XPEarned:    outcome.XPEarned,
		TotalXP:     outcome.NewXP,
		Level:       outcome.NewLevel,
		LeveledUp:   outcome.LeveledUp,
		Streak:      outcome.NewStreak,
		Unlocked:    unlocked,
		NotePath:    notePath,
	}, nil
}

// WaterReminderDue reports whether the hydration interval has elapsed since
// the later of the last reminder and the session start. The check is
// read-only; MarkWaterReminded commits the reminder time, which makes
// re-running the same instant a no-op.
func (i *Interactor) WaterReminderDue(ctx context.Context) (bool, error) {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return false, err
	}
	session := appState.ActiveSession
	if session == nil || !appState.User.WaterNotificationEnabled {
		return false, nil
	}
	ref := appState.LastWaterReminderTime.Time
	if session.StartTime.After(ref) {
		ref = session.StartTime.Time
	}
	interval := time.Duration(appState.User.WaterNotificationInterval) * time.Minute
	if interval <= 0 {
		interval = 60 * time.Minute
	}
	return i.clock.Now().Sub(ref) >= interval, nil
}

func (i *Interactor) MarkWaterReminded(ctx context.Context) error {
	appState, err := i.states.Load(ctx)
	if err != nil {
		return err
	}
	appState.LastWaterReminderTime = instant.Of(i.clock.Now())
	return i.states.Save(ctx, appState)
}
