package usecase

import (
	"context"

	"jejum/internal/modules/profile/domain"
	"jejum/internal/modules/profile/dto"
	profilein "jejum/internal/modules/profile/port/in"
	"jejum/internal/modules/profile/port/out"
	"jejum/internal/platform/clock"
)

type Interactor struct {
	clock  clock.Clock
	states out.StateStore
}

var _ profilein.Usecase = (*Interactor)(nil)

func NewInteractor(clk clock.Clock, states out.StateStore) *Interactor {
	return &Interactor{clock: clk, states: states}
}

func (i *Interactor) Show(ctx context.Context) (dto.ProfileOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(st.User), nil
}

func (i *Interactor) Set(ctx context.Context, input dto.SetInput) (dto.ProfileOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	u := st.User
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Weight != nil {
		u.Weight = *input.Weight
	}
	if input.TargetWeight != nil {
		u.TargetWeight = *input.TargetWeight
	}
	if input.Height != nil {
		u.Height = *input.Height
	}
	if input.Theme != nil {
		u.Theme = *input.Theme
	}
	if input.ShowSpiritualContent != nil {
		u.ShowSpiritualContent = *input.ShowSpiritualContent
	}
	if input.ShowHealthStats != nil {
		u.ShowHealthStats = *input.ShowHealthStats
	}
	if input.WaterNotificationEnabled != nil {
		u.WaterNotificationEnabled = *input.WaterNotificationEnabled
	}
	if input.WaterNotificationInterval != nil {
		u.WaterNotificationInterval = *input.WaterNotificationInterval
	}
	if input.OnboardingCompleted != nil {
		u.OnboardingCompleted = *input.OnboardingCompleted
	}
	st.User = u
	if err := i.states.Save(ctx, st); err != nil {
		return dto.ProfileOutput{}, err
	}
	return toOutput(st.User), nil
}

func (i *Interactor) RecordWeight(ctx context.Context, weight float64) (dto.WeightRecordOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.WeightRecordOutput{}, err
	}
	now := i.clock.Now()
	before := len(st.User.WeightHistory)
	st.User.Weight = weight
	st.User.WeightHistory = domain.AppendWeight(st.User.WeightHistory, weight, now)
	if err := i.states.Save(ctx, st); err != nil {
		return dto.WeightRecordOutput{}, err
	}
	return dto.WeightRecordOutput{
		Date:     now,
		Weight:   weight,
		Replaced: len(st.User.WeightHistory) == before && before > 0,
	}, nil
}

func toOutput(u domain.UserProfile) dto.ProfileOutput {
	points := make([]dto.WeightPoint, 0, len(u.WeightHistory))
	for _, e := range u.WeightHistory {
		points = append(points, dto.WeightPoint{Date: e.Date.Time, Weight: e.Weight})
	}
	var bmi domain.BMIReading
	if r, err := domain.BMIFor(u.Weight, u.Height); err == nil {
		bmi = r
	}
	return dto.ProfileOutput{
		Name:                      u.Name,
		Weight:                    u.Weight,
		TargetWeight:              u.TargetWeight,
		Height:                    u.Height,
		WeightHistory:             points,
		Level:                     u.Level,
		CurrentXP:                 u.CurrentXP,
		NextLevelXP:               u.NextLevelXP,
		Streak:                    u.Streak,
		LastFastingDate:           u.LastFastingDate.Time,
		Theme:                     u.Theme,
		OnboardingCompleted:       u.OnboardingCompleted,
		ShowSpiritualContent:      u.ShowSpiritualContent,
		ShowHealthStats:           u.ShowHealthStats,
		WaterNotificationEnabled:  u.WaterNotificationEnabled,
		WaterNotificationInterval: u.WaterNotificationInterval,
		BMI:                       bmi.Value,
		BMILabel:                  bmi.Label,
		GoalProgressPct:           domain.GoalProgress(u.WeightHistory, u.Weight, u.TargetWeight),
	}
}
