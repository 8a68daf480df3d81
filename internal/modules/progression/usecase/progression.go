package usecase

import (
	"context"

	"jejum/internal/modules/progression/domain"
	"jejum/internal/modules/progression/dto"
	progressionin "jejum/internal/modules/progression/port/in"
	"jejum/internal/modules/progression/port/out"
)

type Interactor struct {
	states out.StateStore
}

var _ progressionin.Usecase = (*Interactor)(nil)

func NewInteractor(states out.StateStore) *Interactor {
	return &Interactor{states: states}
}

func (i *Interactor) Progress(ctx context.Context) (dto.ProgressOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.ProgressOutput{}, err
	}
	achievements := domain.MergeWithCatalog(st.Achievements)
	outs := make([]dto.AchievementOutput, 0, len(achievements))
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
		}
		outs = append(outs, dto.AchievementOutput{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Icon:         a.Icon,
			Unlocked:     a.Unlocked,
			DateUnlocked: a.DateUnlocked.Time,
		})
	}
	return dto.ProgressOutput{
		Level:        st.User.Level,
		CurrentXP:    st.User.CurrentXP,
		NextLevelXP:  st.User.NextLevelXP,
		Streak:       st.User.Streak,
		Achievements: outs,
		Unlocked:     unlocked,
		Total:        len(outs),
	}, nil
}
