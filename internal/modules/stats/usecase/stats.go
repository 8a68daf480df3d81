package usecase

import (
	"context"
	"time"

	"jejum/internal/modules/stats/dto"
	statsin "jejum/internal/modules/stats/port/in"
	"jejum/internal/modules/stats/port/out"
	"jejum/internal/platform/clock"
)

type Interactor struct {
	clock  clock.Clock
	states out.StateStore
	index  out.SessionIndex
}

var _ statsin.Usecase = (*Interactor)(nil)

func NewInteractor(clk clock.Clock, states out.StateStore, index out.SessionIndex) *Interactor {
	return &Interactor{clock: clk, states: states, index: index}
}

func (i *Interactor) Summary(ctx context.Context, days int) (dto.SummaryOutput, error) {
	var since time.Time
	if days > 0 {
		since = i.clock.Now().Add(-time.Duration(days) * 24 * time.Hour)
	}
	agg, err := i.index.Summarize(ctx, since)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	summary := dto.SummaryOutput{
		Days:           days,
		TotalFasts:     agg.TotalFasts,
		CompletedFasts: agg.CompletedFasts,
		TotalHours:     agg.TotalHours,
		LongestHours:   agg.LongestHours,
		TotalWater:     agg.TotalWater,
	}
	if agg.TotalFasts > 0 {
		summary.AverageHours = agg.TotalHours / float64(agg.TotalFasts)
		summary.CompletionRate = 100 * float64(agg.CompletedFasts) / float64(agg.TotalFasts)
	}
	return summary, nil
}

// Reindex drops the projection and rebuilds it from the state file. The
// projection never feeds back into the aggregate, so this is always safe.
func (i *Interactor) Reindex(ctx context.Context) (dto.ReindexOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	if err := i.index.Reset(ctx); err != nil {
		return dto.ReindexOutput{}, err
	}
	indexed := 0
	for _, session := range st.History {
		if err := i.index.Upsert(ctx, session); err != nil {
			return dto.ReindexOutput{}, err
		}
		indexed++
	}
	return dto.ReindexOutput{Indexed: indexed}, nil
}
