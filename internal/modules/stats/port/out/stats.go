package out

import (
	"context"
	"time"

	fastingdomain "jejum/internal/modules/fasting/domain"
	"jejum/internal/state"
)

type StateStore interface {
	Load(ctx context.Context) (state.AppState, error)
}

// Aggregate is the result shape of the projection summary query.
type Aggregate struct {
	TotalFasts     int
	CompletedFasts int
	TotalHours     float64
	LongestHours   float64
	TotalWater     int
}

// SessionIndex is the rebuildable projection over finished sessions. The
// state file stays authoritative; the index only serves queries.
type SessionIndex interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, session fastingdomain.FastingSession) error
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context, since time.Time) (Aggregate, error)
}
