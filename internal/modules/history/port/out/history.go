package out

import (
	"context"

	fastingdomain "jejum/internal/modules/fasting/domain"
	"jejum/internal/state"
)

type StateStore interface {
	Load(ctx context.Context) (state.AppState, error)
	Save(ctx context.Context, appState state.AppState) error
}

type SessionIndex interface {
	Upsert(ctx context.Context, session fastingdomain.FastingSession) error
	Delete(ctx context.Context, id string) error
}
