package out

import (
	"context"

	"jejum/internal/state"
)

type StateStore interface {
	Load(ctx context.Context) (state.AppState, error)
	Save(ctx context.Context, appState state.AppState) error
}
