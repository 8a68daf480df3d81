package out

import (
	"context"

	"jejum/internal/modules/fasting/domain"
	"jejum/internal/state"
)

type StateStore interface {
	Load(ctx context.Context) (state.AppState, error)
	Save(ctx context.Context, appState state.AppState) error
}

// NoteStore writes the journal note produced when a fast is finished.
type NoteStore interface {
	Save(ctx context.Context, session domain.FastingSession) (string, error)
}

// SessionIndex keeps the queryable projection in step with the aggregate.
type SessionIndex interface {
	Upsert(ctx context.Context, session domain.FastingSession) error
}
