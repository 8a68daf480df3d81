package in

import (
	"context"

	"jejum/internal/modules/progression/dto"
)

// Usecase exposes the XP, level and achievement read operations. Writes
// happen as part of the finish transition and are not exposed here.
type Usecase interface {
	Progress(ctx context.Context) (dto.ProgressOutput, error)
}
