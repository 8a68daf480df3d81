package in

import (
	"context"

	"jejum/internal/modules/profile/dto"
)

// Usecase exposes the local profile operations.
type Usecase interface {
	Show(ctx context.Context) (dto.ProfileOutput, error)
	Set(ctx context.Context, input dto.SetInput) (dto.ProfileOutput, error)
	RecordWeight(ctx context.Context, weight float64) (dto.WeightRecordOutput, error)
}
