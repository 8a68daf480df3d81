package in

import (
	"context"

	"jejum/internal/modules/fasting/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	AddWater(ctx context.Context) (dto.WaterOutput, error)
	RemoveWater(ctx context.Context) (dto.WaterOutput, error)
	SetNotes(ctx context.Context, notes string) error
	Finish(ctx context.Context, input dto.FinishInput) (dto.FinishOutput, error)
	WaterReminderDue(ctx context.Context) (bool, error)
	MarkWaterReminded(ctx context.Context) error
}
