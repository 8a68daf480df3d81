package in

import (
	"context"

	fastingdto "jejum/internal/modules/fasting/dto"
	fastingin "jejum/internal/modules/fasting/port/in"
)

type CLIHandler struct {
	usecase fastingin.Usecase
}

func NewCLIHandler(usecase fastingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, hours float64, modeID, intention string) (fastingdto.StartOutput, error) {
	return h.usecase.Start(ctx, fastingdto.StartInput{Hours: hours, ModeID: modeID, Intention: intention})
}

func (h CLIHandler) Status(ctx context.Context) (fastingdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) AddWater(ctx context.Context) (fastingdto.WaterOutput, error) {
	return h.usecase.AddWater(ctx)
}

func (h CLIHandler) RemoveWater(ctx context.Context) (fastingdto.WaterOutput, error) {
	return h.usecase.RemoveWater(ctx)
}

func (h CLIHandler) SetNotes(ctx context.Context, notes string) error {
	return h.usecase.SetNotes(ctx, notes)
}

func (h CLIHandler) Finish(ctx context.Context, mood, lastMeal string) (fastingdto.FinishOutput, error) {
	return h.usecase.Finish(ctx, fastingdto.FinishInput{Mood: mood, LastMeal: lastMeal})
}

func (h CLIHandler) WaterReminderDue(ctx context.Context) (bool, error) {
	return h.usecase.WaterReminderDue(ctx)
}

func (h CLIHandler) MarkWaterReminded(ctx context.Context) error {
	return h.usecase.MarkWaterReminded(ctx)
}
