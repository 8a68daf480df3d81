package in

import (
	"context"

	profiledto "jejum/internal/modules/profile/dto"
	profilein "jejum/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (profiledto.ProfileOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) Set(ctx context.Context, input profiledto.SetInput) (profiledto.ProfileOutput, error) {
	return h.usecase.Set(ctx, input)
}

func (h CLIHandler) RecordWeight(ctx context.Context, weight float64) (profiledto.WeightRecordOutput, error) {
	return h.usecase.RecordWeight(ctx, weight)
}
