package in

import (
	"context"

	progressiondto "jejum/internal/modules/progression/dto"
	progressionin "jejum/internal/modules/progression/port/in"
)

type CLIHandler struct {
	usecase progressionin.Usecase
}

func NewCLIHandler(usecase progressionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Progress(ctx context.Context) (progressiondto.ProgressOutput, error) {
	return h.usecase.Progress(ctx)
}
