package in

import (
	"context"

	historydto "jejum/internal/modules/history/dto"
	historyin "jejum/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]historydto.SessionOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Add(ctx context.Context, input historydto.RecordInput) (historydto.RecordOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Edit(ctx context.Context, input historydto.RecordInput) (historydto.RecordOutput, error) {
	return h.usecase.Edit(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
