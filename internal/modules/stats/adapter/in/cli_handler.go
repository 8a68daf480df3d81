package in

import (
	"context"

	statsdto "jejum/internal/modules/stats/dto"
	statsin "jejum/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context, days int) (statsdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, days)
}

func (h CLIHandler) Reindex(ctx context.Context) (statsdto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx)
}
