package in

import (
	"context"

	"jejum/internal/modules/stats/dto"
)

type Usecase interface {
	Summary(ctx context.Context, days int) (dto.SummaryOutput, error)
	Reindex(ctx context.Context) (dto.ReindexOutput, error)
}
