package in

import (
	"context"

	"jejum/internal/modules/history/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.SessionOutput, error)
	Add(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Edit(ctx context.Context, input dto.RecordInput) (dto.RecordOutput, error)
	Delete(ctx context.Context, id string) error
}
