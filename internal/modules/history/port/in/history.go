package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
)

type Usecase interface {
	Save(ctx context.Context, input dto.SaveInput) error
	LoadAll(ctx context.Context) ([]dto.ResultOutput, error)
	LoadLatest(ctx context.Context) (dto.ResultOutput, bool, error)
	LoadByContext(ctx context.Context, input dto.ContextInput) (dto.ResultOutput, bool, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
}
