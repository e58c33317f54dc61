package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
