package usecase

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
	reportin "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/port/in"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	path, count, err := i.svc.Export(ctx, input.Title, input.Dir)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path, Count: count}, nil
}
