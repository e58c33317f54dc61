package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
	reportin "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, title, dir string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Title: title, Dir: dir})
}
