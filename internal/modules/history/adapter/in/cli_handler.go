package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	historyin "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/port/in"
)

type CLIHandler struct {
	usecase historyin.Usecase
}

func NewCLIHandler(usecase historyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Save(ctx context.Context, input dto.SaveInput) error {
	return h.usecase.Save(ctx, input)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.ResultOutput, error) {
	return h.usecase.LoadAll(ctx)
}

func (h CLIHandler) Latest(ctx context.Context) (dto.ResultOutput, bool, error) {
	return h.usecase.LoadLatest(ctx)
}

func (h CLIHandler) Show(ctx context.Context, mode, department string, semester int) (dto.ResultOutput, bool, error) {
	return h.usecase.LoadByContext(ctx, dto.ContextInput{Mode: mode, Department: department, Semester: semester})
}

func (h CLIHandler) Stats(ctx context.Context) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
