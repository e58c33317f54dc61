package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	catalogin "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Departments(ctx context.Context) ([]string, error) {
	return h.usecase.Departments(ctx)
}

func (h CLIHandler) Semesters(ctx context.Context, department string) ([]int, error) {
	return h.usecase.Semesters(ctx, department)
}

func (h CLIHandler) Subjects(ctx context.Context, department string, semester int) (dto.SubjectsOutput, error) {
	return h.usecase.SubjectsFor(ctx, dto.SubjectsInput{Department: department, Semester: semester})
}
