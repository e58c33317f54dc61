package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
)

type Usecase interface {
	Departments(ctx context.Context) ([]string, error)
	Semesters(ctx context.Context, department string) ([]int, error)
	SubjectsFor(ctx context.Context, input dto.SubjectsInput) (dto.SubjectsOutput, error)
}
