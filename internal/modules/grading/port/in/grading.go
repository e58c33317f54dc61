package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
)

type Usecase interface {
	ComputeCurriculum(ctx context.Context, input dto.CurriculumInput) (dto.ComputeOutput, error)
	ComputeCustom(ctx context.Context, input dto.CustomInput) (dto.ComputeOutput, error)
	Classify(ctx context.Context, cgpa float64) (dto.ClassificationOutput, error)
	ValidateCustomSubject(ctx context.Context, input dto.CustomSubjectInput) (dto.CustomSubjectOutput, error)
}
