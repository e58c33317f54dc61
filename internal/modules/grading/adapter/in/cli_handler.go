package in

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	gradingin "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/port/in"
)

type CLIHandler struct {
	usecase gradingin.Usecase
}

func NewCLIHandler(usecase gradingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ComputeCurriculum(ctx context.Context, department string, semester int, grades map[string]string) (dto.ComputeOutput, error) {
	return h.usecase.ComputeCurriculum(ctx, dto.CurriculumInput{Department: department, Semester: semester, Grades: grades})
}

func (h CLIHandler) ComputeCustom(ctx context.Context, subjects []dto.CustomSubjectInput, grades map[string]string) (dto.ComputeOutput, error) {
	return h.usecase.ComputeCustom(ctx, dto.CustomInput{Subjects: subjects, Grades: grades})
}

func (h CLIHandler) Classify(ctx context.Context, cgpa float64) (dto.ClassificationOutput, error) {
	return h.usecase.Classify(ctx, cgpa)
}

func (h CLIHandler) ValidateCustomSubject(ctx context.Context, name, code, credits string) (dto.CustomSubjectOutput, error) {
	return h.usecase.ValidateCustomSubject(ctx, dto.CustomSubjectInput{Name: name, Code: code, Credits: credits})
}
