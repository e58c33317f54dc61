package usecase

import (
	"context"
	"time"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/domain"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	gradingin "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/port/in"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/service"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/clock"
)

type Interactor struct {
	svc   *service.GradingService
	clock clock.Clock
}

func NewInteractor(svc *service.GradingService, clk clock.Clock) gradingin.Usecase {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Interactor{svc: svc, clock: clk}
}

func (i *Interactor) ComputeCurriculum(ctx context.Context, input dto.CurriculumInput) (dto.ComputeOutput, error) {
	computation, department, err := i.svc.ComputeCurriculum(ctx, input.Department, input.Semester, input.Grades)
	if err != nil {
		return dto.ComputeOutput{}, err
	}
	out := toOutput(computation, i.clock.Now())
	out.Mode = dto.ModeCurriculum
	out.Department = department
	out.Semester = input.Semester
	return out, nil
}

func (i *Interactor) ComputeCustom(_ context.Context, input dto.CustomInput) (dto.ComputeOutput, error) {
	list := &domain.CustomSubjectList{}
	for _, entry := range input.Subjects {
		if _, err := list.Add(entry.Name, entry.Code, entry.Credits); err != nil {
			return dto.ComputeOutput{}, err
		}
	}
	computation, err := i.svc.ComputeCustom(list, input.Grades)
	if err != nil {
		return dto.ComputeOutput{}, err
	}
	out := toOutput(computation, i.clock.Now())
	out.Mode = dto.ModeCustom
	return out, nil
}

func (i *Interactor) Classify(_ context.Context, cgpa float64) (dto.ClassificationOutput, error) {
	classification, err := i.svc.Classify(cgpa)
	if err != nil {
		return dto.ClassificationOutput{}, err
	}
	return toClassification(classification, cgpa), nil
}

// ValidateCustomSubject checks one entry as it is added, before any grade is chosen.
func (i *Interactor) ValidateCustomSubject(_ context.Context, input dto.CustomSubjectInput) (dto.CustomSubjectOutput, error) {
	subject, err := domain.NewCustomSubject(input.Name, input.Code, input.Credits)
	if err != nil {
		return dto.CustomSubjectOutput{}, err
	}
	return dto.CustomSubjectOutput{Name: subject.Name, Code: subject.Code, Credits: subject.Credits}, nil
}

func toOutput(c domain.Computation, at time.Time) dto.ComputeOutput {
	return dto.ComputeOutput{
		Value:          c.Value,
		TotalPoints:    c.TotalPoints,
		TotalCredits:   c.TotalCredits,
		SubjectCount:   c.SubjectCount,
		Timestamp:      at,
		Classification: toClassification(domain.Classify(c.Value), c.Value),
		Percentage:     domain.EstimatedPercentage(c.Value),
	}
}

func toClassification(c domain.Classification, cgpa float64) dto.ClassificationOutput {
	return dto.ClassificationOutput{
		Band:       c.Band.Label,
		BandColor:  c.Band.Color,
		Message:    c.Tier.Message,
		Emoji:      c.Tier.Emoji,
		Percentage: domain.EstimatedPercentage(cgpa),
	}
}
