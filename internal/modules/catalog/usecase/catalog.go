package usecase

import (
	"context"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/domain"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	catalogin "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/port/in"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Departments(_ context.Context) ([]string, error) {
	return i.svc.Departments(), nil
}

func (i *Interactor) Semesters(_ context.Context, department string) ([]int, error) {
	return i.svc.Semesters(department), nil
}

// SubjectsFor never fails for unknown pairs; callers see an empty subject list.
func (i *Interactor) SubjectsFor(_ context.Context, input dto.SubjectsInput) (dto.SubjectsOutput, error) {
	subjects := i.svc.SubjectsFor(input.Department, input.Semester)
	out := dto.SubjectsOutput{
		Department: domain.NormalizeDepartment(input.Department),
		Semester:   input.Semester,
		Subjects:   make([]dto.SubjectOutput, 0, len(subjects)),
	}
	for _, subject := range subjects {
		out.Subjects = append(out.Subjects, dto.SubjectOutput{Code: subject.Code, Name: subject.Name, Credits: subject.Credits})
		out.TotalCredits += subject.Credits
	}
	return out, nil
}
