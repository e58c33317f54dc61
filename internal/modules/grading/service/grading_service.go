package service

import (
	"context"
	"fmt"
	"math"

	catalogdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	catalogin "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/port/in"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/domain"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

type GradingService struct {
	catalog catalogin.Usecase
}

func NewGradingService(catalog catalogin.Usecase) *GradingService {
	return &GradingService{catalog: catalog}
}

// ComputeCurriculum stops at the first subject without a grade. It also returns the
// department code as the catalog normalised it.
func (s *GradingService) ComputeCurriculum(ctx context.Context, department string, semester int, grades map[string]string) (domain.Computation, string, error) {
	listing, err := s.catalog.SubjectsFor(ctx, catalogdto.SubjectsInput{Department: department, Semester: semester})
	if err != nil {
		return domain.Computation{}, "", fmt.Errorf("load subjects: %w", err)
	}
	subjects := make([]domain.Subject, 0, len(listing.Subjects))
	for _, subject := range listing.Subjects {
		subjects = append(subjects, domain.Subject{Code: subject.Code, Name: subject.Name, Credits: subject.Credits})
	}
	computation, err := domain.Compute(subjects, grades, domain.FirstMissing)
	return computation, listing.Department, err
}

// ComputeCustom validates every entry before computing and reports all missing grades at once.
func (s *GradingService) ComputeCustom(list *domain.CustomSubjectList, grades map[string]string) (domain.Computation, error) {
	if list.Len() == 0 {
		return domain.Computation{}, fmt.Errorf("add at least one subject: %w", apperrors.ErrInvalidSubject)
	}
	return domain.Compute(list.Subjects(), grades, domain.AllMissing)
}

func (s *GradingService) Classify(cgpa float64) (domain.Classification, error) {
	if math.IsNaN(cgpa) || cgpa < 0 || cgpa > 10 {
		return domain.Classification{}, fmt.Errorf("cgpa %v outside 0-10: %w", cgpa, apperrors.ErrInvalidInput)
	}
	return domain.Classify(cgpa), nil
}
