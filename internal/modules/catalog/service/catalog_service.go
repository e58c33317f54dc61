package service

import (
	"context"
	"sort"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/domain"
	catalogout "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/port/out"
)

// CatalogService holds the curriculum loaded once at startup. It is read-only afterwards.
type CatalogService struct {
	curriculum domain.Curriculum
}

func NewCatalogService(ctx context.Context, source catalogout.CurriculumSource) (*CatalogService, error) {
	curriculum, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &CatalogService{curriculum: curriculum}, nil
}

func (s *CatalogService) Version() int {
	return s.curriculum.Version
}

func (s *CatalogService) Departments() []string {
	out := make([]string, 0, len(s.curriculum.Departments))
	for dept := range s.curriculum.Departments {
		out = append(out, dept)
	}
	sort.Strings(out)
	return out
}

func (s *CatalogService) Semesters(department string) []int {
	semesters := s.curriculum.Departments[domain.NormalizeDepartment(department)]
	out := make([]int, 0, len(semesters))
	for semester := range semesters {
		out = append(out, semester)
	}
	sort.Ints(out)
	return out
}

func (s *CatalogService) SubjectsFor(department string, semester int) []domain.Subject {
	return s.curriculum.SubjectsFor(department, semester)
}
