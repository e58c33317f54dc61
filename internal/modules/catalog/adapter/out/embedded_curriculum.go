package out

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/domain"
	catalogout "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/port/out"
)

//go:embed data/curriculum.yaml
var embeddedCurriculum []byte

type curriculumFile struct {
	Version     int                                 `yaml:"version"`
	Departments map[string]map[int][]subjectRecord `yaml:"departments"`
}

type subjectRecord struct {
	Code    string  `yaml:"code"`
	Name    string  `yaml:"name"`
	Credits float64 `yaml:"credits"`
}

// YAMLCurriculumSource decodes a curriculum table. The embedded table ships with the binary;
// NewFileCurriculumSource exists for curricula kept next to the data dir.
type YAMLCurriculumSource struct {
	raw []byte
}

func NewEmbeddedCurriculumSource() catalogout.CurriculumSource {
	return &YAMLCurriculumSource{raw: embeddedCurriculum}
}

func NewFileCurriculumSource(path string) (catalogout.CurriculumSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	return &YAMLCurriculumSource{raw: raw}, nil
}

func (s *YAMLCurriculumSource) Load(_ context.Context) (domain.Curriculum, error) {
	file := curriculumFile{}
	dec := yaml.NewDecoder(bytes.NewReader(s.raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return domain.Curriculum{}, fmt.Errorf("decode curriculum: %w", err)
	}
	out := domain.Curriculum{
		Version:     file.Version,
		Departments: make(map[string]map[int][]domain.Subject, len(file.Departments)),
	}
	for dept, semesters := range file.Departments {
		bySemester := make(map[int][]domain.Subject, len(semesters))
		for semester, records := range semesters {
			subjects := make([]domain.Subject, 0, len(records))
			for _, r := range records {
				subjects = append(subjects, domain.Subject{Code: r.Code, Name: r.Name, Credits: r.Credits})
			}
			bySemester[semester] = subjects
		}
		out.Departments[dept] = bySemester
	}
	if err := out.Validate(); err != nil {
		return domain.Curriculum{}, fmt.Errorf("invalid curriculum: %w", err)
	}
	return out, nil
}
