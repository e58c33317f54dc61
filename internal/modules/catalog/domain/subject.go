package domain

import (
	"fmt"
	"strings"
)

const (
	MinSemester = 1
	MaxSemester = 8
)

type Subject struct {
	Code    string
	Name    string
	Credits float64
}

func (s Subject) Validate() error {
	if strings.TrimSpace(s.Code) == "" {
		return fmt.Errorf("subject code is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("subject %s: name is required", s.Code)
	}
	if s.Credits <= 0 {
		return fmt.Errorf("subject %s: credits must be positive", s.Code)
	}
	return nil
}

// Curriculum is the immutable department -> semester -> subjects table.
type Curriculum struct {
	Version     int
	Departments map[string]map[int][]Subject
}

func ValidSemester(semester int) bool {
	return semester >= MinSemester && semester <= MaxSemester
}

func NormalizeDepartment(department string) string {
	return strings.ToUpper(strings.TrimSpace(department))
}

func (c Curriculum) Validate() error {
	if len(c.Departments) == 0 {
		return fmt.Errorf("curriculum has no departments")
	}
	for dept, semesters := range c.Departments {
		if dept == "" || dept != NormalizeDepartment(dept) {
			return fmt.Errorf("department code %q must be upper case", dept)
		}
		for semester, subjects := range semesters {
			if !ValidSemester(semester) {
				return fmt.Errorf("%s: semester %d out of range", dept, semester)
			}
			seen := make(map[string]struct{}, len(subjects))
			for _, subject := range subjects {
				if err := subject.Validate(); err != nil {
					return fmt.Errorf("%s semester %d: %w", dept, semester, err)
				}
				if _, dup := seen[subject.Code]; dup {
					return fmt.Errorf("%s semester %d: duplicate subject code %s", dept, semester, subject.Code)
				}
				seen[subject.Code] = struct{}{}
			}
		}
	}
	return nil
}

// SubjectsFor returns a copy of the subject list, or nil when the pair is not configured.
func (c Curriculum) SubjectsFor(department string, semester int) []Subject {
	semesters, ok := c.Departments[NormalizeDepartment(department)]
	if !ok || !ValidSemester(semester) {
		return nil
	}
	subjects := semesters[semester]
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}
