package domain_test

import (
	"errors"
	"testing"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/domain"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

func TestParseGrade(t *testing.T) {
	t.Parallel()
	g, err := domain.ParseGrade(" s ")
	if err != nil || g != domain.GradeS {
		t.Fatalf("expected S, got %q (%v)", g, err)
	}
	if g.Points() != 10 || domain.GradeF.Points() != 0 || domain.GradeE.Points() != 5 {
		t.Fatalf("unexpected grade points")
	}
	for _, bad := range []string{"", "G", "A+", "10"} {
		if _, err := domain.ParseGrade(bad); err == nil {
			t.Fatalf("grade %q should be rejected", bad)
		}
	}
	if domain.GradeF.Next() != domain.GradeS || domain.Grade("").Next() != domain.GradeS || domain.GradeS.Next() != domain.GradeA {
		t.Fatalf("unexpected grade cycle")
	}
}

func TestComputeWeightedAverage(t *testing.T) {
	t.Parallel()
	subjects := []domain.Subject{
		{Code: "CS101", Name: "Programming", Credits: 4},
		{Code: "CS102", Name: "Discrete Maths", Credits: 3},
	}
	got, err := domain.Compute(subjects, map[string]string{"CS101": "A", "CS102": "B"}, domain.FirstMissing)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got.Value != 8.57 || got.TotalPoints != 60 || got.TotalCredits != 7 || got.SubjectCount != 2 {
		t.Fatalf("unexpected computation: %+v", got)
	}
	again, err := domain.Compute(subjects, map[string]string{"CS101": "A", "CS102": "B"}, domain.FirstMissing)
	if err != nil || again != got {
		t.Fatalf("compute must be idempotent: %+v vs %+v (%v)", again, got, err)
	}
}

func TestComputeEmptyIsZero(t *testing.T) {
	t.Parallel()
	got, err := domain.Compute(nil, nil, domain.FirstMissing)
	if err != nil {
		t.Fatalf("compute empty: %v", err)
	}
	if got.Value != 0 || got.SubjectCount != 0 {
		t.Fatalf("expected zero computation, got %+v", got)
	}
}

func TestComputeSameGradeLaw(t *testing.T) {
	t.Parallel()
	subjects := []domain.Subject{
		{Code: "A1", Credits: 4}, {Code: "A2", Credits: 1.5}, {Code: "A3", Credits: 3},
		{Code: "A4", Credits: 0.5}, {Code: "A5", Credits: 2.25},
	}
	for _, grade := range domain.Grades() {
		selections := map[string]string{}
		for _, s := range subjects {
			selections[s.Code] = string(grade)
		}
		got, err := domain.Compute(subjects, selections, domain.AllMissing)
		if err != nil {
			t.Fatalf("compute %s: %v", grade, err)
		}
		if got.Value != grade.Points() {
			t.Fatalf("all %s should give %.2f, got %.2f", grade, grade.Points(), got.Value)
		}
		if got.Value < 0 || got.Value > 10 {
			t.Fatalf("value out of range: %.2f", got.Value)
		}
	}
}

func TestComputeRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()
	subjects := make([]domain.Subject, 0, 8)
	selections := map[string]string{}
	for i, code := range []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7", "S8"} {
		subjects = append(subjects, domain.Subject{Code: code, Credits: 1})
		selections[code] = "B"
		if i == 7 {
			selections[code] = "A"
		}
	}
	got, err := domain.Compute(subjects, selections, domain.FirstMissing)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got.Value != 8.13 {
		t.Fatalf("65/8 should round to 8.13, got %.4f", got.Value)
	}
}

func TestComputeMissingGrades(t *testing.T) {
	t.Parallel()
	subjects := []domain.Subject{{Code: "X1", Credits: 3}, {Code: "X2", Credits: 3}, {Code: "X3", Credits: 2}}
	selections := map[string]string{"X1": "S", "X3": "Q"}

	_, err := domain.Compute(subjects, selections, domain.FirstMissing)
	var missing *domain.MissingGradeError
	if !errors.As(err, &missing) {
		t.Fatalf("expected missing grade error, got %v", err)
	}
	if missing.SubjectCode != "X2" || len(missing.Missing) != 1 {
		t.Fatalf("first missing should be X2, got %+v", missing)
	}
	if !errors.Is(err, apperrors.ErrMissingGrade) {
		t.Fatalf("missing grade should unwrap to sentinel")
	}

	_, err = domain.Compute(subjects, selections, domain.AllMissing)
	if !errors.As(err, &missing) {
		t.Fatalf("expected missing grade error, got %v", err)
	}
	if missing.SubjectCode != "X2" || len(missing.Missing) != 2 || missing.Missing[1] != "X3" {
		t.Fatalf("all missing should list X2 and X3, got %+v", missing)
	}
}

func TestComputeDuplicateCodesShareSelection(t *testing.T) {
	t.Parallel()
	subjects := []domain.Subject{{Code: "LAB", Credits: 2}, {Code: "LAB", Credits: 1}, {Code: "TH", Credits: 3}}
	got, err := domain.Compute(subjects, map[string]string{"LAB": "S", "TH": "C"}, domain.AllMissing)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if got.TotalCredits != 6 || got.TotalPoints != 51 || got.Value != 8.5 {
		t.Fatalf("unexpected computation: %+v", got)
	}
}

func TestEstimatedPercentage(t *testing.T) {
	t.Parallel()
	cases := map[float64]float64{8.57: 78.2, 10: 92.5, 0.5: 0, 0: 0, 7.5: 67.5}
	for cgpa, want := range cases {
		if got := domain.EstimatedPercentage(cgpa); got != want {
			t.Fatalf("percentage for %.2f: expected %.1f, got %.1f", cgpa, want, got)
		}
	}
}
