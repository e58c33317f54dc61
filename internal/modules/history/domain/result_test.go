package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/history/domain"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
)

func TestContextKeys(t *testing.T) {
	t.Parallel()
	semester := domain.Context{Mode: domain.ModeCurriculum, Department: "IT", Semester: 3}
	if semester.Key() != "IT:3" || domain.ResultKey(semester) != "cgpa:result:IT:3" {
		t.Fatalf("unexpected curriculum key: %s", semester.Key())
	}
	custom := domain.Context{Mode: domain.ModeCustom}
	if custom.Key() != "custom" || custom.Label() != "Custom" {
		t.Fatalf("unexpected custom key: %s", custom.Key())
	}
	if semester.Label() != "IT Semester 3" {
		t.Fatalf("unexpected label: %s", semester.Label())
	}
}

func TestResultValidate(t *testing.T) {
	t.Parallel()
	base := domain.Result{
		Value:        8.2,
		Context:      domain.Context{Mode: domain.ModeCurriculum, Department: "CSE", Semester: 2},
		SubjectCount: 6,
		Timestamp:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid result: %v", err)
	}
	for name, mutate := range map[string]func(*domain.Result){
		"negative":   func(r *domain.Result) { r.Value = -0.1 },
		"too high":   func(r *domain.Result) { r.Value = 10.01 },
		"no subject": func(r *domain.Result) { r.SubjectCount = 0 },
		"no mode":    func(r *domain.Result) { r.Context.Mode = "" },
		"semester":   func(r *domain.Result) { r.Context.Semester = 0 },
		"semester 9": func(r *domain.Result) { r.Context.Semester = 9 },
		"semester42": func(r *domain.Result) { r.Context.Semester = 42 },
		"timestamp":  func(r *domain.Result) { r.Timestamp = time.Time{} },
	} {
		candidate := base
		mutate(&candidate)
		if err := candidate.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", name, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []domain.Result{
		{Value: 7, Timestamp: at},
		{Value: 8, Timestamp: at.Add(time.Hour)},
		{Value: 9, Timestamp: at.Add(2 * time.Hour)},
	}
	stats := domain.Summarize(results)
	if stats.Count != 3 || stats.Mean != 8.0 || stats.Max != 9 || stats.Min != 7 || stats.Latest.Value != 9 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if empty := domain.Summarize(nil); empty.Count != 0 || empty.Mean != 0 {
		t.Fatalf("empty stats should be zero: %+v", empty)
	}
}
