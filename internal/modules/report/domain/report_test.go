package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/domain"
)

func TestTable(t *testing.T) {
	t.Parallel()
	table := domain.Table([]domain.Row{
		{SavedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC), Label: "IT Semester 1", SubjectCount: 7, Value: 8.5, Band: "A", Percentage: 77.5},
		{SavedAt: time.Date(2026, 2, 2, 3, 4, 0, 0, time.UTC), Label: "a|b", SubjectCount: 2, Value: 9, Band: "A+", Percentage: 82.5},
	})
	lines := strings.Split(table, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and two rows, got %d lines", len(lines))
	}
	if lines[2] != "| 1 | 2026-01-02 03:04 | IT Semester 1 | 7 | 8.50 | A | 77.5 |" {
		t.Fatalf("unexpected row: %s", lines[2])
	}
	if !strings.Contains(lines[3], `a\|b`) {
		t.Fatalf("pipes must be escaped: %s", lines[3])
	}
}
