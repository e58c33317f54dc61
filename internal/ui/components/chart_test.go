package components_test

import (
	"strings"
	"testing"

	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
)

func TestChart(t *testing.T) {
	t.Parallel()
	if got := components.Chart(nil, 5); got != "no saved results" {
		t.Fatalf("unexpected empty chart: %q", got)
	}
	chart := components.Chart([]float64{10, 5, 7}, 5)
	lines := strings.Split(chart, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 5 rows plus axis and labels, got %d:\n%s", len(lines), chart)
	}
	if lines[0] != " 10.0 │ ██" {
		t.Fatalf("only the 10.0 bar should reach the top row, got %q", lines[0])
	}
	if lines[1] != "  8.0 │ ██    ▄▄" {
		t.Fatalf("7.0 should show a half block at 8.0, got %q", lines[1])
	}
	if lines[2] != "  6.0 │ ██ ▄▄ ██" {
		t.Fatalf("5.0 gets a half block below 6.0, got %q", lines[2])
	}
	if !strings.HasSuffix(lines[6], "  1  2  3") {
		t.Fatalf("unexpected labels %q", lines[6])
	}
}

func TestSparklineAndTrend(t *testing.T) {
	t.Parallel()
	if got := components.Sparkline([]float64{0, 10, 12, -1}); got != "▁██▁" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := components.Trend([]float64{7.5, 8}); got != "↑ +0.50" {
		t.Fatalf("unexpected trend %q", got)
	}
	if got := components.Trend([]float64{8, 7.25}); got != "↓ -0.75" {
		t.Fatalf("unexpected trend %q", got)
	}
	if got := components.Trend([]float64{8}); got != "–" {
		t.Fatalf("single value has no trend, got %q", got)
	}
}
