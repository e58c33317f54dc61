package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	ManagedResultsStart = "<!-- cgpatrack:results:start -->"
	ManagedResultsEnd   = "<!-- cgpatrack:results:end -->"
	DefaultTitle        = "CGPA Report"
)

type Row struct {
	SavedAt      time.Time
	Label        string
	SubjectCount int
	Value        float64
	Band         string
	Percentage   float64
}

// Table renders rows as a markdown table in the given order.
func Table(rows []Row) string {
	b := strings.Builder{}
	b.WriteString("| # | Saved | Context | Subjects | CGPA | Band | Est. % |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %.2f | %s | %.1f |\n",
			i+1,
			row.SavedAt.UTC().Format("2006-01-02 15:04"),
			escapeCell(row.Label),
			row.SubjectCount,
			row.Value,
			row.Band,
			row.Percentage,
		)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
