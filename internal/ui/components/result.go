package components

import (
	"fmt"
	"strings"

	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/theme"
)

// ResultCard renders a computed result the way the calculator tabs show it.
func ResultCard(out gradingdto.ComputeOutput) string {
	c := out.Classification
	var sb strings.Builder
	sb.WriteString(theme.Band(c.BandColor).Render(fmt.Sprintf("CGPA %.2f  %s", out.Value, c.Band)))
	sb.WriteString("  " + c.Emoji + "\n")
	sb.WriteString(c.Message + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d subjects · %.1f credits · ≈ %.1f%%",
		out.SubjectCount, out.TotalCredits, c.Percentage)))
	return sb.String()
}

// SaveInput turns a computed result into the history record to persist.
func SaveInput(out gradingdto.ComputeOutput) historydto.SaveInput {
	return historydto.SaveInput{
		Value:        out.Value,
		Mode:         out.Mode,
		Department:   out.Department,
		Semester:     out.Semester,
		SubjectCount: out.SubjectCount,
		Timestamp:    out.Timestamp,
	}
}
