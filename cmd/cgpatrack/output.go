package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	catalogdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
)

const timeLayout = "2006-01-02 15:04"

func bandColor(band string) *color.Color {
	switch band {
	case "O", "A+":
		return color.New(color.FgGreen, color.Bold)
	case "A", "B+":
		return color.New(color.FgCyan)
	case "B", "C":
		return color.New(color.FgYellow)
	case "P":
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func printSubjects(w io.Writer, out catalogdto.SubjectsOutput) {
	_, _ = fmt.Fprintf(w, "%s semester %d\n", out.Department, out.Semester)
	table := newTable(w, []string{"#", "Code", "Subject", "Credits"})
	for i, s := range out.Subjects {
		table.Append([]string{strconv.Itoa(i + 1), s.Code, s.Name, formatCredits(s.Credits)})
	}
	table.SetFooter([]string{"", "", "Total", formatCredits(out.TotalCredits)})
	table.Render()
}

func printResult(w io.Writer, out gradingdto.ComputeOutput) {
	label := "Custom"
	if out.Mode == gradingdto.ModeCurriculum {
		label = fmt.Sprintf("%s Semester %d", out.Department, out.Semester)
	}
	c := out.Classification
	_, _ = fmt.Fprintf(w, "%s  CGPA %s  %s\n", label, bandColor(c.Band).Sprintf("%.2f", out.Value), bandColor(c.Band).Sprint(c.Band))
	_, _ = fmt.Fprintf(w, "%d subjects, %s credits, %.2f grade points\n", out.SubjectCount, formatCredits(out.TotalCredits), out.TotalPoints)
	_, _ = fmt.Fprintf(w, "%s %s  (≈ %.1f%%)\n", c.Emoji, c.Message, out.Percentage)
}

func printClassification(w io.Writer, cgpa float64, out gradingdto.ClassificationOutput) {
	_, _ = fmt.Fprintf(w, "%.2f  %s  ≈ %.1f%%\n", cgpa, bandColor(out.Band).Sprint(out.Band), out.Percentage)
	_, _ = fmt.Fprintf(w, "%s %s\n", out.Emoji, out.Message)
}

func printHistory(w io.Writer, results []historydto.ResultOutput) {
	table := newTable(w, []string{"Saved", "Context", "Subjects", "CGPA"})
	for _, r := range results {
		table.Append([]string{
			r.Timestamp.Local().Format(timeLayout),
			r.Label,
			strconv.Itoa(r.SubjectCount),
			fmt.Sprintf("%.2f", r.Value),
		})
	}
	table.Render()
}

func printSaved(w io.Writer, r historydto.ResultOutput) {
	_, _ = fmt.Fprintf(w, "%s  CGPA %.2f  %d subjects  saved %s\n", r.Label, r.Value, r.SubjectCount, r.Timestamp.Local().Format(timeLayout))
}

func printStats(w io.Writer, s historydto.StatsOutput) {
	table := newTable(w, []string{"Results", "Average", "Highest", "Lowest", "Latest"})
	table.Append([]string{
		strconv.Itoa(s.Count),
		fmt.Sprintf("%.2f", s.Mean),
		fmt.Sprintf("%.2f", s.Max),
		fmt.Sprintf("%.2f", s.Min),
		fmt.Sprintf("%.2f (%s)", s.Latest.Value, s.Latest.Label),
	})
	table.Render()
}

func formatCredits(credits float64) string {
	return strconv.FormatFloat(credits, 'f', -1, 64)
}
