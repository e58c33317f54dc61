package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	reportout "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/adapter/out"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/service"
	"github.com/teamit2026-cmd/cgpatracker/internal/modules/report/usecase"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/clock"
	apperrors "github.com/teamit2026-cmd/cgpatracker/internal/platform/errors"
	"github.com/teamit2026-cmd/cgpatracker/internal/platform/markdown"
)

type fakeHistory struct {
	results []historydto.ResultOutput
}

func (f *fakeHistory) Save(context.Context, historydto.SaveInput) error { return nil }

func (f *fakeHistory) LoadAll(context.Context) ([]historydto.ResultOutput, error) {
	return f.results, nil
}

func (f *fakeHistory) LoadLatest(context.Context) (historydto.ResultOutput, bool, error) {
	if len(f.results) == 0 {
		return historydto.ResultOutput{}, false, nil
	}
	return f.results[len(f.results)-1], true, nil
}

func (f *fakeHistory) LoadByContext(context.Context, historydto.ContextInput) (historydto.ResultOutput, bool, error) {
	return historydto.ResultOutput{}, false, nil
}

func (f *fakeHistory) Stats(context.Context) (historydto.StatsOutput, error) {
	out := historydto.StatsOutput{Count: len(f.results)}
	if len(f.results) == 0 {
		return out, nil
	}
	out.Min, out.Max = f.results[0].Value, f.results[0].Value
	total := 0.0
	for _, r := range f.results {
		total += r.Value
		if r.Value > out.Max {
			out.Max = r.Value
		}
		if r.Value < out.Min {
			out.Min = r.Value
		}
	}
	out.Mean = total / float64(len(f.results))
	out.Latest = f.results[len(f.results)-1]
	return out, nil
}

type fakeGrading struct{}

func (fakeGrading) ComputeCurriculum(context.Context, gradingdto.CurriculumInput) (gradingdto.ComputeOutput, error) {
	return gradingdto.ComputeOutput{}, nil
}

func (fakeGrading) ComputeCustom(context.Context, gradingdto.CustomInput) (gradingdto.ComputeOutput, error) {
	return gradingdto.ComputeOutput{}, nil
}

func (fakeGrading) ValidateCustomSubject(context.Context, gradingdto.CustomSubjectInput) (gradingdto.CustomSubjectOutput, error) {
	return gradingdto.CustomSubjectOutput{}, nil
}

func (fakeGrading) Classify(_ context.Context, cgpa float64) (gradingdto.ClassificationOutput, error) {
	if cgpa >= 8.5 {
		return gradingdto.ClassificationOutput{Band: "A", Percentage: 77.5}, nil
	}
	return gradingdto.ClassificationOutput{Band: "B", Percentage: 62.5}, nil
}

func TestExportWritesReportAndKeepsNotes(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	history := &fakeHistory{results: []historydto.ResultOutput{
		{Value: 7, Label: "IT Semester 1", SubjectCount: 7, Timestamp: at},
		{Value: 8.5, Label: "IT Semester 2", SubjectCount: 8, Timestamp: at.Add(time.Hour)},
	}}
	dir := filepath.Join(t.TempDir(), "reports")
	svc := service.NewReportService(clock.Fixed{At: at.Add(2 * time.Hour)}, reportout.NewFileDocumentStore(), history, fakeGrading{})
	uc := usecase.NewInteractor(svc)

	out, err := uc.Export(context.Background(), dto.ExportInput{Title: "My Progress!", Dir: dir})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Count != 2 || out.Path != filepath.Join(dir, "my-progress.md") {
		t.Fatalf("unexpected export output: %+v", out)
	}
	raw, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	meta, body, err := markdown.Split(string(raw))
	if err != nil {
		t.Fatalf("split report: %v", err)
	}
	if meta["count"] != 2 || meta["average"] != 7.75 || meta["generated_at"] != "2026-04-01T12:00:00Z" {
		t.Fatalf("unexpected frontmatter: %+v", meta)
	}
	if !strings.Contains(body, "| 2 | 2026-04-01 11:00 | IT Semester 2 | 8 | 8.50 | A | 77.5 |") {
		t.Fatalf("missing result row:\n%s", body)
	}

	edited := strings.Replace(string(raw), "# My Progress!\n", "# My Progress!\n\nAim for 9 next term.\n", 1)
	if err := os.WriteFile(out.Path, []byte(edited), 0o644); err != nil {
		t.Fatalf("edit report: %v", err)
	}
	history.results = append(history.results, historydto.ResultOutput{Value: 8, Label: "Custom", SubjectCount: 3, Timestamp: at.Add(90 * time.Minute)})
	if _, err := uc.Export(context.Background(), dto.ExportInput{Title: "My Progress!", Dir: dir}); err != nil {
		t.Fatalf("re-export: %v", err)
	}
	raw, _ = os.ReadFile(out.Path)
	if !strings.Contains(string(raw), "Aim for 9 next term.") {
		t.Fatalf("user notes should survive re-export:\n%s", raw)
	}
	if strings.Count(string(raw), "<!-- cgpatrack:results:start -->") != 1 || !strings.Contains(string(raw), "| 3 |") {
		t.Fatalf("results block should be refreshed in place:\n%s", raw)
	}
}

func TestExportEmptyHistory(t *testing.T) {
	t.Parallel()
	svc := service.NewReportService(clock.Fixed{}, reportout.NewFileDocumentStore(), &fakeHistory{}, fakeGrading{})
	_, err := usecase.NewInteractor(svc).Export(context.Background(), dto.ExportInput{Dir: t.TempDir()})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExportReplacesEmptiedFrontmatter(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	history := &fakeHistory{results: []historydto.ResultOutput{
		{Value: 8, Label: "IT Semester 1", SubjectCount: 7, Timestamp: at},
	}}
	dir := t.TempDir()
	path := filepath.Join(dir, "cgpa-report.md")
	if err := os.WriteFile(path, []byte("---\n~\n---\nMy notes.\n"), 0o644); err != nil {
		t.Fatalf("seed report: %v", err)
	}
	svc := service.NewReportService(clock.Fixed{At: at}, reportout.NewFileDocumentStore(), history, fakeGrading{})
	out, err := usecase.NewInteractor(svc).Export(context.Background(), dto.ExportInput{Dir: dir})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	raw, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	meta, body, err := markdown.Split(string(raw))
	if err != nil {
		t.Fatalf("split report: %v", err)
	}
	if meta["title"] != "CGPA Report" || meta["count"] != 1 {
		t.Fatalf("unexpected frontmatter: %+v", meta)
	}
	if !strings.Contains(body, "My notes.") {
		t.Fatalf("notes should survive:\n%s", body)
	}
}
