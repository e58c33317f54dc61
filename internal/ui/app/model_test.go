package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	catalogdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	reportdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
)

type fakeCatalog struct{}

func (fakeCatalog) Departments(context.Context) ([]string, error) { return []string{"IT"}, nil }

func (fakeCatalog) Semesters(context.Context, string) ([]int, error) { return []int{1}, nil }

func (fakeCatalog) Subjects(_ context.Context, department string, semester int) (catalogdto.SubjectsOutput, error) {
	return catalogdto.SubjectsOutput{
		Department: department,
		Semester:   semester,
		Subjects: []catalogdto.SubjectOutput{
			{Code: "CS101", Name: "Programming", Credits: 4},
			{Code: "CS102", Name: "Discrete Maths", Credits: 3},
		},
		TotalCredits: 7,
	}, nil
}

type fakeGrading struct{}

func (fakeGrading) ComputeCurriculum(_ context.Context, department string, semester int, grades map[string]string) (gradingdto.ComputeOutput, error) {
	if len(grades) < 2 {
		return gradingdto.ComputeOutput{}, errors.New("missing grade")
	}
	return gradingdto.ComputeOutput{Value: 9, Mode: "curriculum", Department: department, Semester: semester, SubjectCount: 2}, nil
}

func (fakeGrading) ComputeCustom(context.Context, []gradingdto.CustomSubjectInput, map[string]string) (gradingdto.ComputeOutput, error) {
	return gradingdto.ComputeOutput{Value: 8, Mode: "custom", SubjectCount: 1}, nil
}

func (fakeGrading) ValidateCustomSubject(_ context.Context, name, code, credits string) (gradingdto.CustomSubjectOutput, error) {
	return gradingdto.CustomSubjectOutput{Name: name, Code: code, Credits: 3}, nil
}

func (fakeGrading) Classify(_ context.Context, cgpa float64) (gradingdto.ClassificationOutput, error) {
	if cgpa > 10 {
		return gradingdto.ClassificationOutput{}, errors.New("cgpa out of range")
	}
	return gradingdto.ClassificationOutput{Band: "O", Message: "Outstanding", Percentage: 88.5}, nil
}

type fakeHistory struct {
	saveErr error
	saved   int
	lists   int
}

func (f *fakeHistory) Save(context.Context, historydto.SaveInput) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved++
	return nil
}

func (f *fakeHistory) List(context.Context) ([]historydto.ResultOutput, error) {
	f.lists++
	return nil, nil
}

func (f *fakeHistory) Stats(context.Context) (historydto.StatsOutput, error) {
	return historydto.StatsOutput{}, nil
}

type fakeReport struct{}

func (fakeReport) Export(_ context.Context, title, dir string) (reportdto.ExportOutput, error) {
	return reportdto.ExportOutput{Path: dir + "/cgpa-report.md", Count: 1}, nil
}

// drain runs cmd and every command it produces, feeding each message back into the model.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatalf("command queue did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		updated, follow := m.Update(msg)
		m = updated.(Model)
		queue = append(queue, follow)
	}
	return m
}

func submit(t *testing.T, m Model, input string) Model {
	t.Helper()
	updated, cmd := m.Update(components.PaletteSubmitMsg{Input: input})
	return drain(t, updated.(Model), cmd)
}

func newTestModel(t *testing.T, history *fakeHistory) Model {
	t.Helper()
	m := NewModel(fakeCatalog{}, fakeGrading{}, history, fakeReport{}, "/tmp/reports")
	m = drain(t, m, m.Init())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestPaletteComputeSaveReloadsHistory(t *testing.T) {
	t.Parallel()
	history := &fakeHistory{}
	m := newTestModel(t, history)
	initialLists := history.lists

	m = submit(t, m, "grades A")
	m = submit(t, m, "compute")
	if out, ok := m.calcView.Result(); !ok || out.Value != 9 {
		t.Fatalf("expected computed result 9, got %+v (%v)", out, ok)
	}
	m = submit(t, m, "save")
	if history.saved != 1 {
		t.Fatalf("expected one save, got %d", history.saved)
	}
	if m.status != "saved 9.00" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if history.lists <= initialLists {
		t.Fatalf("expected history reload after save")
	}
}

func TestSaveFailureKeepsResult(t *testing.T) {
	t.Parallel()
	history := &fakeHistory{saveErr: errors.New("disk full")}
	m := newTestModel(t, history)

	m = submit(t, m, "grades S")
	m = submit(t, m, "compute")
	m = submit(t, m, "save")
	if !strings.Contains(m.status, "could not save") {
		t.Fatalf("expected save failure notice, got %q", m.status)
	}
	if _, ok := m.calcView.Result(); !ok {
		t.Fatalf("computed result should stay displayed after failed save")
	}
}

func TestPaletteCustomAndClassify(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, &fakeHistory{})

	m = submit(t, m, "custom:add 3 PHY1 Applied Physics")
	if m.activeTab != tabCustom {
		t.Fatalf("expected custom tab, got %d", m.activeTab)
	}
	subjects := m.customView.Subjects()
	if len(subjects) != 1 || subjects[0].Name != "Applied Physics" || subjects[0].Code != "PHY1" {
		t.Fatalf("unexpected custom subjects %+v", subjects)
	}
	m = submit(t, m, "custom:remove 1")
	if len(m.customView.Subjects()) != 0 {
		t.Fatalf("expected subject removed")
	}

	m = submit(t, m, "classify 9.6")
	if !strings.Contains(m.status, "O") || !strings.Contains(m.status, "88.5%") {
		t.Fatalf("unexpected classify status %q", m.status)
	}
	m = submit(t, m, "classify 11")
	if !strings.HasPrefix(m.status, "classify:") {
		t.Fatalf("expected classify error, got %q", m.status)
	}
}

func TestPaletteExportAndUnknown(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, &fakeHistory{})

	m = submit(t, m, "export Final Year")
	if m.status != "exported 1 results to /tmp/reports/cgpa-report.md" {
		t.Fatalf("unexpected export status %q", m.status)
	}
	m = submit(t, m, "bogus")
	if m.status != "unknown command: bogus" {
		t.Fatalf("unexpected status %q", m.status)
	}
	m = submit(t, m, "sem 9")
	if m.status != "usage: sem <1-8>" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestTabCycling(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, &fakeHistory{})
	for i := 0; i < int(tabCount); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
	}
	if m.activeTab != tabCalculator {
		t.Fatalf("expected to wrap back to calculator, got %d", m.activeTab)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if updated.(Model).activeTab != tabCatalog {
		t.Fatalf("shift+tab should go to catalog")
	}
}
