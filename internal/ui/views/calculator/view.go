package calculator

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	Departments(ctx context.Context) ([]string, error)
	Subjects(ctx context.Context, department string, semester int) (catalogdto.SubjectsOutput, error)
}

type GradingPort interface {
	ComputeCurriculum(ctx context.Context, department string, semester int, grades map[string]string) (gradingdto.ComputeOutput, error)
}

type HistoryPort interface {
	Save(ctx context.Context, input historydto.SaveInput) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type DepartmentsLoadedMsg struct {
	Departments []string
	Err         error
}

type SubjectsLoadedMsg struct {
	Out catalogdto.SubjectsOutput
	Err error
}

type ComputedMsg struct {
	Out gradingdto.ComputeOutput
	Err error
}

// SavedMsg reports a save attempt; the computed result stays on screen either way.
type SavedMsg struct {
	Out gradingdto.ComputeOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const defaultDepartment = "IT"

type Model struct {
	catalog CatalogPort
	grading GradingPort
	history HistoryPort

	departments []string
	deptIdx     int
	semester    int
	subjects    []catalogdto.SubjectOutput
	grades      map[string]string
	cursor      int
	result      *gradingdto.ComputeOutput
	notice      string
	width       int
	height      int
}

func New(catalog CatalogPort, grading GradingPort, history HistoryPort) Model {
	return Model{
		catalog:  catalog,
		grading:  grading,
		history:  history,
		semester: 1,
		grades:   map[string]string{},
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadDepartmentsCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case DepartmentsLoadedMsg:
		if msg.Err != nil {
			m.notice = "departments: " + msg.Err.Error()
			return m, nil
		}
		m.departments = msg.Departments
		m.deptIdx = 0
		for i, d := range m.departments {
			if d == defaultDepartment {
				m.deptIdx = i
			}
		}
		return m, m.loadSubjectsCmd()

	case SubjectsLoadedMsg:
		if msg.Err != nil {
			m.notice = "subjects: " + msg.Err.Error()
			return m, nil
		}
		m.subjects = msg.Out.Subjects
		m.grades = map[string]string{}
		m.cursor = 0
		m.result = nil
		m.notice = ""
		if len(m.subjects) == 0 {
			m.notice = "no subjects listed for this semester"
		}

	case ComputedMsg:
		if msg.Err != nil {
			m.result = nil
			m.notice = msg.Err.Error()
			return m, nil
		}
		out := msg.Out
		m.result = &out
		m.notice = "w: save this result"

	case SavedMsg:
		if msg.Err != nil {
			m.notice = "could not save: " + msg.Err.Error()
		} else {
			m.notice = fmt.Sprintf("saved %.2f for %s semester %d", msg.Out.Value, msg.Out.Department, msg.Out.Semester)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.subjects)-1 {
				m.cursor++
			}
		case " ", "right", "l":
			m.cycleSelected(true)
		case "left", "h":
			m.cycleSelected(false)
		case "backspace", "delete":
			if code, ok := m.selectedCode(); ok {
				delete(m.grades, code)
				m.result = nil
			}
		case "d":
			cmd := m.NextDepartment()
			return m, cmd
		case "]":
			cmd := m.SetSemester(m.semester + 1)
			return m, cmd
		case "[":
			cmd := m.SetSemester(m.semester - 1)
			return m, cmd
		case "c", "enter":
			return m, m.Compute()
		case "w":
			cmd := m.Save()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Semester calculator") + "\n")
	sb.WriteString(fmt.Sprintf("%s %s   %s %d\n\n",
		theme.Muted.Render("department:"), m.Department(),
		theme.Muted.Render("semester:"), m.semester))

	total := 0.0
	for i, s := range m.subjects {
		marker := "  "
		line := fmt.Sprintf("%-8s %-42s %4.1f  ", s.Code, truncate(s.Name, 42), s.Credits)
		grade := m.grades[s.Code]
		if grade == "" {
			grade = theme.Muted.Render("·")
		} else {
			grade = theme.Hot.Render(grade)
		}
		if i == m.cursor {
			marker = theme.Selected.Render("▸ ")
			line = theme.Selected.Render(line)
		}
		sb.WriteString(marker + line + grade + "\n")
		total += s.Credits
	}
	if len(m.subjects) > 0 {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("\n%d subjects · %.1f credits · %d graded\n",
			len(m.subjects), total, len(m.grades))))
	}
	if m.result != nil {
		sb.WriteString("\n" + components.ResultCard(*m.result) + "\n")
	}
	if m.notice != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.notice) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("↑/↓ move  space/←/→ grade  d dept  [ ] semester  c compute  w save"))
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(sb.String())
}

// ─── operations shared with the palette ──────────────────────────────────────

func (m Model) Department() string {
	if len(m.departments) == 0 {
		return ""
	}
	return m.departments[m.deptIdx]
}

func (m Model) Result() (gradingdto.ComputeOutput, bool) {
	if m.result == nil {
		return gradingdto.ComputeOutput{}, false
	}
	return *m.result, true
}

func (m *Model) NextDepartment() tea.Cmd {
	if len(m.departments) == 0 {
		return nil
	}
	m.deptIdx = (m.deptIdx + 1) % len(m.departments)
	return m.loadSubjectsCmd()
}

func (m *Model) SetDepartment(code string) (tea.Cmd, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for i, d := range m.departments {
		if d == code {
			m.deptIdx = i
			return m.loadSubjectsCmd(), nil
		}
	}
	return nil, fmt.Errorf("unknown department %q", code)
}

func (m *Model) SetSemester(semester int) tea.Cmd {
	if semester < 1 || semester > 8 {
		return nil
	}
	m.semester = semester
	return m.loadSubjectsCmd()
}

func (m *Model) SetGrade(code, letter string) error {
	if !components.ValidGradeLetter(letter) {
		return fmt.Errorf("unknown grade %q", letter)
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, s := range m.subjects {
		if strings.ToUpper(s.Code) == code {
			m.grades[s.Code] = strings.ToUpper(letter)
			m.result = nil
			return nil
		}
	}
	return fmt.Errorf("no subject %s this semester", code)
}

func (m *Model) SetAllGrades(letter string) error {
	if !components.ValidGradeLetter(letter) {
		return fmt.Errorf("unknown grade %q", letter)
	}
	for _, s := range m.subjects {
		m.grades[s.Code] = strings.ToUpper(letter)
	}
	m.result = nil
	return nil
}

func (m Model) Compute() tea.Cmd {
	department, semester := m.Department(), m.semester
	grades := make(map[string]string, len(m.grades))
	for k, v := range m.grades {
		grades[k] = v
	}
	return func() tea.Msg {
		out, err := m.grading.ComputeCurriculum(context.Background(), department, semester, grades)
		return ComputedMsg{Out: out, Err: err}
	}
}

func (m *Model) Save() tea.Cmd {
	if m.result == nil {
		m.notice = "compute a result before saving"
		return nil
	}
	out := *m.result
	return func() tea.Msg {
		return SavedMsg{Out: out, Err: m.history.Save(context.Background(), components.SaveInput(out))}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selectedCode() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.subjects) {
		return "", false
	}
	return m.subjects[m.cursor].Code, true
}

func (m *Model) cycleSelected(forward bool) {
	code, ok := m.selectedCode()
	if !ok {
		return
	}
	m.grades[code] = components.CycleGrade(m.grades[code], forward)
	m.result = nil
}

func (m Model) loadDepartmentsCmd() tea.Cmd {
	return func() tea.Msg {
		departments, err := m.catalog.Departments(context.Background())
		return DepartmentsLoadedMsg{Departments: departments, Err: err}
	}
}

func (m Model) loadSubjectsCmd() tea.Cmd {
	department, semester := m.Department(), m.semester
	return func() tea.Msg {
		out, err := m.catalog.Subjects(context.Background(), department, semester)
		return SubjectsLoadedMsg{Out: out, Err: err}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
