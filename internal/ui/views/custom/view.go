package custom

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type GradingPort interface {
	ValidateCustomSubject(ctx context.Context, name, code, credits string) (gradingdto.CustomSubjectOutput, error)
	ComputeCustom(ctx context.Context, subjects []gradingdto.CustomSubjectInput, grades map[string]string) (gradingdto.ComputeOutput, error)
}

type HistoryPort interface {
	Save(ctx context.Context, input historydto.SaveInput) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type SubjectCheckedMsg struct {
	Subject gradingdto.CustomSubjectOutput
	Err     error
}

type ComputedMsg struct {
	Out gradingdto.ComputeOutput
	Err error
}

type SavedMsg struct {
	Out gradingdto.ComputeOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	fieldName = iota
	fieldCode
	fieldCredits
	fieldCount
)

type Model struct {
	grading GradingPort
	history HistoryPort

	subjects []gradingdto.CustomSubjectOutput
	grades   map[string]string
	cursor   int
	result   *gradingdto.ComputeOutput
	notice   string

	editing bool
	inputs  [fieldCount]textinput.Model
	focus   int
	width   int
	height  int
}

func New(grading GradingPort, history HistoryPort) Model {
	var inputs [fieldCount]textinput.Model
	for i, placeholder := range []string{"subject name", "subject code", "credits"} {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[fieldCredits].CharLimit = 8
	return Model{grading: grading, history: history, grades: map[string]string{}, inputs: inputs}
}

func (m Model) Init() tea.Cmd { return nil }

// Editing reports whether the entry form has focus. The app model yields global keys meanwhile.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SubjectCheckedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			return m, nil
		}
		m.subjects = append(m.subjects, msg.Subject)
		m.cursor = len(m.subjects) - 1
		m.result = nil
		m.notice = "added " + msg.Subject.Code
		return m, nil

	case ComputedMsg:
		if msg.Err != nil {
			m.result = nil
			m.notice = msg.Err.Error()
			return m, nil
		}
		out := msg.Out
		m.result = &out
		m.notice = "w: save this result"
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.notice = "could not save: " + msg.Err.Error()
		} else {
			m.notice = fmt.Sprintf("saved custom result %.2f", msg.Out.Value)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "n", "a":
			cmd := m.openForm()
			return m, cmd
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
		case "x":
			if err := m.Remove(m.cursor); err != nil {
				m.notice = err.Error()
			}
		case "c", "enter":
			return m, m.Compute()
		case "w":
			cmd := m.Save()
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.notice = "entry cancelled"
		return m, nil
	case "up", "shift+tab":
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case "down", "tab":
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case "enter":
		if m.focus < fieldCredits {
			cmd := m.focusField(m.focus + 1)
			return m, cmd
		}
		name, code, credits := m.inputs[fieldName].Value(), m.inputs[fieldCode].Value(), m.inputs[fieldCredits].Value()
		m.closeForm()
		return m, m.AddSubject(name, code, credits)
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Custom subjects") + "\n\n")
	if len(m.subjects) == 0 {
		sb.WriteString(theme.Muted.Render("no subjects yet; press n to add one") + "\n")
	}
	total := 0.0
	for i, s := range m.subjects {
		marker := "  "
		line := fmt.Sprintf("%2d. %-10s %-36s %5.1f  ", i+1, s.Code, s.Name, s.Credits)
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
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("\n%d subjects · %.1f credits\n", len(m.subjects), total)))
	}
	if m.editing {
		form := strings.Builder{}
		for i, label := range []string{"name   ", "code   ", "credits"} {
			form.WriteString(theme.Muted.Render(label) + " " + m.inputs[i].View() + "\n")
		}
		form.WriteString(theme.Muted.Render("enter: next/add  esc: cancel"))
		sb.WriteString("\n" + theme.PaneActive.Render(form.String()) + "\n")
	}
	if m.result != nil {
		sb.WriteString("\n" + components.ResultCard(*m.result) + "\n")
	}
	if m.notice != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.notice) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("n add  x remove  space/←/→ grade  c compute  w save"))
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(sb.String())
}

// ─── operations shared with the palette ──────────────────────────────────────

func (m Model) Subjects() []gradingdto.CustomSubjectOutput {
	out := make([]gradingdto.CustomSubjectOutput, len(m.subjects))
	copy(out, m.subjects)
	return out
}

func (m Model) Result() (gradingdto.ComputeOutput, bool) {
	if m.result == nil {
		return gradingdto.ComputeOutput{}, false
	}
	return *m.result, true
}

func (m Model) AddSubject(name, code, credits string) tea.Cmd {
	return func() tea.Msg {
		subject, err := m.grading.ValidateCustomSubject(context.Background(), name, code, credits)
		return SubjectCheckedMsg{Subject: subject, Err: err}
	}
}

func (m *Model) Remove(index int) error {
	if index < 0 || index >= len(m.subjects) {
		return fmt.Errorf("no subject at position %d", index+1)
	}
	removed := m.subjects[index].Code
	m.subjects = append(m.subjects[:index], m.subjects[index+1:]...)
	if !m.hasCode(removed) {
		delete(m.grades, removed)
	}
	if m.cursor >= len(m.subjects) && m.cursor > 0 {
		m.cursor--
	}
	m.result = nil
	m.notice = "removed " + removed
	return nil
}

func (m *Model) Clear() {
	m.subjects = nil
	m.grades = map[string]string{}
	m.cursor = 0
	m.result = nil
	m.notice = "cleared custom subjects"
}

func (m *Model) SetGrade(code, letter string) error {
	if !components.ValidGradeLetter(letter) {
		return fmt.Errorf("unknown grade %q", letter)
	}
	if !m.hasCode(code) {
		return fmt.Errorf("no custom subject %s", code)
	}
	m.grades[code] = strings.ToUpper(letter)
	m.result = nil
	return nil
}

func (m Model) Compute() tea.Cmd {
	subjects := make([]gradingdto.CustomSubjectInput, 0, len(m.subjects))
	for _, s := range m.subjects {
		subjects = append(subjects, gradingdto.CustomSubjectInput{
			Name:    s.Name,
			Code:    s.Code,
			Credits: strconv.FormatFloat(s.Credits, 'f', -1, 64),
		})
	}
	grades := make(map[string]string, len(m.grades))
	for k, v := range m.grades {
		grades[k] = v
	}
	return func() tea.Msg {
		out, err := m.grading.ComputeCustom(context.Background(), subjects, grades)
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

func (m Model) hasCode(code string) bool {
	for _, s := range m.subjects {
		if s.Code == code {
			return true
		}
	}
	return false
}

func (m *Model) cycleSelected(forward bool) {
	if m.cursor < 0 || m.cursor >= len(m.subjects) {
		return
	}
	code := m.subjects[m.cursor].Code
	m.grades[code] = components.CycleGrade(m.grades[code], forward)
	m.result = nil
}

func (m *Model) openForm() tea.Cmd {
	m.editing = true
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	return m.focusField(fieldName)
}

func (m *Model) closeForm() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	for j := range m.inputs {
		if j != i {
			m.inputs[j].Blur()
		}
	}
	return m.inputs[i].Focus()
}
