package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	gradingdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/grading/dto"
	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	reportdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/theme"
	calculatorview "github.com/teamit2026-cmd/cgpatracker/internal/ui/views/calculator"
	catalogview "github.com/teamit2026-cmd/cgpatracker/internal/ui/views/catalog"
	customview "github.com/teamit2026-cmd/cgpatracker/internal/ui/views/custom"
	historyview "github.com/teamit2026-cmd/cgpatracker/internal/ui/views/history"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type catalogPort interface {
	Departments(ctx context.Context) ([]string, error)
	Semesters(ctx context.Context, department string) ([]int, error)
	Subjects(ctx context.Context, department string, semester int) (catalogdto.SubjectsOutput, error)
}

type gradingPort interface {
	ComputeCurriculum(ctx context.Context, department string, semester int, grades map[string]string) (gradingdto.ComputeOutput, error)
	ComputeCustom(ctx context.Context, subjects []gradingdto.CustomSubjectInput, grades map[string]string) (gradingdto.ComputeOutput, error)
	ValidateCustomSubject(ctx context.Context, name, code, credits string) (gradingdto.CustomSubjectOutput, error)
	Classify(ctx context.Context, cgpa float64) (gradingdto.ClassificationOutput, error)
}

type historyPort interface {
	Save(ctx context.Context, input historydto.SaveInput) error
	List(ctx context.Context) ([]historydto.ResultOutput, error)
	Stats(ctx context.Context) (historydto.StatsOutput, error)
}

type reportPort interface {
	Export(ctx context.Context, title, dir string) (reportdto.ExportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCalculator tabID = iota
	tabCustom
	tabHistory
	tabCatalog
	tabCount
)

var tabLabels = [tabCount]string{
	"Calculator", "Custom", "History", "Catalog",
}

type classifiedMsg struct {
	cgpa float64
	out  gradingdto.ClassificationOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Move    key.Binding
	Grade   key.Binding
	Compute key.Binding
	Save    key.Binding
	Add     key.Binding
	Remove  key.Binding
	Export  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Move:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Grade:   key.NewBinding(key.WithKeys(" ", "left", "right"), key.WithHelp("space", "cycle grade")),
		Compute: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compute")),
		Save:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save result")),
		Add:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "add custom subject")),
		Remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove custom subject")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Move, k.Grade},
		{k.Compute, k.Save, k.Add, k.Remove},
		{k.Export, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes keys to the active tab, routes async results to
// the view that asked for them, and runs palette commands.
type Model struct {
	grading gradingPort

	calcView    calculatorview.Model
	customView  customview.Model
	historyView historyview.Model
	catalogView catalogview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(catalog catalogPort, grading gradingPort, history historyPort, report reportPort, reportDir string) Model {
	return Model{
		grading:     grading,
		calcView:    calculatorview.New(catalog, grading, history),
		customView:  customview.New(grading, history),
		historyView: historyview.New(history, report, reportDir),
		catalogView: catalogview.New(catalog),
		activeTab:   tabCalculator,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.calcView.Init(),
		m.customView.Init(),
		m.historyView.Init(),
		m.catalogView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case calculatorview.DepartmentsLoadedMsg, calculatorview.SubjectsLoadedMsg, calculatorview.ComputedMsg:
		m.calcView, cmd = m.calcView.Update(msg)
		return m, cmd

	case calculatorview.SavedMsg:
		m.calcView, cmd = m.calcView.Update(msg)
		reload := m.afterSave(msg.Out, msg.Err)
		return m, tea.Batch(cmd, reload)

	case customview.SubjectCheckedMsg, customview.ComputedMsg:
		m.customView, cmd = m.customView.Update(msg)
		return m, cmd

	case customview.SavedMsg:
		m.customView, cmd = m.customView.Update(msg)
		reload := m.afterSave(msg.Out, msg.Err)
		return m, tea.Batch(cmd, reload)

	case historyview.LoadedMsg:
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case historyview.ExportedMsg:
		if msg.Err != nil {
			m.status = "export failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d results to %s", msg.Out.Count, msg.Out.Path)
		}
		return m, nil

	case catalogview.EntriesLoadedMsg, catalogview.SubjectsLoadedMsg:
		m.catalogView, cmd = m.catalogView.Update(msg)
		return m, cmd

	case classifiedMsg:
		if msg.err != nil {
			m.status = "classify: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("%.2f → %s  %s %s  ≈ %.1f%%", msg.cgpa, msg.out.Band, msg.out.Emoji, msg.out.Message, msg.out.Percentage)
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if !m.subViewCapturing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.activeTab = (m.activeTab + 1) % tabCount
				return m, nil
			case "shift+tab":
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
				return m, nil
			case "?":
				m.showHelp = true
				return m, nil
			case ":":
				cmd := m.palette.Open()
				return m, cmd
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.activeTab {
	case tabCalculator:
		m.calcView, cmd = m.calcView.Update(msg)
	case tabCustom:
		m.customView, cmd = m.customView.Update(msg)
	case tabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case tabCatalog:
		m.catalogView, cmd = m.catalogView.Update(msg)
	}
	return m, cmd
}

// afterSave reports the outcome in the status bar and refreshes history on success.
func (m *Model) afterSave(out gradingdto.ComputeOutput, err error) tea.Cmd {
	if err != nil {
		m.status = theme.Error.Render("could not save: " + err.Error())
		return nil
	}
	m.status = fmt.Sprintf("saved %.2f", out.Value)
	return m.historyView.Reload()
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCalculator:
		return m.calcView.View()
	case tabCustom:
		return m.customView.View()
	case tabHistory:
		return m.historyView.View()
	case tabCatalog:
		return m.catalogView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "cgpatrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "dept":
		if len(parts) < 2 {
			m.status = "usage: dept <code>"
			return m, nil
		}
		cmd, err := m.calcView.SetDepartment(parts[1])
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.activeTab = tabCalculator
		return m, cmd

	case "sem":
		semester, err := strconv.Atoi(argAt(parts, 1))
		if err != nil || semester < 1 || semester > 8 {
			m.status = "usage: sem <1-8>"
			return m, nil
		}
		m.activeTab = tabCalculator
		return m, m.calcView.SetSemester(semester)

	case "grade":
		if len(parts) < 3 {
			m.status = "usage: grade <code> <S|A|B|C|D|E|F>"
			return m, nil
		}
		var err error
		if m.activeTab == tabCustom {
			err = m.customView.SetGrade(parts[1], parts[2])
		} else {
			err = m.calcView.SetGrade(parts[1], parts[2])
		}
		m.status = "grade set"
		if err != nil {
			m.status = err.Error()
		}
		return m, nil

	case "grades":
		if err := m.calcView.SetAllGrades(argAt(parts, 1)); err != nil {
			m.status = "usage: grades <S|A|B|C|D|E|F>"
			return m, nil
		}
		m.activeTab = tabCalculator
		m.status = "all grades set"
		return m, nil

	case "compute":
		if m.activeTab == tabCustom {
			return m, m.customView.Compute()
		}
		m.activeTab = tabCalculator
		return m, m.calcView.Compute()

	case "save":
		var cmd tea.Cmd
		if m.activeTab == tabCustom {
			cmd = m.customView.Save()
		} else {
			cmd = m.calcView.Save()
		}
		return m, cmd

	case "custom:add":
		if len(parts) < 4 {
			m.status = "usage: custom:add <credits> <code> <name...>"
			return m, nil
		}
		m.activeTab = tabCustom
		return m, m.customView.AddSubject(strings.Join(parts[3:], " "), parts[2], parts[1])

	case "custom:remove":
		n, err := strconv.Atoi(argAt(parts, 1))
		if err != nil {
			m.status = "usage: custom:remove <n>"
			return m, nil
		}
		m.activeTab = tabCustom
		if err := m.customView.Remove(n - 1); err != nil {
			m.status = err.Error()
		}
		return m, nil

	case "custom:clear":
		m.customView.Clear()
		m.activeTab = tabCustom
		return m, nil

	case "history:reload":
		m.activeTab = tabHistory
		return m, m.historyView.Reload()

	case "export":
		title := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		return m, m.historyView.Export(title)

	case "classify":
		cgpa, err := strconv.ParseFloat(argAt(parts, 1), 64)
		if err != nil {
			m.status = "usage: classify <cgpa>"
			return m, nil
		}
		return m, m.classifyCmd(cgpa)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewCapturing reports whether the active tab is taking free text, in which case global
// key bindings must yield.
func (m Model) subViewCapturing() bool {
	switch m.activeTab {
	case tabCustom:
		return m.customView.Editing()
	case tabCatalog:
		return m.catalogView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.calcView, _ = m.calcView.Update(sz)
	m.customView, _ = m.customView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.catalogView, _ = m.catalogView.Update(sz)
}

func (m Model) classifyCmd(cgpa float64) tea.Cmd {
	return func() tea.Msg {
		out, err := m.grading.Classify(context.Background(), cgpa)
		return classifiedMsg{cgpa: cgpa, out: out, err: err}
	}
}

func argAt(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
