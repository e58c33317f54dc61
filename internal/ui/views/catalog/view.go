package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/catalog/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	Departments(ctx context.Context) ([]string, error)
	Semesters(ctx context.Context, department string) ([]int, error)
	Subjects(ctx context.Context, department string, semester int) (catalogdto.SubjectsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type EntriesLoadedMsg struct {
	Entries []Entry
	Err     error
}

type SubjectsLoadedMsg struct {
	Out catalogdto.SubjectsOutput
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type Entry struct {
	Department string
	Semester   int
}

func (e Entry) Title() string       { return fmt.Sprintf("%s · Semester %d", e.Department, e.Semester) }
func (e Entry) Description() string { return e.Department }
func (e Entry) FilterValue() string { return e.Title() }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    CatalogPort
	list    list.Model
	preview viewport.Model
	current catalogdto.SubjectsOutput
	err     error
	width   int
	height  int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Curriculum"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	return Model{port: port, list: l, preview: vp}
}

func (m Model) Init() tea.Cmd {
	return m.loadEntriesCmd()
}

// Filtering reports whether the list's search filter is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listW := m.width * 3 / 10
		m.list.SetSize(listW, m.height)
		m.preview.Width = m.width - listW - 4
		m.preview.Height = m.height - 2

	case EntriesLoadedMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = e
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Entries) > 0 {
			cmds = append(cmds, m.loadSubjectsCmd(msg.Entries[0]))
		}

	case SubjectsLoadedMsg:
		if msg.Err == nil {
			m.current = msg.Out
			m.preview.SetContent(m.renderSubjects())
			m.preview.GotoTop()
		}
	}

	prev := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prev {
		if entry, ok := m.list.SelectedItem().(Entry); ok {
			cmds = append(cmds, m.loadSubjectsCmd(entry))
		}
	}
	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Error.Render("could not load curriculum: " + m.err.Error())
	}
	listW := m.width * 3 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(m.height).Render(m.list.View())
	detail := theme.Pane.Width(max(m.width-listW-2, 10)).Height(max(m.height-2, 1)).Render(m.preview.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detail)
}

func (m Model) renderSubjects() string {
	c := m.current
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%s Semester %d", c.Department, c.Semester)) + "\n\n")
	if len(c.Subjects) == 0 {
		sb.WriteString(theme.Muted.Render("no subjects listed"))
		return sb.String()
	}
	for _, s := range c.Subjects {
		sb.WriteString(fmt.Sprintf("%-8s %-44s %4.1f\n", s.Code, s.Name, s.Credits))
	}
	sb.WriteString("\n" + theme.Muted.Render(fmt.Sprintf("%d subjects · %.1f credits", len(c.Subjects), c.TotalCredits)))
	return sb.String()
}

func (m Model) loadEntriesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		departments, err := m.port.Departments(ctx)
		if err != nil {
			return EntriesLoadedMsg{Err: err}
		}
		var entries []Entry
		for _, d := range departments {
			semesters, err := m.port.Semesters(ctx, d)
			if err != nil {
				return EntriesLoadedMsg{Err: err}
			}
			for _, s := range semesters {
				entries = append(entries, Entry{Department: d, Semester: s})
			}
		}
		return EntriesLoadedMsg{Entries: entries}
	}
}

func (m Model) loadSubjectsCmd(e Entry) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Subjects(context.Background(), e.Department, e.Semester)
		return SubjectsLoadedMsg{Out: out, Err: err}
	}
}
