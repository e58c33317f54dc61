package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	historydto "github.com/teamit2026-cmd/cgpatracker/internal/modules/history/dto"
	reportdto "github.com/teamit2026-cmd/cgpatracker/internal/modules/report/dto"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/components"
	"github.com/teamit2026-cmd/cgpatracker/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type HistoryPort interface {
	List(ctx context.Context) ([]historydto.ResultOutput, error)
	Stats(ctx context.Context) (historydto.StatsOutput, error)
}

type ReportPort interface {
	Export(ctx context.Context, title, dir string) (reportdto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Results []historydto.ResultOutput
	Stats   historydto.StatsOutput
	Err     error
}

type ExportedMsg struct {
	Out reportdto.ExportOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	history   HistoryPort
	report    ReportPort
	reportDir string

	table   table.Model
	results []historydto.ResultOutput
	stats   historydto.StatsOutput
	err     error
	width   int
	height  int
}

func New(history HistoryPort, report ReportPort, reportDir string) Model {
	t := table.New(
		table.WithColumns(columns(60)),
		table.WithFocused(true),
		table.WithHeight(8),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(theme.Sapphire).Bold(true)
	styles.Selected = styles.Selected.Foreground(theme.Lavender).Bold(true)
	t.SetStyles(styles)
	return Model{history: history, report: report, reportDir: reportDir, table: t}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.table.SetHeight(max(msg.Height/3, 4))
		return m, nil

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.results = msg.Results
		m.stats = msg.Stats
		rows := make([]table.Row, 0, len(msg.Results))
		for i := len(msg.Results) - 1; i >= 0; i-- {
			r := msg.Results[i]
			rows = append(rows, table.Row{
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Label,
				fmt.Sprintf("%d", r.SubjectCount),
				fmt.Sprintf("%.2f", r.Value),
			})
		}
		m.table.SetRows(rows)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.Reload()
		case "e":
			return m, m.Export("")
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("History") + "\n\n")
	switch {
	case m.err != nil:
		sb.WriteString(theme.Error.Render("could not load history: "+m.err.Error()) + "\n")
	case len(m.results) == 0:
		sb.WriteString(theme.Muted.Render("no saved results yet; compute and press w to save one") + "\n")
	default:
		sb.WriteString(m.renderStats() + "\n\n")
		sb.WriteString(m.table.View() + "\n\n")
		sb.WriteString(theme.Title.Render("Progress") + "\n")
		sb.WriteString(components.Chart(m.values(), 8) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("r reload  e export report  ↑/↓ scroll"))
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(sb.String())
}

// Reload fetches results and stats together.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		results, err := m.history.List(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		stats, err := m.history.Stats(ctx)
		return LoadedMsg{Results: results, Stats: stats, Err: err}
	}
}

func (m Model) Export(title string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.report.Export(context.Background(), title, m.reportDir)
		return ExportedMsg{Out: out, Err: err}
	}
}

func (m Model) Count() int { return len(m.results) }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) values() []float64 {
	out := make([]float64, 0, len(m.results))
	for _, r := range m.results {
		out = append(out, r.Value)
	}
	return out
}

func (m Model) renderStats() string {
	s := m.stats
	latest := theme.Hot.Render(fmt.Sprintf("%.2f", s.Latest.Value))
	return fmt.Sprintf("%s %s   %s %.2f   %s %.2f   %s %.2f   %s %d   %s %s  %s",
		theme.Muted.Render("latest"), latest,
		theme.Muted.Render("average"), s.Mean,
		theme.Muted.Render("best"), s.Max,
		theme.Muted.Render("lowest"), s.Min,
		theme.Muted.Render("saved"), s.Count,
		theme.Muted.Render("trend"), components.Trend(m.values()),
		components.Sparkline(m.values()),
	)
}

func columns(width int) []table.Column {
	label := width - 16 - 8 - 6 - 10
	if label < 16 {
		label = 16
	}
	return []table.Column{
		{Title: "Saved", Width: 16},
		{Title: "Context", Width: label},
		{Title: "Subj", Width: 6},
		{Title: "CGPA", Width: 6},
	}
}
