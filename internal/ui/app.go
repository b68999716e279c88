package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/ideawatch/internal/report"
	"github.com/appengine-ltd/ideawatch/internal/sheet"
)

type AppConfig struct {
	Version string
	Lang    string
}

type App struct {
	cfg  AppConfig
	rows []sheet.Row
}

func NewApp(cfg AppConfig, rows []sheet.Row) *App {
	return &App{cfg: cfg, rows: rows}
}

func (a *App) Run() error {
	m := newBrowserModel(a.cfg, a.rows)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pane        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("2")).Padding(0, 1)
)

const rule = "----------------------------------------"

// --- Citizen browser model ---

type browserModel struct {
	cfg     AppConfig
	rows    []sheet.Row
	printer *message.Printer
	idx     int
}

func newBrowserModel(cfg AppConfig, rows []sheet.Row) browserModel {
	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		tag = language.English
	}
	return browserModel{cfg: cfg, rows: rows, printer: message.NewPrinter(tag)}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	n := len(m.rows)
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if n > 0 {
			m.idx = (m.idx + n - 1) % n
		}
	case "down", "j":
		if n > 0 {
			m.idx = (m.idx + 1) % n
		}
	case "home", "g":
		m.idx = 0
	case "end", "G":
		if n > 0 {
			m.idx = n - 1
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder
	b.WriteString(brightGreen.Render("IDEAWATCH") + dimGreen.Render("  night watch"))
	if m.cfg.Version != "" {
		b.WriteString(dimGreen.Render("  v" + m.cfg.Version))
	}
	b.WriteString("\n" + border.Render(rule) + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString(green.Render("No citizens on this sheet.") + "\n")
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", pane.Render(m.detailView())))
		b.WriteString("\n")
	}

	b.WriteString("\n" + border.Render(rule) + "\n")
	b.WriteString(dimGreen.Render("↑/↓ to move, q to quit") + "\n")
	return b.String()
}

func (m browserModel) listView() string {
	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		label := citizenLabel(row)
		cursor := "  "
		switch {
		case i == m.idx:
			cursor = "> "
			label = brightGreen.Render(label)
		case row.Citizen.Dead:
			label = dimGreen.Render(label)
		default:
			label = green.Render(label)
		}
		lines = append(lines, cursor+label)
	}
	return strings.Join(lines, "\n")
}

func (m browserModel) detailView() string {
	row := m.rows[m.idx]
	c, r := row.Citizen, row.Result
	p := m.printer

	lines := []string{
		brightGreen.Render(citizenLabel(row)),
		dimGreen.Render(fmt.Sprintf("%s, %s", c.Job, c.SLevel)),
		"",
		statLine(p.Sprintf("Survival"), report.Percent(p, r.Survival)),
		statLine(p.Sprintf("Base survival"), report.Percent(p, r.BaseSurvival)),
		statLine(p.Sprintf("Defense"), p.Sprintf("%.0f", r.Defense)),
		statLine(p.Sprintf("Wound"), p.Sprintf("%.3f", r.Wound)),
		statLine(p.Sprintf("Terror"), p.Sprintf("%.3f", r.Terror)),
	}
	if len(c.PreviousWatchDays) > 0 {
		lines = append(lines, "", dimGreen.Render(fmt.Sprintf("watches: %d", len(c.PreviousWatchDays))))
	}
	if c.Dead {
		lines = append(lines, dimGreen.Render(p.Sprintf("dead")))
	}
	return strings.Join(lines, "\n")
}

func statLine(label, value string) string {
	return green.Render(fmt.Sprintf("%-16s", label)) + brightGreen.Render(value)
}

func citizenLabel(row sheet.Row) string {
	name := row.Citizen.Name
	if name == "" {
		name = "?"
	}
	if row.Citizen.Tag != "" {
		name += " [" + row.Citizen.Tag + "]"
	}
	return name
}
