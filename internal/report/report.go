package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/message"

	"github.com/appengine-ltd/ideawatch/internal/sheet"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

type Options struct {
	Format string
	Lang   string
}

// Line is the flat, serialisable form of one evaluated citizen.
type Line struct {
	Name         string  `json:"name"`
	Tag          string  `json:"tag,omitempty"`
	Job          string  `json:"job"`
	SuperLevel   string  `json:"super_level"`
	Dead         bool    `json:"dead"`
	Survival     float64 `json:"survival"`
	BaseSurvival float64 `json:"base_survival"`
	Defense      float64 `json:"defense"`
	Wound        float64 `json:"wound"`
	Terror       float64 `json:"terror"`
}

func Lines(rows []sheet.Row) []Line {
	out := make([]Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, Line{
			Name:         row.Citizen.Name,
			Tag:          row.Citizen.Tag,
			Job:          row.Citizen.Job.String(),
			SuperLevel:   row.Citizen.SLevel.String(),
			Dead:         row.Citizen.Dead,
			Survival:     row.Result.Survival,
			BaseSurvival: row.Result.BaseSurvival,
			Defense:      row.Result.Defense,
			Wound:        row.Result.Wound,
			Terror:       row.Result.Terror,
		})
	}
	return out
}

// Write renders rows to w in the requested format.
func Write(w io.Writer, rows []sheet.Row, opts Options) error {
	switch opts.Format {
	case "", FormatTable:
		return writeTable(w, rows, printer(opts.Lang))
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	default:
		return fmt.Errorf("unsupported report format %q", opts.Format)
	}
}

func writeJSON(w io.Writer, rows []sheet.Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Lines(rows)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

var csvHeader = []string{"name", "tag", "job", "super_level", "dead", "survival", "base_survival", "defense", "wound", "terror"}

func writeCSV(w io.Writer, rows []sheet.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range Lines(rows) {
		record := []string{
			l.Name,
			l.Tag,
			l.Job,
			l.SuperLevel,
			strconv.FormatBool(l.Dead),
			formatFloat(l.Survival),
			formatFloat(l.BaseSurvival),
			formatFloat(l.Defense),
			formatFloat(l.Wound),
			formatFloat(l.Terror),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Padding(0, 1)
	deadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
)

func writeTable(w io.Writer, rows []sheet.Row, p *message.Printer) error {
	lines := Lines(rows)
	cells := make([][]string, 0, len(lines))
	for _, l := range lines {
		name := l.Name
		if l.Dead {
			name += " (" + p.Sprintf("dead") + ")"
		}
		cells = append(cells, []string{
			name,
			l.Tag,
			l.Job,
			l.SuperLevel,
			Percent(p, l.Survival),
			Percent(p, l.BaseSurvival),
			p.Sprintf("%.0f", l.Defense),
			p.Sprintf("%.3f", l.Wound),
			p.Sprintf("%.3f", l.Terror),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(
			p.Sprintf("Citizen"), p.Sprintf("Tag"), p.Sprintf("Job"), p.Sprintf("Level"),
			p.Sprintf("Survival"), p.Sprintf("Base survival"),
			p.Sprintf("Defense"), p.Sprintf("Wound"), p.Sprintf("Terror"),
		).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(lines) && lines[row].Dead {
				return deadStyle
			}
			return cellStyle
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, footerStyle.Render(p.Sprintf("%d citizens", len(lines))))
	return err
}

// Percent renders a 0..1 ratio as a localized percentage with two decimals.
func Percent(p *message.Printer, v float64) string {
	return p.Sprintf("%.2f%%", v*100)
}
