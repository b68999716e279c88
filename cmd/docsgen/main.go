package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/ideawatch/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := catalogDocs()
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func catalogDocs() []docFile {
	return []docFile{
		generateJobsDoc(),
		generateStatusesDoc(),
		generateSuperLevelsDoc(),
		generateBuildingsDoc(),
		generateItemsDoc(game.DefaultItemCatalog()),
	}
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

const modifierHeader = "| Survival | Defense | Wound | Terror |"

func modifierCells(m game.StatModifier) string {
	return fmt.Sprintf("| %s | %s | %s | %s |", signed(m.Survival), signed(m.Defense), signed(m.Wound), signed(m.Terror))
}

func generateJobsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Jobs\n\n")
	b.WriteString("Source: `internal/game/jobs.go` (`JobModifier`).\n\n")
	b.WriteString("| Job " + modifierHeader + "\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, j := range game.AllJobs() {
		b.WriteString("| ")
		b.WriteString(escape(j.String()))
		b.WriteString(" ")
		b.WriteString(modifierCells(game.JobModifier(j)))
		b.WriteString("\n")
	}
	return docFile{Name: "jobs.md", Title: "Jobs", Content: b.String()}
}

func generateStatusesDoc() docFile {
	statuses := game.AllStatuses()

	var b strings.Builder
	b.WriteString("# Statuses\n\n")
	b.WriteString("Source: `internal/game/statuses.go` (`StatusModifier`).\n\n")
	b.WriteString(fmt.Sprintf("Total statuses: **%d**.\n\n", len(statuses)))
	b.WriteString("| Status " + modifierHeader + "\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, s := range statuses {
		m, _ := game.StatusModifier(s)
		b.WriteString("| ")
		b.WriteString(escape(s.String()))
		b.WriteString(" ")
		b.WriteString(modifierCells(m))
		b.WriteString("\n")
	}
	return docFile{Name: "statuses.md", Title: "Statuses", Content: b.String()}
}

func generateSuperLevelsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Super Levels\n\n")
	b.WriteString("Source: `internal/game/super_level.go` (`SuperLevelModifier`, `SurvivalMalusCurve`).\n\n")
	b.WriteString("The malus curve is indexed by the number of previous watches; counts past the end use the last value.\n\n")
	b.WriteString("| Level | Ordinal " + modifierHeader + " Watch malus curve |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, l := range game.AllSuperLevels() {
		b.WriteString("| ")
		b.WriteString(escape(l.String()))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(int(l)))
		b.WriteString(" ")
		b.WriteString(modifierCells(game.SuperLevelModifier(l)))
		b.WriteString(" ")
		b.WriteString(formatCurve(game.SurvivalMalusCurve(l)))
		b.WriteString(" |\n")
	}
	return docFile{Name: "super_levels.md", Title: "Super Levels", Content: b.String()}
}

func generateBuildingsDoc() docFile {
	var b strings.Builder
	b.WriteString("# Buildings\n\n")
	b.WriteString("Source: `internal/game/town.go` (`BuildingsModifier`, `SmallTrebuchetMultiplier`).\n\n")
	b.WriteString("| Building " + modifierHeader + " Terror multiplier |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, bl := range game.AllBuildings() {
		town := game.TownContext{}.With(bl)
		mult := game.SmallTrebuchetMultiplier(town)
		b.WriteString("| ")
		b.WriteString(escape(bl.String()))
		b.WriteString(" ")
		b.WriteString(modifierCells(game.BuildingsModifier(town)))
		b.WriteString(" ")
		if mult.Terror.IsSet() {
			b.WriteString("x" + formatFloat(mult.Terror.Value()))
		}
		b.WriteString(" |\n")
	}
	return docFile{Name: "buildings.md", Title: "Buildings", Content: b.String()}
}

func generateItemsDoc(catalog game.ItemCatalog) docFile {
	heavy := map[game.Item]bool{}
	for _, it := range game.HeavyItems() {
		heavy[it] = true
	}

	var b strings.Builder
	b.WriteString("# Watch Items\n\n")
	b.WriteString("Source: `internal/game/items.go` (`DefaultItemCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total items: **%d**.\n\n", len(catalog)))
	b.WriteString("| Item | Heavy " + modifierHeader + " Boost |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, it := range catalog.Items() {
		data := catalog[it]
		b.WriteString("| ")
		b.WriteString(escape(string(it)))
		b.WriteString(" | ")
		b.WriteString(yesNo(heavy[it]))
		b.WriteString(" ")
		b.WriteString(modifierCells(data.Modifier))
		b.WriteString(" ")
		if data.Boost != nil {
			b.WriteString(escape(formatBoost(*data.Boost)))
		}
		b.WriteString(" |\n")
	}
	return docFile{Name: "items.md", Title: "Watch Items", Content: b.String()}
}

func formatBoost(boost game.ItemBoost) string {
	var parts []string
	m := boost.Modifier
	for _, f := range []struct {
		name string
		v    float64
	}{{"survival", m.Survival}, {"defense", m.Defense}, {"wound", m.Wound}, {"terror", m.Terror}} {
		if f.v != 0 {
			parts = append(parts, f.name+" "+signed(f.v))
		}
	}
	return fmt.Sprintf("%s with %s", strings.Join(parts, ", "), boost.Building)
}

func formatCurve(curve []float64) string {
	parts := make([]string, 0, len(curve))
	for _, v := range curve {
		parts = append(parts, formatFloat(v))
	}
	return strings.Join(parts, ", ")
}

func signed(v float64) string {
	if v > 0 {
		return "+" + formatFloat(v)
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
