package sheet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/ideawatch/internal/game"
	"github.com/appengine-ltd/ideawatch/internal/parser"
)

// Sheet is the watch sheet of one town on one day.
type Sheet struct {
	Settings TownEntry      `yaml:"town" json:"town"`
	Roster   []CitizenEntry `yaml:"citizens" json:"citizens"`

	items *parser.Registry[game.Item]
}

type TownEntry struct {
	Pandemonium    bool     `yaml:"pandemonium" json:"pandemonium"`
	Buildings      []string `yaml:"buildings" json:"buildings"`
	PoolBuildDay   *int     `yaml:"pool_build_day" json:"pool_build_day,omitempty"`
	ShowerBuildDay *int     `yaml:"shower_build_day" json:"shower_build_day,omitempty"`
}

type CitizenEntry struct {
	Name        string         `yaml:"name" json:"name"`
	Tag         string         `yaml:"tag" json:"tag"`
	Job         string         `yaml:"job" json:"job"`
	SuperLevel  string         `yaml:"super_level" json:"super_level"`
	Dead        bool           `yaml:"dead" json:"dead"`
	Watches     string         `yaml:"watches" json:"watches"`
	Baths       string         `yaml:"baths" json:"baths"`
	Statuses    []string       `yaml:"statuses" json:"statuses"`
	Items       map[string]int `yaml:"items" json:"items"`
	ShowerToday bool           `yaml:"shower_today" json:"shower_today"`
}

// Load reads a sheet from a YAML file.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a sheet from YAML. Unknown keys are rejected.
func Decode(r io.Reader) (*Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode sheet: empty document")
		}
		return nil, fmt.Errorf("decode sheet: %w", err)
	}
	slog.Debug("sheet decoded", "citizens", len(s.Roster))
	return &s, nil
}

// UseItems makes citizen item names resolve against names instead of the
// built-in item list. Used with catalogs that add items.
func (s *Sheet) UseItems(names []game.Item) {
	s.items = parser.NewItemRegistry(names)
}

// Town builds the town context from the sheet.
func (s *Sheet) Town() (game.TownContext, error) {
	town := game.TownContext{
		Pandemonium:    s.Settings.Pandemonium,
		PoolBuildDay:   s.Settings.PoolBuildDay,
		ShowerBuildDay: s.Settings.ShowerBuildDay,
	}
	for _, raw := range s.Settings.Buildings {
		b, err := parser.ResolveBuilding(raw)
		if err != nil {
			return game.TownContext{}, fmt.Errorf("town buildings: %w", err)
		}
		town = town.With(b)
	}
	return town, nil
}

// Citizens builds one context per sheet row, in sheet order.
func (s *Sheet) Citizens() ([]game.CitizenContext, error) {
	out := make([]game.CitizenContext, 0, len(s.Roster))
	for i, entry := range s.Roster {
		c, err := s.citizen(entry)
		if err != nil {
			return nil, fmt.Errorf("citizen %d (%s): %w", i+1, displayName(entry, i), err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Sheet) citizen(entry CitizenEntry) (game.CitizenContext, error) {
	c := game.CitizenContext{
		Name: strings.TrimSpace(entry.Name),
		Tag:  strings.TrimSpace(entry.Tag),
		Dead: entry.Dead,
	}

	var err error
	if strings.TrimSpace(entry.Job) != "" {
		if c.Job, err = parser.ResolveJob(entry.Job); err != nil {
			return c, fmt.Errorf("job: %w", err)
		}
	}
	if strings.TrimSpace(entry.SuperLevel) != "" {
		if c.SLevel, err = parser.ResolveSuperLevel(entry.SuperLevel); err != nil {
			return c, fmt.Errorf("super level: %w", err)
		}
	}
	if c.PreviousWatchDays, err = days(entry.Watches); err != nil {
		return c, fmt.Errorf("watches: %w", err)
	}
	if c.PreviousBathDays, err = days(entry.Baths); err != nil {
		return c, fmt.Errorf("baths: %w", err)
	}

	if c.Dead {
		if len(entry.Statuses) > 0 || len(entry.Items) > 0 || entry.ShowerToday {
			slog.Warn("ignoring statuses, items and shower of dead citizen", "citizen", c.Name)
		}
		return c, nil
	}

	for _, raw := range entry.Statuses {
		st, err := parser.ResolveStatus(raw)
		if err != nil {
			return c, fmt.Errorf("statuses: %w", err)
		}
		c.Statuses = append(c.Statuses, st)
	}
	if c.Items, err = s.resolveItems(entry.Items); err != nil {
		return c, fmt.Errorf("items: %w", err)
	}
	c.TookShowerToday = entry.ShowerToday
	return c, nil
}

// resolveItems expands the item counts into a list, ordered by item name so
// the result does not depend on map order.
func (s *Sheet) resolveItems(counts map[string]int) ([]game.Item, error) {
	registry := s.items
	if registry == nil {
		registry = parser.NewItemRegistry(game.AllItems())
	}

	resolved := make(map[game.Item]int, len(counts))
	for raw, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("%q: negative count %d", raw, n)
		}
		item, _, err := registry.Resolve(raw)
		if err != nil {
			return nil, err
		}
		resolved[item] += n
		if resolved[item] > 1 && slices.Contains(game.HeavyItems(), item) {
			return nil, fmt.Errorf("%q: a citizen carries at most one %s", raw, item)
		}
	}

	names := make([]game.Item, 0, len(resolved))
	for item := range resolved {
		names = append(names, item)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	var out []game.Item
	for _, item := range names {
		for range resolved[item] {
			out = append(out, item)
		}
	}
	return out, nil
}

func days(raw string) ([]int, error) {
	r, err := game.ParseRange(raw)
	if err != nil {
		return nil, err
	}
	out := r.Integers()
	for _, d := range out {
		if d < 1 {
			return nil, fmt.Errorf("day %d: days start at 1", d)
		}
	}
	return out, nil
}

func displayName(entry CitizenEntry, i int) string {
	if name := strings.TrimSpace(entry.Name); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", i+1)
}
