package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/ideawatch/internal/game"
	"github.com/appengine-ltd/ideawatch/internal/parser"
)

// Entry is the YAML form of one item's modifiers.
type Entry struct {
	Survival float64 `yaml:"survival"`
	Defense  float64 `yaml:"defense"`
	Wound    float64 `yaml:"wound"`
	Terror   float64 `yaml:"terror"`
	Boost    *Boost  `yaml:"boost"`
}

// Boost is the extra modifier an item gets once Building is built.
type Boost struct {
	Building string  `yaml:"building"`
	Survival float64 `yaml:"survival"`
	Defense  float64 `yaml:"defense"`
	Wound    float64 `yaml:"wound"`
	Terror   float64 `yaml:"terror"`
}

// Load reads item overrides from path and merges them over the default
// catalog. An empty path yields the default catalog.
func Load(path string) (game.ItemCatalog, error) {
	if path == "" {
		return game.DefaultItemCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads item overrides from r and merges them over the default
// catalog. An override replaces the whole entry of the item it names.
// Names that match no known item add a new item.
func Decode(r io.Reader) (game.ItemCatalog, error) {
	var entries map[string]Entry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return Merge(game.DefaultItemCatalog(), entries)
}

// Merge applies entries to a copy of base.
func Merge(base game.ItemCatalog, entries map[string]Entry) (game.ItemCatalog, error) {
	out := base.Clone()
	if out == nil {
		out = game.ItemCatalog{}
	}
	registry := parser.NewItemRegistry(out.Items())

	for raw, entry := range entries {
		item, err := resolveItem(registry, raw)
		if err != nil {
			return nil, err
		}
		data, err := entry.itemData()
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", raw, err)
		}
		if _, known := out[item]; !known {
			slog.Debug("catalog adds item", "item", item)
		}
		out[item] = data
	}
	return out, nil
}

func resolveItem(registry *parser.Registry[game.Item], raw string) (game.Item, error) {
	item, _, err := registry.Resolve(raw)
	if err == nil {
		return item, nil
	}
	var nameErr *parser.UnknownNameError
	if errors.As(err, &nameErr) && !nameErr.Ambiguous && strings.TrimSpace(raw) != "" {
		return game.Item(strings.TrimSpace(raw)), nil
	}
	return "", err
}

func (e Entry) itemData() (game.ItemData, error) {
	data := game.ItemData{Modifier: game.StatModifier{
		Survival: e.Survival,
		Defense:  e.Defense,
		Wound:    e.Wound,
		Terror:   e.Terror,
	}}
	if e.Boost == nil {
		return data, nil
	}
	b, err := parser.ResolveBuilding(e.Boost.Building)
	if err != nil {
		return game.ItemData{}, fmt.Errorf("boost: %w", err)
	}
	data.Boost = &game.ItemBoost{
		Building: b,
		Modifier: game.StatModifier{
			Survival: e.Boost.Survival,
			Defense:  e.Boost.Defense,
			Wound:    e.Boost.Wound,
			Terror:   e.Boost.Terror,
		},
	}
	return data, nil
}
