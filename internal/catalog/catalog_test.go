package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/ideawatch/internal/game"
	"github.com/appengine-ltd/ideawatch/internal/parser"
)

func TestLoadEmptyPathIsDefault(t *testing.T) {
	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, game.DefaultItemCatalog(), got)
}

func TestDecodeOverridesAndAdds(t *testing.T) {
	doc := `
torch: {defense: 7, terror: -0.01}
chainsaw:
  defense: 40
  boost: {building: grinder, defense: 10}
Lucky Amulet: {survival: 0.02}
`
	got, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, game.ItemData{Modifier: game.StatModifier{Defense: 7, Terror: -0.01}}, got[game.ItemTorch])
	assert.Equal(t, game.ItemData{
		Modifier: game.StatModifier{Defense: 40},
		Boost:    &game.ItemBoost{Building: game.BuildingManualGrinder, Modifier: game.StatModifier{Defense: 10}},
	}, got[game.ItemChainsaw])
	assert.Equal(t, game.StatModifier{Survival: 0.02}, got[game.Item("Lucky Amulet")].Modifier)

	// untouched items keep their defaults
	assert.Equal(t, game.DefaultItemCatalog()[game.ItemMachete], got[game.ItemMachete])
	assert.Len(t, got, len(game.AllItems())+1)
}

func TestDecodeDoesNotTouchDefaults(t *testing.T) {
	_, err := Decode(strings.NewReader("torch: {defense: 99}\n"))
	require.NoError(t, err)
	assert.NotEqual(t, 99.0, game.DefaultItemCatalog()[game.ItemTorch].Modifier.Defense)
}

func TestDecodeEmptyDocument(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultItemCatalog(), got)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{name: "unknown field", doc: "torch: {shininess: 3}\n", want: "decode catalog"},
		{name: "unknown boost building", doc: "torch: {boost: {building: moon base}}\n", want: `item "torch": boost:`},
		{name: "ambiguous item", doc: "water: {defense: 1}\n", want: "ambiguous"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestUnknownBoostBuildingIsTyped(t *testing.T) {
	_, err := Decode(strings.NewReader("torch: {boost: {building: moon base}}\n"))
	var nameErr *parser.UnknownNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, parser.KindBuilding, nameErr.Kind)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guard dog: {defense: 1}\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got[game.ItemGuardDog].Modifier.Defense)
	assert.Nil(t, got[game.ItemGuardDog].Boost)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "open catalog")
}

func TestCatalogFeedsCalculator(t *testing.T) {
	items, err := Decode(strings.NewReader("torch: {survival: 0.05}\n"))
	require.NoError(t, err)

	citizen := game.CitizenContext{Items: []game.Item{game.ItemTorch}}
	got := game.NewCalculator(items).CitizenStats(game.TownContext{}, citizen)
	assert.InDelta(t, 0.97, got.Survival, 1e-9)
	assert.InDelta(t, 0.92, got.BaseSurvival, 1e-9)
}
