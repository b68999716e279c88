package sheet

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/ideawatch/internal/game"
	"github.com/appengine-ltd/ideawatch/internal/parser"
)

const sampleSheet = `
town:
  pandemonium: false
  buildings: [guard room, small trebuchet]
  pool_build_day: 3
citizens:
  - name: Alice
    tag: A
    job: guard
    super_level: 4
    watches: "1-3, 6"
    baths: "2, 4-5"
    statuses: [drunk, immune]
    items: {chainsaw: 1, water bomb: 2}
    shower_today: true
  - name: Bob
    job: tamer
    super_level: apprentice
    dead: true
    statuses: [wounded]
    items: {torch: 1}
    shower_today: true
  - name: Carol
`

func decodeSample(t *testing.T) *Sheet {
	t.Helper()
	s, err := Decode(strings.NewReader(sampleSheet))
	require.NoError(t, err)
	return s
}

func TestDecodeTown(t *testing.T) {
	s := decodeSample(t)

	town, err := s.Town()
	require.NoError(t, err)
	assert.True(t, town.GuardRoomBuilt)
	assert.True(t, town.SmallTrebuchetBuilt)
	assert.False(t, town.GasGunBuilt)
	assert.False(t, town.Pandemonium)
	require.NotNil(t, town.PoolBuildDay)
	assert.Equal(t, 3, *town.PoolBuildDay)
	assert.Nil(t, town.ShowerBuildDay)
}

func TestDecodeCitizens(t *testing.T) {
	s := decodeSample(t)

	citizens, err := s.Citizens()
	require.NoError(t, err)
	require.Len(t, citizens, 3)

	alice := citizens[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.Equal(t, "A", alice.Tag)
	assert.Equal(t, game.JobGuard, alice.Job)
	assert.Equal(t, game.SuperLevelMaster, alice.SLevel)
	assert.Equal(t, []int{1, 2, 3, 6}, alice.PreviousWatchDays)
	assert.Equal(t, []int{2, 4, 5}, alice.PreviousBathDays)
	assert.Equal(t, []game.Status{game.StatusDrunk, game.StatusImmune}, alice.Statuses)
	assert.Equal(t, []game.Item{game.ItemChainsaw, game.ItemWaterBomb, game.ItemWaterBomb}, alice.Items)
	assert.True(t, alice.TookShowerToday)

	bob := citizens[1]
	assert.True(t, bob.Dead)
	assert.Equal(t, game.JobTamer, bob.Job)
	assert.Equal(t, game.SuperLevelApprentice, bob.SLevel)
	assert.Empty(t, bob.Statuses)
	assert.Empty(t, bob.Items)
	assert.False(t, bob.TookShowerToday)

	carol := citizens[2]
	assert.Equal(t, game.JobOther, carol.Job)
	assert.Equal(t, game.SuperLevelNone, carol.SLevel)
	assert.Empty(t, carol.PreviousWatchDays)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("citizens:\n  - name: Alice\n    mood: grumpy\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode sheet")
}

func TestDecodeRejectsEmptyDocument(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestCitizenErrorsNameTheRow(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		target any
		want   string
	}{
		{
			name:   "unknown status",
			doc:    "citizens:\n  - name: Dan\n    statuses: [sleepy]\n",
			target: new(*parser.UnknownNameError),
			want:   "citizen 1 (Dan): statuses:",
		},
		{
			name:   "bad watches",
			doc:    "citizens:\n  - name: Eve\n    watches: \"3-1\"\n",
			target: new(*game.RangeError),
			want:   "citizen 1 (Eve): watches:",
		},
		{
			name: "day before the first",
			doc:  "citizens:\n  - name: Ivy\n    watches: \"-2-0\"\n",
			want: "citizen 1 (Ivy): watches: day -2: days start at 1",
		},
		{
			name: "bath on day zero",
			doc:  "citizens:\n  - name: Jon\n    baths: \"0, 2\"\n",
			want: "citizen 1 (Jon): baths: day 0: days start at 1",
		},
		{
			name:   "bad super level",
			doc:    "citizens:\n  - {}\n  - super_level: 9\n",
			target: new(*parser.UnknownNameError),
			want:   "citizen 2 (#2): super level:",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tc.doc))
			require.NoError(t, err)

			_, err = s.Citizens()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
			if tc.target != nil {
				assert.True(t, errors.As(err, tc.target), "unexpected error type: %v", err)
			}
		})
	}
}

func TestNegativeItemCountIsRejected(t *testing.T) {
	s, err := Decode(strings.NewReader("citizens:\n  - name: Fay\n    items: {torch: -1}\n"))
	require.NoError(t, err)

	_, err = s.Citizens()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative count")
}

func TestHeavyItemCountIsCapped(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "count", doc: "citizens:\n  - name: Hal\n    items: {chainsaw: 3}\n"},
		{name: "alias adds up", doc: "citizens:\n  - name: Hal\n    items: {shopping trolley: 1, trolley: 1}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tc.doc))
			require.NoError(t, err)

			_, err = s.Citizens()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "at most one")
		})
	}
}

func TestLightItemsStack(t *testing.T) {
	s, err := Decode(strings.NewReader("citizens:\n  - name: Ida\n    items: {chainsaw: 1, torch: 3}\n"))
	require.NoError(t, err)

	citizens, err := s.Citizens()
	require.NoError(t, err)
	assert.Equal(t, []game.Item{game.ItemChainsaw, game.ItemTorch, game.ItemTorch, game.ItemTorch}, citizens[0].Items)
}

func TestUnknownBuilding(t *testing.T) {
	s, err := Decode(strings.NewReader("town:\n  buildings: [space elevator]\n"))
	require.NoError(t, err)

	_, err = s.Town()
	var nameErr *parser.UnknownNameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, parser.KindBuilding, nameErr.Kind)
}

func TestUseItemsAcceptsCatalogItems(t *testing.T) {
	s, err := Decode(strings.NewReader("citizens:\n  - name: Gus\n    items: {lucky amulet: 1}\n"))
	require.NoError(t, err)

	_, err = s.Citizens()
	require.Error(t, err)

	s.UseItems(append(game.AllItems(), game.Item("Lucky Amulet")))
	citizens, err := s.Citizens()
	require.NoError(t, err)
	assert.Equal(t, []game.Item{"Lucky Amulet"}, citizens[0].Items)
}

func TestEvaluateMatchesPipelineAndKeepsOrder(t *testing.T) {
	s := decodeSample(t)
	town, err := s.Town()
	require.NoError(t, err)
	citizens, err := s.Citizens()
	require.NoError(t, err)

	calc := game.NewCalculator(nil)
	rows, err := Evaluate(context.Background(), calc, town, citizens, 2)
	require.NoError(t, err)
	require.Len(t, rows, len(citizens))

	for i, row := range rows {
		assert.Equal(t, citizens[i].Name, row.Citizen.Name)
		assert.Equal(t, game.ComputeCitizenStats(town, citizens[i]), row.Result)
		assert.Zero(t, row.Result.Terror, "small trebuchet zeroes terror")
	}
}

func TestEvaluateIdentityCitizen(t *testing.T) {
	rows, err := Evaluate(context.Background(), game.NewCalculator(nil), game.TownContext{}, []game.CitizenContext{{Name: "Zed"}}, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0].Result
	assert.InDelta(t, 0.92, got.Survival, 1e-9)
	assert.InDelta(t, 10, got.Defense, 1e-9)
	assert.InDelta(t, 0.92, got.BaseSurvival, 1e-9)
}

func TestEvaluateManyCitizens(t *testing.T) {
	citizens := make([]game.CitizenContext, 50)
	for i := range citizens {
		citizens[i] = game.CitizenContext{
			Name:              strings.Repeat("x", i+1),
			PreviousWatchDays: make([]int, i%12),
		}
	}

	rows, err := Evaluate(context.Background(), game.NewCalculator(nil), game.TownContext{}, citizens, 0)
	require.NoError(t, err)
	for i, row := range rows {
		assert.Equal(t, citizens[i].Name, row.Citizen.Name)
	}
}

func TestEvaluateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, game.NewCalculator(nil), game.TownContext{}, []game.CitizenContext{{Name: "Ann"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	rows, err := decodeSample(t).Run(context.Background(), game.NewCalculator(nil), 4)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Carol", rows[2].Citizen.Name)
}
