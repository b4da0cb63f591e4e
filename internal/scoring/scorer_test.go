package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Tag{
		{ID: "GENRE_ACTION", Name: "Action", Category: catalog.CategoryGenre, Art: 0.1, Com: 0.3},
		{ID: "GENRE_DRAMA", Name: "Drama", Category: catalog.CategoryGenre, Art: 0.4, Com: 0.1},
		{ID: "SETTING_CITY", Name: "Big City", Category: catalog.CategorySetting, Art: 0.05, Com: 0.1},
		{ID: "PROTAGONIST_HERO", Name: "Hero", Category: catalog.CategoryProtagonist, Art: 0.05, Com: 0.05},
		{ID: "ANTAGONIST_RIVAL", Name: "Rival", Category: catalog.CategoryAntagonist, Art: 0.05, Com: 0.05},
		{ID: "FINALE_SHOWDOWN", Name: "Showdown", Category: catalog.CategoryFinale, Art: 0.1, Com: 0.1},
	}, nil)
}

func tag(id string, percent float64, cat catalog.Category) types.TagInput {
	return types.TagInput{ID: id, Percent: percent, Category: cat}
}

func TestScoreCompatibilitySingleTagIsNeutral(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(nil)

	res := ScoreCompatibility([]types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
	}, cat, matrix)

	assert.Equal(t, 0.0, res.TotalScore)
	assert.Equal(t, catalog.NeutralCompatibility, res.RawAverage)
	assert.Empty(t, res.Spoilers)
}

func TestScoreCompatibilityUnknownPairsDefaultNeutral(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(nil)

	res := ScoreCompatibility([]types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
		tag("ANTAGONIST_RIVAL", 1.0, catalog.CategoryAntagonist),
	}, cat, matrix)

	assert.Equal(t, 0.0, res.TotalScore)
	assert.Equal(t, 3.0, res.RawAverage)
	assert.Empty(t, res.Spoilers)
}

func TestScoreCompatibilityAllPositivePairs(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(map[string]map[string]float64{
		"PROTAGONIST_HERO": {
			"ANTAGONIST_RIVAL": 4.0,
			"FINALE_SHOWDOWN":  4.0,
		},
		"ANTAGONIST_RIVAL": {
			"FINALE_SHOWDOWN": 4.0,
		},
	})

	res := ScoreCompatibility([]types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
		tag("ANTAGONIST_RIVAL", 1.0, catalog.CategoryAntagonist),
		tag("FINALE_SHOWDOWN", 1.0, catalog.CategoryFinale),
	}, cat, matrix)

	// Each row averages +0.5, summed to 1.5, then damped by the gain scale.
	assert.InDelta(t, 1.35, res.TotalScore, 1e-9)
	assert.InDelta(t, 4.0, res.RawAverage, 1e-9)
	assert.Empty(t, res.Spoilers)
}

func TestScoreCompatibilityHardConflict(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(map[string]map[string]float64{
		"PROTAGONIST_HERO": {"ANTAGONIST_RIVAL": 1.0},
	})

	res := ScoreCompatibility([]types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
		tag("ANTAGONIST_RIVAL", 1.0, catalog.CategoryAntagonist),
	}, cat, matrix)

	// Both rows collapse to -1.0 and the loss scale amplifies the sum.
	assert.InDelta(t, -2.5, res.TotalScore, 1e-9)
	assert.InDelta(t, 1.0, res.RawAverage, 1e-9)

	require.Len(t, res.Spoilers, 2)
	assert.Equal(t, "Hero conflicts with Rival", res.Spoilers[0])
	assert.Equal(t, "Rival conflicts with Hero", res.Spoilers[1])
}

func TestScoreCompatibilityGenreConflictWeighting(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(map[string]map[string]float64{
		"PROTAGONIST_HERO": {"GENRE_ACTION": 2.0},
	})

	res := ScoreCompatibility([]types.TagInput{
		tag("GENRE_ACTION", 1.0, catalog.CategoryGenre),
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
	}, cat, matrix)

	// The weighted row average stays at the transformed pair value (-0.5)
	// regardless of the conflict weight, so the total is the amplified sum of
	// both rows.
	assert.InDelta(t, -1.25, res.TotalScore, 1e-9)
	assert.Empty(t, res.Spoilers)
}

func TestScoreCompatibilityWorstPairingDragsRowDown(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(map[string]map[string]float64{
		"PROTAGONIST_HERO": {
			"ANTAGONIST_RIVAL": 5.0,
			"FINALE_SHOWDOWN":  2.0,
		},
		"ANTAGONIST_RIVAL": {"FINALE_SHOWDOWN": 3.0},
	})

	res := ScoreCompatibility([]types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
		tag("ANTAGONIST_RIVAL", 1.0, catalog.CategoryAntagonist),
		tag("FINALE_SHOWDOWN", 1.0, catalog.CategoryFinale),
	}, cat, matrix)

	// Hero's row: (+1.0 - 1.5) / 4 = -0.125 average, but the worst pairing
	// (raw 2.0 -> -0.5) is lower and wins.
	// Rival's row: (+1.0 + 0) / 2 = +0.5, worst transform 0 < 0.5 -> 0.
	// Showdown's row: (-1.5 + 0) / 4 = -0.375, worst -0.5 wins.
	// Sum -1.0, amplified by the loss scale.
	assert.InDelta(t, -1.25, res.TotalScore, 1e-9)
	assert.Empty(t, res.Spoilers)
}

func TestScoreCompatibilityGenrePercentScalesRow(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(map[string]map[string]float64{
		"GENRE_ACTION": {"PROTAGONIST_HERO": 5.0},
	})

	full := ScoreCompatibility([]types.TagInput{
		tag("GENRE_ACTION", 1.0, catalog.CategoryGenre),
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
	}, cat, matrix)

	half := ScoreCompatibility([]types.TagInput{
		tag("GENRE_ACTION", 0.5, catalog.CategoryGenre),
		tag("GENRE_DRAMA", 0.5, catalog.CategoryGenre),
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
	}, cat, matrix)

	assert.Greater(t, full.TotalScore, half.TotalScore)
}

func TestDedupeSpoilers(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil input", input: nil, want: nil},
		{name: "no duplicates", input: []string{"a", "b"}, want: []string{"a", "b"}},
		{
			name:  "duplicates preserve first-seen order",
			input: []string{"b", "a", "b", "a", "c"},
			want:  []string{"b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupeSpoilers(tt.input))
		})
	}
}
