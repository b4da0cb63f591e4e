package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

func TestScoreDeltasOmitsSelectedTags(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(nil)
	pairs := testPairs()

	current := []types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
	}

	deltas := ScoreDeltas(current, cat, matrix, pairs)

	_, ok := deltas["PROTAGONIST_HERO"]
	assert.False(t, ok, "selected tag must not appear in deltas")
	assert.Len(t, deltas, cat.Len()-1)
}

func TestScoreDeltasReflectBaseValues(t *testing.T) {
	cat := testCatalog()
	matrix := catalog.NewMatrix(nil)
	pairs := testPairs()

	current := []types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
	}

	deltas := ScoreDeltas(current, cat, matrix, pairs)

	// Adding Showdown with all-neutral compatibility only moves the bonus:
	// +0.1 art and +0.1 com scaled by 9.9.
	d, ok := deltas["FINALE_SHOWDOWN"]
	require.True(t, ok)
	assert.InDelta(t, 0.99, d.Art, 1e-9)
	assert.InDelta(t, 0.99, d.Com, 1e-9)
}

func TestScoreDeltasNegativeForConflictingTag(t *testing.T) {
	cat := testCatalog()
	pairs := testPairs()
	matrix := catalog.NewMatrix(map[string]map[string]float64{
		"PROTAGONIST_HERO": {"ANTAGONIST_RIVAL": 1.0},
	})

	current := []types.TagInput{
		tag("PROTAGONIST_HERO", 1.0, catalog.CategoryProtagonist),
		tag("FINALE_SHOWDOWN", 1.0, catalog.CategoryFinale),
	}

	deltas := ScoreDeltas(current, cat, matrix, pairs)

	d, ok := deltas["ANTAGONIST_RIVAL"]
	require.True(t, ok)
	assert.Negative(t, d.Art)
	assert.Negative(t, d.Com)
}
