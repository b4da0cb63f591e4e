package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
)

func TestCollectTagInputsNormalizesGenreWeights(t *testing.T) {
	selected := []SelectedTag{
		{ID: "GENRE_ACTION", Category: catalog.CategoryGenre},
		{ID: "GENRE_DRAMA", Category: catalog.CategoryGenre},
		{ID: "PROTAGONIST_HERO", Category: catalog.CategoryProtagonist},
	}
	weights := map[string]float64{
		"GENRE_ACTION": 75,
		"GENRE_DRAMA":  25,
	}

	inputs := CollectTagInputs(selected, weights)
	require.Len(t, inputs, 3)

	// Genres come first, normalized to fractions of their sum.
	assert.Equal(t, "GENRE_ACTION", inputs[0].ID)
	assert.InDelta(t, 0.75, inputs[0].Percent, 1e-9)
	assert.Equal(t, "GENRE_DRAMA", inputs[1].ID)
	assert.InDelta(t, 0.25, inputs[1].Percent, 1e-9)

	assert.Equal(t, "PROTAGONIST_HERO", inputs[2].ID)
	assert.Equal(t, 1.0, inputs[2].Percent)
}

func TestCollectTagInputsDefaultsMissingWeights(t *testing.T) {
	selected := []SelectedTag{
		{ID: "GENRE_ACTION", Category: catalog.CategoryGenre},
		{ID: "GENRE_DRAMA", Category: catalog.CategoryGenre},
	}

	// No weights supplied: both default to 100 and split evenly.
	inputs := CollectTagInputs(selected, nil)
	require.Len(t, inputs, 2)
	assert.InDelta(t, 0.5, inputs[0].Percent, 1e-9)
	assert.InDelta(t, 0.5, inputs[1].Percent, 1e-9)
}

func TestCollectTagInputsZeroWeightSum(t *testing.T) {
	selected := []SelectedTag{
		{ID: "GENRE_ACTION", Category: catalog.CategoryGenre},
	}
	weights := map[string]float64{"GENRE_ACTION": 0}

	inputs := CollectTagInputs(selected, weights)
	require.Len(t, inputs, 1)
	assert.Equal(t, 0.0, inputs[0].Percent)
}

func TestCollectTagInputsEmptySelection(t *testing.T) {
	assert.Empty(t, CollectTagInputs(nil, nil))
}

func TestResolveTagsPrefersPreWeighted(t *testing.T) {
	req := ScoreRequest{
		Tags: []TagInput{
			{ID: "GENRE_ACTION", Percent: 1.0, Category: catalog.CategoryGenre},
		},
		Selected: []SelectedTag{
			{ID: "GENRE_DRAMA", Category: catalog.CategoryGenre},
		},
	}

	tags := req.ResolveTags()
	require.Len(t, tags, 1)
	assert.Equal(t, "GENRE_ACTION", tags[0].ID)
}

func TestResolveTagsNormalizesRawSelection(t *testing.T) {
	req := ScoreRequest{
		Selected: []SelectedTag{
			{ID: "GENRE_ACTION", Category: catalog.CategoryGenre},
			{ID: "GENRE_DRAMA", Category: catalog.CategoryGenre},
		},
		GenreWeights: map[string]float64{
			"GENRE_ACTION": 60,
			"GENRE_DRAMA":  40,
		},
	}

	tags := req.ResolveTags()
	require.Len(t, tags, 2)
	assert.InDelta(t, 0.6, tags[0].Percent, 1e-9)
	assert.InDelta(t, 0.4, tags[1].Percent, 1e-9)
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{0.004, "0"},
		{-0.004, "0"},
		{0.01, "+0.01"},
		{1.5, "+1.50"},
		{-0.25, "-0.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScore(tt.value), "value=%v", tt.value)
	}
}

func TestFormatFinalRating(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0.0"},
		{6.32, "6.3"},
		{9.9, "9.9"},
		{10.0, "10.0"},
		{12.4, "10.0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFinalRating(tt.value), "value=%v", tt.value)
	}
}
