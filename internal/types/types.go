package types

import (
	"fmt"
	"math"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
)

// TagInput is a tag participating in a calculation. Percent is the tag's
// fractional weight: always 1.0 outside Genre, and for genres the caller's
// split normalized to sum to 1.0. The scorer does not re-normalize.
type TagInput struct {
	ID       string           `json:"id"`
	Percent  float64          `json:"percent"`
	Category catalog.Category `json:"category"`
}

// SelectedTag is a raw selector entry before genre weights are applied.
type SelectedTag struct {
	ID       string           `json:"id" binding:"required"`
	Category catalog.Category `json:"category" binding:"required"`
}

// CollectTagInputs converts a raw selection plus user-assigned genre weights
// into calculation inputs. Genre weights are arbitrary non-negative numbers
// (the UI uses 0-100) normalized to fractions of their sum; a missing weight
// defaults to 100. Non-genre tags always carry percent 1.0.
func CollectTagInputs(selected []SelectedTag, genreWeights map[string]float64) []TagInput {
	inputs := make([]TagInput, 0, len(selected))

	var totalGenre float64
	type genreEntry struct {
		id    string
		value float64
	}
	var genres []genreEntry
	for _, t := range selected {
		if t.Category != catalog.CategoryGenre {
			continue
		}
		w, ok := genreWeights[t.ID]
		if !ok {
			w = 100
		}
		totalGenre += w
		genres = append(genres, genreEntry{id: t.ID, value: w})
	}
	if totalGenre == 0 && len(genres) > 0 {
		totalGenre = 1
	}
	for _, g := range genres {
		inputs = append(inputs, TagInput{
			ID:       g.id,
			Percent:  g.value / totalGenre,
			Category: catalog.CategoryGenre,
		})
	}

	for _, t := range selected {
		if t.Category == catalog.CategoryGenre {
			continue
		}
		inputs = append(inputs, TagInput{ID: t.ID, Percent: 1.0, Category: t.Category})
	}

	return inputs
}

// ScoreRequest is the body for the score and deltas endpoints. Callers either
// send pre-weighted tags, or a raw selection plus genre weights for the
// server to normalize via CollectTagInputs.
type ScoreRequest struct {
	Tags         []TagInput         `json:"tags"`
	Selected     []SelectedTag      `json:"selected"`
	GenreWeights map[string]float64 `json:"genre_weights"`
}

// ResolveTags returns the calculation inputs for a score request, normalizing
// a raw selection when no pre-weighted tags were sent.
func (r ScoreRequest) ResolveTags() []TagInput {
	if len(r.Tags) > 0 {
		return r.Tags
	}
	return CollectTagInputs(r.Selected, r.GenreWeights)
}

// GenerateRequest is the body for the generate endpoint. Either
// TargetMovieScore (mapped to a scoring-element count) or TargetElementCount
// may be supplied; an explicit count wins.
type GenerateRequest struct {
	TargetAvgComp      float64    `json:"target_avg_comp"`
	TargetMovieScore   int        `json:"target_movie_score"`
	TargetElementCount int        `json:"target_element_count"`
	FixedTags          []TagInput `json:"fixed_tags"`
	ExcludedTagIDs     []string   `json:"excluded_tag_ids"`
	OwnedTagIDs        []string   `json:"owned_tag_ids"`
	StarterProfile     bool       `json:"starter_profile"`
}

// AnalyzeRequest is the body for the audience analysis endpoint. Scores are
// on the game's 0-10 scale. UsageCounts optionally carries per-tag release
// counts for freshness classification.
type AnalyzeRequest struct {
	Tags        []TagInput     `json:"tags" binding:"required"`
	Commercial  float64        `json:"commercial"`
	Artistic    float64        `json:"artistic"`
	UsageCounts map[string]int `json:"usage_counts"`
}

// DistributionRequest is the body for the screening distribution endpoint.
type DistributionRequest struct {
	CommercialScore     float64 `json:"commercial_score"`
	AvailableScreenings int     `json:"available_screenings"`
}

// FormatScore renders a signed two-decimal score, with values inside
// +-0.005 collapsing to "0".
func FormatScore(v float64) string {
	if math.Abs(v) < 0.005 {
		return "0"
	}
	if v > 0 {
		return fmt.Sprintf("+%.2f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatFinalRating renders a 0-10 display rating, clamping at "10.0".
func FormatFinalRating(v float64) string {
	if v >= 10 {
		return "10.0"
	}
	return fmt.Sprintf("%.1f", v)
}
