package scoring

import (
	"math"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

// MaxGameScore is the nominal per-axis maximum before the tag cap applies.
const MaxGameScore = 9.9

// ScoreSummary is the assembled, displayable result of a synergy
// calculation.
type ScoreSummary struct {
	RawAverage float64  `json:"raw_average"`
	TotalScore float64  `json:"total_score"`
	Spoilers   []string `json:"spoilers"`
	Bonuses    Bonuses  `json:"bonuses"`
	DisplayCom float64  `json:"display_com"`
	DisplayArt float64  `json:"display_art"`
	TagCap     int      `json:"tag_cap"`
	NGCount    int      `json:"ng_count"`
}

// ScoringElementCount counts the selected tags outside Genre and Setting.
func ScoringElementCount(selected []types.TagInput) int {
	n := 0
	for _, t := range selected {
		if t.Category.Scoring() {
			n++
		}
	}
	return n
}

// TagCap returns the maximum displayable score for a scoring-element count.
// More substantive story elements unlock a higher ceiling.
func TagCap(ngCount int) int {
	switch {
	case ngCount >= 9:
		return 9
	case ngCount >= 7:
		return 8
	case ngCount >= 5:
		return 7
	default:
		return 6
	}
}

// MaxScriptQuality returns the script quality ceiling for a scoring-element
// count, one below the tag cap at every bucket.
func MaxScriptQuality(ngCount int) int {
	return TagCap(ngCount) - 1
}

// AssembleScore combines the scorer and bonus outputs into final
// Commercial/Artistic display scores, clamped to [0, tagCap]. Spoilers are
// deduplicated for display.
func AssembleScore(matrix MatrixResult, bonuses Bonuses, selected []types.TagInput) ScoreSummary {
	ngCount := ScoringElementCount(selected)
	tagCap := TagCap(ngCount)

	displayCom := math.Max(0, (matrix.TotalScore+bonuses.Com)*MaxGameScore)
	displayArt := math.Max(0, (matrix.TotalScore+bonuses.Art)*MaxGameScore)
	displayCom = math.Min(float64(tagCap), displayCom)
	displayArt = math.Min(float64(tagCap), displayArt)

	return ScoreSummary{
		RawAverage: matrix.RawAverage,
		TotalScore: matrix.TotalScore,
		Spoilers:   DedupeSpoilers(matrix.Spoilers),
		Bonuses:    bonuses,
		DisplayCom: displayCom,
		DisplayArt: displayArt,
		TagCap:     tagCap,
		NGCount:    ngCount,
	}
}

// Score runs the full pipeline for a selection: compatibility, bonuses,
// assembly.
func Score(selected []types.TagInput, cat *catalog.Catalog, matrix *catalog.Matrix, pairs *catalog.GenrePairs) ScoreSummary {
	mr := ScoreCompatibility(selected, cat, matrix)
	b := ComputeBonuses(selected, cat, pairs)
	return AssembleScore(mr, b, selected)
}
