package scoring

import (
	"fmt"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

var (
	// Negative compatibility with a genre or setting sinks a script far
	// harder than a weak character or theme pairing.
	genreConflictWeight   = 20.0
	settingConflictWeight = 5.0
	defaultConflictWeight = 3.0

	// Final asymmetric scaling: gains are damped, losses amplified.
	gainScale = 0.9
	lossScale = 1.25

	// A raw pair value at the floor of the 1.0-5.0 range is a hard conflict.
	hardConflictThreshold = 1.0
)

// MatrixResult is the compatibility scorer's output. TotalScore is the
// weighted synergy aggregate; RawAverage the unweighted mean pair value;
// Spoilers the hard-conflict messages in detection order, undeduplicated.
type MatrixResult struct {
	TotalScore float64  `json:"total_score"`
	RawAverage float64  `json:"raw_average"`
	Spoilers   []string `json:"spoilers"`
}

// transform maps a raw 1.0-5.0 compatibility value onto a signed -1..+1
// score with 3.0 neutral.
func transform(raw float64) float64 {
	return (raw - catalog.NeutralCompatibility) / 2.0
}

// ScoreCompatibility computes the synergy score for a selection. The
// selection must be non-empty; callers validate before dispatching here. A
// single-tag selection yields TotalScore 0 and a neutral RawAverage.
func ScoreCompatibility(selected []types.TagInput, cat *catalog.Catalog, matrix *catalog.Matrix) MatrixResult {
	var rawSum float64
	pairCount := 0
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			rawSum += matrix.Value(selected[i].ID, selected[j].ID)
			pairCount++
		}
	}
	rawAverage := catalog.NeutralCompatibility
	if pairCount > 0 {
		rawAverage = rawSum / float64(pairCount)
	}

	var totalScore float64
	var spoilers []string

	for _, tagA := range selected {
		var rowSum, rowWeight float64
		worstVal := 6.0
		worstPartner := ""

		for _, tagB := range selected {
			if tagA.ID == tagB.ID {
				continue
			}

			rawVal := matrix.Value(tagA.ID, tagB.ID)
			score := transform(rawVal)
			weight := 1.0

			if score < 0 {
				switch tagB.Category {
				case catalog.CategoryGenre:
					score *= genreConflictWeight * tagB.Percent
					weight = genreConflictWeight * tagB.Percent
				case catalog.CategorySetting:
					score *= settingConflictWeight
					weight = settingConflictWeight
				default:
					score *= defaultConflictWeight
					weight = defaultConflictWeight
				}
			} else if tagB.Category == catalog.CategoryGenre {
				score *= tagB.Percent
				weight = tagB.Percent
			}

			rowSum += score
			rowWeight += weight

			// Strict < keeps the first partner in selection order on ties.
			if rawVal < worstVal {
				worstVal = rawVal
				worstPartner = tagB.ID
			}
		}

		var rowAverage float64
		if rowWeight > 0 {
			rowAverage = rowSum / rowWeight
		}

		finalRowScore := rowAverage
		if worstVal <= hardConflictThreshold {
			partnerName := "another selected tag"
			if worstPartner != "" {
				partnerName = cat.Name(worstPartner)
			}
			spoilers = append(spoilers, fmt.Sprintf("%s conflicts with %s", cat.Name(tagA.ID), partnerName))
			finalRowScore = -1.0
		} else if transformed := transform(worstVal); transformed < rowAverage {
			// One bad pairing drags the row down to its own worst, no lower.
			finalRowScore = transformed
		}

		totalScore += finalRowScore * tagA.Percent
	}

	if totalScore >= 0 {
		totalScore *= gainScale
	} else {
		totalScore *= lossScale
	}

	return MatrixResult{
		TotalScore: totalScore,
		RawAverage: rawAverage,
		Spoilers:   spoilers,
	}
}

// DedupeSpoilers removes duplicate spoiler strings preserving first-seen
// order, for display.
func DedupeSpoilers(spoilers []string) []string {
	if len(spoilers) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(spoilers))
	out := make([]string, 0, len(spoilers))
	for _, s := range spoilers {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
