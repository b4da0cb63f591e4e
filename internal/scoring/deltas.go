package scoring

import (
	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

// Delta is the change in display scores from hypothetically adding one tag
// to the current selection.
type Delta struct {
	Art float64 `json:"art_delta"`
	Com float64 `json:"com_delta"`
}

// ScoreDeltas simulates adding each unselected catalog tag to the selection
// and reports the resulting display-score deltas against the baseline.
// Already-selected tags are omitted from the result.
func ScoreDeltas(current []types.TagInput, cat *catalog.Catalog, matrix *catalog.Matrix, pairs *catalog.GenrePairs) map[string]Delta {
	baseline := Score(current, cat, matrix, pairs)

	selected := make(map[string]struct{}, len(current))
	for _, t := range current {
		selected[t.ID] = struct{}{}
	}

	deltas := make(map[string]Delta)
	for _, tag := range cat.All() {
		if _, ok := selected[tag.ID]; ok {
			continue
		}
		hypothetical := append(append([]types.TagInput(nil), current...), types.TagInput{
			ID:       tag.ID,
			Percent:  1.0,
			Category: tag.Category,
		})
		result := Score(hypothetical, cat, matrix, pairs)
		deltas[tag.ID] = Delta{
			Art: result.DisplayArt - baseline.DisplayArt,
			Com: result.DisplayCom - baseline.DisplayCom,
		}
	}
	return deltas
}
