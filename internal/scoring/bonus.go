package scoring

import (
	"sort"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

const (
	// A genre pairing only counts when the secondary genre carries real
	// weight; otherwise the top genre's own values apply.
	pairMinCombinedPercent  = 0.7
	pairMinSecondaryPercent = 0.35
)

// Bonuses is the additive art/commercial bonus from tag base values and
// genre pairings.
type Bonuses struct {
	Art float64 `json:"art"`
	Com float64 `json:"com"`
}

// selectedGenres returns the genre inputs sorted by percent descending with
// id ascending as the tie-break, so equal splits resolve deterministically.
func selectedGenres(selected []types.TagInput) []types.TagInput {
	var genres []types.TagInput
	for _, t := range selected {
		if t.Category == catalog.CategoryGenre {
			genres = append(genres, t)
		}
	}
	sort.Slice(genres, func(i, j int) bool {
		if genres[i].Percent != genres[j].Percent {
			return genres[i].Percent > genres[j].Percent
		}
		return genres[i].ID < genres[j].ID
	})
	return genres
}

// genrePairBonus looks up the pairing bonus for the top two genres. It
// returns false when fewer than two genres are selected, when the secondary
// genre is under-weighted, or when the pair is absent from the table.
func genrePairBonus(genres []types.TagInput, pairs *catalog.GenrePairs) (catalog.PairBonus, bool) {
	if len(genres) < 2 {
		return catalog.PairBonus{}, false
	}
	g1, g2 := genres[0], genres[1]
	if g1.Percent+g2.Percent < pairMinCombinedPercent || g2.Percent < pairMinSecondaryPercent {
		return catalog.PairBonus{}, false
	}
	return pairs.Lookup(g1.ID, g2.ID)
}

// ComputeBonuses sums the selection's art/commercial base bonuses. Genres
// contribute either a recognized pairing bonus or the top genre's own
// values; every non-genre tag contributes its base values unconditionally.
func ComputeBonuses(selected []types.TagInput, cat *catalog.Catalog, pairs *catalog.GenrePairs) Bonuses {
	var b Bonuses

	genres := selectedGenres(selected)
	if pair, ok := genrePairBonus(genres, pairs); ok {
		b.Art += pair.Art
		b.Com += pair.Com
	} else if len(genres) > 0 {
		if top, ok := cat.Get(genres[0].ID); ok {
			b.Art += top.Art
			b.Com += top.Com
		}
	}

	for _, t := range selected {
		if t.Category == catalog.CategoryGenre {
			continue
		}
		if data, ok := cat.Get(t.ID); ok {
			b.Art += data.Art
			b.Com += data.Com
		}
	}

	return b
}
