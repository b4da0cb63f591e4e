package generator

import (
	"fmt"
	"math"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/scoring"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

const (
	// Chance a generated script starts from a recognized genre pairing
	// rather than a single genre.
	genrePairChance = 0.3

	// Strict-improvement single-swap hill climb budget per candidate.
	hillClimbIterations = 200
)

var mandatoryScoring = []catalog.Category{
	catalog.CategoryProtagonist,
	catalog.CategoryAntagonist,
	catalog.CategoryFinale,
}

var fillerCategories = []catalog.Category{
	catalog.CategorySupportingCharacter,
	catalog.CategoryThemeEvent,
}

// Source is the randomness the optimizer consumes. *math/rand.Rand
// satisfies it; tests inject a seeded instance.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Constraints bound a generation run. ExcludedIDs are forbidden outright;
// OwnedIDs, when non-empty, restrict picks to tags the player owns.
type Constraints struct {
	TargetAvgComp  float64
	TargetElements int
	Fixed          []types.TagInput
	ExcludedIDs    map[string]struct{}
	OwnedIDs       map[string]struct{}
}

// ConstraintError reports an unsatisfiable generation request: more scoring
// elements locked than the target allows.
type ConstraintError struct {
	Locked  int
	Allowed int
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%d scoring elements are locked but the target movie score only allows for %d: raise the target or unlock elements", e.Locked, e.Allowed)
}

// ElementCountForScore maps a target movie score onto the scoring-element
// count needed to reach it. Scores below 6 need only the 4 mandatory slots.
func ElementCountForScore(targetScore int) int {
	switch {
	case targetScore >= 9:
		return 9
	case targetScore == 8:
		return 8
	case targetScore == 7:
		return 7
	case targetScore == 6:
		return 5
	default:
		return 4
	}
}

// Optimizer constructs and hill-climbs script candidates against the
// catalog's compatibility data.
type Optimizer struct {
	cat    *catalog.Catalog
	matrix *catalog.Matrix
	pairs  *catalog.GenrePairs
	rng    Source
}

// New creates an optimizer. The random source is injected so production can
// run unseeded while tests stay deterministic.
func New(cat *catalog.Catalog, matrix *catalog.Matrix, pairs *catalog.GenrePairs, rng Source) *Optimizer {
	return &Optimizer{cat: cat, matrix: matrix, pairs: pairs, rng: rng}
}

// randomTagByCategory picks a uniformly random available tag of a category:
// not already selected, not excluded, and owned when an owned set applies.
func (o *Optimizer) randomTagByCategory(cat catalog.Category, current []types.TagInput, c Constraints) (types.TagInput, bool) {
	used := make(map[string]struct{}, len(current))
	for _, t := range current {
		used[t.ID] = struct{}{}
	}

	var available []catalog.Tag
	for _, t := range o.cat.ByCategory(cat) {
		if _, ok := used[t.ID]; ok {
			continue
		}
		if _, ok := c.ExcludedIDs[t.ID]; ok {
			continue
		}
		if len(c.OwnedIDs) > 0 {
			if _, ok := c.OwnedIDs[t.ID]; !ok {
				continue
			}
		}
		available = append(available, t)
	}
	if len(available) == 0 {
		return types.TagInput{}, false
	}

	picked := available[o.rng.Intn(len(available))]
	return types.TagInput{ID: picked.ID, Percent: 1.0, Category: cat}, true
}

// compatibleGenrePartners returns the pairable genres for a source genre,
// minus exclusions and unowned tags.
func (o *Optimizer) compatibleGenrePartners(sourceID string, c Constraints) []string {
	var out []string
	for _, id := range o.pairs.Partners(sourceID) {
		if _, ok := c.ExcludedIDs[id]; ok {
			continue
		}
		if len(c.OwnedIDs) > 0 {
			if _, ok := c.OwnedIDs[id]; !ok {
				continue
			}
		}
		out = append(out, id)
	}
	return out
}

// buildCandidate assembles an initial tag set: fixed tags, a genre (possibly
// a 50/50 pair), a setting, the mandatory scoring categories, then filler
// until the target count is met or a category starves.
func (o *Optimizer) buildCandidate(c Constraints) []types.TagInput {
	current := append([]types.TagInput(nil), c.Fixed...)

	present := make(map[catalog.Category]struct{}, len(current))
	hasGenre := false
	for _, t := range current {
		present[t.Category] = struct{}{}
		if t.Category == catalog.CategoryGenre {
			hasGenre = true
		}
	}

	if !hasGenre {
		if genre, ok := o.randomTagByCategory(catalog.CategoryGenre, current, c); ok {
			partnerID := ""
			if o.rng.Float64() < genrePairChance {
				if partners := o.compatibleGenrePartners(genre.ID, c); len(partners) > 0 {
					partnerID = partners[o.rng.Intn(len(partners))]
				}
			}
			if partnerID != "" {
				genre.Percent = 0.5
				current = append(current, genre,
					types.TagInput{ID: partnerID, Percent: 0.5, Category: catalog.CategoryGenre})
			} else {
				current = append(current, genre)
			}
		}
	}

	if _, ok := present[catalog.CategorySetting]; !ok {
		if setting, ok := o.randomTagByCategory(catalog.CategorySetting, current, c); ok {
			current = append(current, setting)
			present[catalog.CategorySetting] = struct{}{}
		}
	}

	for _, mc := range mandatoryScoring {
		if _, ok := present[mc]; ok {
			continue
		}
		if scoring.ScoringElementCount(current) >= c.TargetElements {
			continue
		}
		if tag, ok := o.randomTagByCategory(mc, current, c); ok {
			current = append(current, tag)
			present[mc] = struct{}{}
		}
	}

	for scoring.ScoringElementCount(current) < c.TargetElements {
		fillCat := fillerCategories[o.rng.Intn(len(fillerCategories))]
		tag, ok := o.randomTagByCategory(fillCat, current, c)
		if !ok {
			// Starved: accept the smaller candidate.
			break
		}
		current = append(current, tag)
	}

	return current
}

// optimize hill-climbs a candidate by random single swaps of non-fixed,
// non-genre tags, keeping only strict raw-average improvements. Greedy by
// design; local optima are accepted.
func (o *Optimizer) optimize(initial []types.TagInput, c Constraints) ([]types.TagInput, scoring.MatrixResult) {
	fixedIDs := make(map[string]struct{}, len(c.Fixed))
	for _, t := range c.Fixed {
		fixedIDs[t.ID] = struct{}{}
	}

	bestSet := append([]types.TagInput(nil), initial...)
	bestStats := scoring.ScoreCompatibility(bestSet, o.cat, o.matrix)

	for i := 0; i < hillClimbIterations; i++ {
		var mutable []int
		for idx, t := range bestSet {
			if _, ok := fixedIDs[t.ID]; ok {
				continue
			}
			if t.Category == catalog.CategoryGenre {
				continue
			}
			mutable = append(mutable, idx)
		}
		if len(mutable) == 0 {
			break
		}

		swapIdx := mutable[o.rng.Intn(len(mutable))]
		candidate := append([]types.TagInput(nil), bestSet...)
		newTag, ok := o.randomTagByCategory(candidate[swapIdx].Category, candidate, c)
		if !ok {
			continue
		}
		candidate[swapIdx] = newTag

		newStats := scoring.ScoreCompatibility(candidate, o.cat, o.matrix)
		if newStats.RawAverage > bestStats.RawAverage {
			bestSet = candidate
			bestStats = newStats
		}
	}

	return bestSet, bestStats
}

// CandidateStats are the derived numbers attached to a generated script.
type CandidateStats struct {
	AvgComp          float64 `json:"avg_comp"`
	SynergySum       float64 `json:"synergy_sum"`
	MaxScriptQuality int     `json:"max_script_quality"`
	MovieScore       float64 `json:"movie_score"`
	TagCap           int     `json:"tag_cap"`
	NGCount          int     `json:"ng_count"`
}

// Candidate is one generated script: its tag set and derived stats.
type Candidate struct {
	Tags     []types.TagInput `json:"tags"`
	Stats    CandidateStats   `json:"stats"`
	UniqueID string           `json:"unique_id"`
}

// runOnce builds and optimizes a single candidate, then derives its final
// stats: caps, bonuses, and the capped best-axis movie score.
func (o *Optimizer) runOnce(c Constraints) Candidate {
	bestSet, bestStats := o.optimize(o.buildCandidate(c), c)

	ngCount := scoring.ScoringElementCount(bestSet)
	tagCap := scoring.TagCap(ngCount)

	bonuses := scoring.ComputeBonuses(bestSet, o.cat, o.pairs)
	rawCom := (bestStats.TotalScore + bonuses.Com) * scoring.MaxGameScore
	rawArt := (bestStats.TotalScore + bonuses.Art) * scoring.MaxGameScore
	maxPotential := math.Max(0, math.Max(rawCom, rawArt))
	movieScore := math.Min(float64(tagCap), maxPotential)

	return Candidate{
		Tags: bestSet,
		Stats: CandidateStats{
			AvgComp:          bestStats.RawAverage,
			SynergySum:       bestStats.TotalScore,
			MaxScriptQuality: scoring.MaxScriptQuality(ngCount),
			MovieScore:       math.Round(movieScore*10) / 10,
			TagCap:           tagCap,
			NGCount:          ngCount,
		},
	}
}
