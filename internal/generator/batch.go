package generator

import (
	"sort"

	"github.com/google/uuid"

	"github.com/tinseltown/scriptdoctor/internal/scoring"
)

const (
	// Output slots per generation request.
	batchSlots = 5

	// Independent construction+optimization attempts per slot; a slot stops
	// early once an attempt meets the target.
	maxAttemptsPerSlot = 50
)

// Generate produces a batch of script candidates. Each of the five slots
// keeps the best of up to fifty attempts, stopping early once an attempt
// reaches the target average compatibility with a positive movie score. The
// batch is sorted by movie score, then average compatibility, descending.
//
// An unsatisfiable constraint (more locked scoring elements than the target
// allows) returns a *ConstraintError with no search performed.
func (o *Optimizer) Generate(c Constraints) ([]Candidate, error) {
	locked := scoring.ScoringElementCount(c.Fixed)
	if locked > c.TargetElements {
		return nil, &ConstraintError{Locked: locked, Allowed: c.TargetElements}
	}

	batch := make([]Candidate, 0, batchSlots)
	for slot := 0; slot < batchSlots; slot++ {
		var best Candidate
		haveBest := false

		for attempt := 0; attempt < maxAttemptsPerSlot; attempt++ {
			candidate := o.runOnce(c)
			if !haveBest || candidate.Stats.AvgComp > best.Stats.AvgComp {
				best = candidate
				haveBest = true
			}
			if best.Stats.AvgComp >= c.TargetAvgComp && best.Stats.MovieScore > 0 {
				break
			}
		}

		best.UniqueID = uuid.NewString()
		batch = append(batch, best)
	}

	sort.SliceStable(batch, func(i, j int) bool {
		if batch[i].Stats.MovieScore != batch[j].Stats.MovieScore {
			return batch[i].Stats.MovieScore > batch[j].Stats.MovieScore
		}
		return batch[i].Stats.AvgComp > batch[j].Stats.AvgComp
	})

	return batch, nil
}
