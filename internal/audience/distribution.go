package audience

import "math"

const (
	distributionBase   = 1000
	weekOneMultiplier  = 2
	weekTwoMultiplier  = 1
	weeklyDecayRate    = 0.8
	distributionWeeks  = 8
	roundUpUntilIndex  = 4
)

// Distribution estimates the weekly screening demand for a movie from its
// commercial score (0-10) and the player's owned screening capacity. Weeks
// 1-4 round up, weeks 5-8 round down: slight overestimation early, slight
// underestimation in the tail.
func Distribution(commercialScore float64, availableScreenings int) [distributionWeeks]int {
	w1 := math.Max(0, commercialScore*weekOneMultiplier*distributionBase-float64(availableScreenings))
	w2 := math.Max(0, commercialScore*weekTwoMultiplier*distributionBase-float64(availableScreenings))

	values := [distributionWeeks]float64{w1, w2}
	decayBase := w2
	for i := 2; i < distributionWeeks; i++ {
		decayBase *= weeklyDecayRate
		values[i] = decayBase
	}

	var weeks [distributionWeeks]int
	for i, v := range values {
		if i < roundUpUntilIndex {
			weeks[i] = int(math.Ceil(v))
		} else {
			weeks[i] = int(math.Floor(v))
		}
	}
	return weeks
}
