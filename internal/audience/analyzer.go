package audience

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tinseltown/scriptdoctor/internal/catalog"
	"github.com/tinseltown/scriptdoctor/internal/types"
)

const (
	// Interest tier thresholds over normalized demographic scores.
	ThresholdGood = 0.67
	ThresholdBad  = 0.33

	// Multiplier spreading normalized affinity shares back toward 0-1.
	releaseSpread = 3.0

	// Satisfaction vs quality mix in the final utility.
	audienceWeight = 0.4

	// A segment this far below the interest floor is written off entirely.
	disinterestCutoff = 0.1
)

// Quality mix over [interest, commercial, artistic].
var scoreWeights = [3]float64{0.25, 0.5, 0.25}

// Lean classifies which axis a movie skews toward.
type Lean int

const (
	LeanBalanced   Lean = 0
	LeanArtistic   Lean = 1
	LeanCommercial Lean = 2
)

func (l Lean) String() string {
	switch l {
	case LeanArtistic:
		return "Artistic"
	case LeanCommercial:
		return "Commercial"
	default:
		return "Balanced"
	}
}

// DemographicGrade is one segment's interest score and utility.
type DemographicGrade struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Score   float64 `json:"score"`
	Utility float64 `json:"utility"`
}

// RankedAgent is an advertiser scored against the movie's audiences.
type RankedAgent struct {
	AdAgent
	Score int `json:"score"`
}

// RankedHoliday is a release window scored against the primary audiences.
type RankedHoliday struct {
	Name       string `json:"name"`
	TotalScore int    `json:"total_score"`
	Context    string `json:"context"`
}

// Campaign is the recommended marketing schedule in weeks.
type Campaign struct {
	Pre     int `json:"pre_duration"`
	Release int `json:"release_duration"`
	Post    int `json:"post_duration"`
	Total   int `json:"total_weeks"`
}

// Analysis bundles the full audience breakdown for a movie.
type Analysis struct {
	TargetAudiences     []DemographicGrade `json:"target_audiences"`
	HighInterestIDs     []string           `json:"high_interest_ids"`
	ModerateInterestIDs []string           `json:"moderate_interest_ids"`
	Lean                Lean               `json:"movie_lean"`
	LeanText            string             `json:"lean_text"`
	Agents              []RankedAgent      `json:"valid_agents"`
	Holidays            []RankedHoliday    `json:"viable_holidays"`
	Campaign            Campaign           `json:"campaign"`
	ThresholdGood       float64            `json:"threshold_good"`
	ThresholdBad        float64            `json:"threshold_bad"`
}

// ErrEmptySelection is returned when analysis is requested with no tags.
var ErrEmptySelection = errors.New("audience analysis requires at least one selected tag")

type interestTier int

const (
	interestLow interestTier = iota
	interestModerate
	interestHigh
)

// tierFor buckets a normalized interest score: high at or above the good
// threshold (0.67 itself is high), moderate strictly above the bad threshold
// (0.33 itself is low), low otherwise. Low segments are not targets.
func tierFor(score float64) interestTier {
	switch {
	case score >= ThresholdGood:
		return interestHigh
	case score > ThresholdBad:
		return interestModerate
	default:
		return interestLow
	}
}

// interestScores aggregates tag affinities per demographic, lifts the floor
// to 1.0 while preserving spread, then converts to clamped 0-1 shares.
func interestScores(selected []types.TagInput, cat *catalog.Catalog) map[string]float64 {
	affinity := make(map[string]float64, len(catalog.DemographicIDs))
	for _, id := range catalog.DemographicIDs {
		affinity[id] = 0
	}
	for _, item := range selected {
		tag, ok := cat.Get(item.ID)
		if !ok {
			continue
		}
		for _, demo := range catalog.DemographicIDs {
			if w, ok := tag.Weights[demo]; ok {
				affinity[demo] += w * item.Percent
			}
		}
	}

	minVal := math.MaxFloat64
	for _, v := range affinity {
		if v < minVal {
			minVal = v
		}
	}
	if minVal < 1.0 {
		lift := 1.0 - minVal
		for demo := range affinity {
			affinity[demo] += lift
		}
	}

	var total float64
	for _, v := range affinity {
		total += v
	}

	scores := make(map[string]float64, len(affinity))
	for demo, v := range affinity {
		if total == 0 {
			scores[demo] = 0
			continue
		}
		normalized := (v / total) * releaseSpread
		scores[demo] = math.Min(1.0, math.Max(0, normalized))
	}
	return scores
}

// Analyze maps a selection plus final Commercial/Artistic scores (0-10) onto
// the six demographic segments and derives advertiser, holiday and campaign
// recommendations.
func Analyze(selected []types.TagInput, com, art float64, cat *catalog.Catalog) (Analysis, error) {
	if len(selected) == 0 {
		return Analysis{}, ErrEmptySelection
	}

	scores := interestScores(selected, cat)

	normArt := art / 10.0
	normCom := com / 10.0
	skew := normArt - normCom

	var satArt, satBase, satCom float64
	if skew > 0 {
		satArt = 1.0
		satBase = 1.0 - skew
		satCom = 1.0 - skew
	} else {
		satCom = 1.0
		satBase = 1.0 - math.Abs(skew)
		satArt = 1.0 - math.Abs(skew)
	}

	grades := make([]DemographicGrade, 0, len(Demographics))
	for _, d := range Demographics {
		score := scores[d.ID]

		totalW := d.BaseW + d.ArtW + d.ComW
		satisfaction := (satBase*d.BaseW + satArt*d.ArtW + satCom*d.ComW) / totalW
		quality := score*scoreWeights[0] + normCom*scoreWeights[1] + normArt*scoreWeights[2]
		utility := satisfaction*audienceWeight + quality*(1-audienceWeight)

		if score <= disinterestCutoff {
			utility = 0
		}

		grades = append(grades, DemographicGrade{ID: d.ID, Name: d.Name, Score: score, Utility: utility})
	}

	var targets []DemographicGrade
	var highIDs, moderateIDs []string
	for _, g := range grades {
		switch tierFor(g.Score) {
		case interestHigh:
			targets = append(targets, g)
			highIDs = append(highIDs, g.ID)
		case interestModerate:
			targets = append(targets, g)
			moderateIDs = append(moderateIDs, g.ID)
		}
	}
	sort.SliceStable(targets, func(i, j int) bool { return targets[i].Score > targets[j].Score })

	lean := LeanBalanced
	if art > com+0.1 {
		lean = LeanArtistic
	} else if com > art+0.1 {
		lean = LeanCommercial
	}

	agents := rankAgents(targets, lean)
	holidays := rankHolidays(highIDs, moderateIDs)

	campaign := Campaign{Pre: 6, Release: 4, Post: 0, Total: 10}
	if com >= 9.0 {
		campaign.Post = 4
		campaign.Total = 14
	}

	return Analysis{
		TargetAudiences:     targets,
		HighInterestIDs:     highIDs,
		ModerateInterestIDs: moderateIDs,
		Lean:                lean,
		LeanText:            lean.String(),
		Agents:              agents,
		Holidays:            holidays,
		Campaign:            campaign,
		ThresholdGood:       ThresholdGood,
		ThresholdBad:        ThresholdBad,
	}, nil
}

// rankAgents scores advertisers against the target audiences: 5 points per
// matched segment plus the agent's level, minus 10 for a specialization
// mismatched with the movie's lean. Non-positive scores drop out; the top 4
// survive.
func rankAgents(targets []DemographicGrade, lean Lean) []RankedAgent {
	if len(targets) == 0 {
		return nil
	}
	targetIDs := make([]string, len(targets))
	for i, t := range targets {
		targetIDs[i] = t.ID
	}

	var ranked []RankedAgent
	for _, agent := range AdAgents {
		matches := 0
		for _, id := range targetIDs {
			for _, t := range agent.Targets {
				if t == id {
					matches++
					break
				}
			}
		}
		if matches == 0 {
			continue
		}

		score := 5 * matches
		// Specialist agents lose points when the movie leans the other way;
		// the type and lean encodings line up (1=Art, 2=Commercial).
		if agent.Type != AgentUniversal && int(agent.Type) != int(lean) {
			score -= 10
		}
		score += agent.Level

		if score > 0 {
			ranked = append(ranked, RankedAgent{AdAgent: agent, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Level != ranked[j].Level {
			return ranked[i].Level > ranked[j].Level
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > 4 {
		ranked = ranked[:4]
	}
	return ranked
}

// rankHolidays sums each holiday's bonuses over the primary targets (high
// interest, or moderate when no segment is high) and keeps positive totals
// sorted descending, each with a human-readable breakdown.
func rankHolidays(highIDs, moderateIDs []string) []RankedHoliday {
	primary := highIDs
	if len(primary) == 0 {
		primary = moderateIDs
	}

	var viable []RankedHoliday
	for _, h := range Holidays {
		total := 0
		type part struct {
			val  int
			text string
		}
		var parts []part
		for _, id := range primary {
			bonus := h.Bonuses[id]
			if bonus > 0 {
				total += bonus
				parts = append(parts, part{val: bonus, text: fmt.Sprintf("%d%% Bonus Towards %s", bonus, demographicName(id))})
			}
		}
		if total <= 0 {
			continue
		}
		sort.SliceStable(parts, func(i, j int) bool { return parts[i].val > parts[j].val })
		texts := make([]string, len(parts))
		for i, p := range parts {
			texts[i] = p.text
		}
		context := "No significant bonus."
		if len(texts) > 0 {
			context = strings.Join(texts, ", ")
		}
		viable = append(viable, RankedHoliday{Name: h.Name, TotalScore: total, Context: context})
	}

	sort.SliceStable(viable, func(i, j int) bool { return viable[i].TotalScore > viable[j].TotalScore })
	return viable
}
