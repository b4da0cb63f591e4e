package catalog

import "sort"

// NeutralCompatibility is the midpoint of the 1.0-5.0 compatibility range.
// Pairs absent from the matrix score as neutral.
const NeutralCompatibility = 3.0

// pairKey is a canonical unordered tag pair: lo < hi lexicographically.
// Keying on the ordered pair avoids direction-dependent double lookups.
type pairKey struct {
	lo, hi string
}

func keyFor(a, b string) pairKey {
	if a < b {
		return pairKey{lo: a, hi: b}
	}
	return pairKey{lo: b, hi: a}
}

// Matrix holds sparse pairwise compatibility values.
type Matrix struct {
	values map[pairKey]float64
}

// NewMatrix builds a matrix from a nested id->id->value mapping, the shape
// the game data ships in. Both directions collapse onto the canonical key;
// if a pair appears in both, the later entry wins.
func NewMatrix(raw map[string]map[string]float64) *Matrix {
	m := &Matrix{values: make(map[pairKey]float64)}
	for a, row := range raw {
		for b, v := range row {
			m.values[keyFor(a, b)] = v
		}
	}
	return m
}

// Value returns the compatibility between two tags, neutral when the pair is
// not in the matrix.
func (m *Matrix) Value(a, b string) float64 {
	if v, ok := m.values[keyFor(a, b)]; ok {
		return v
	}
	return NeutralCompatibility
}

// Len returns the number of known pairs.
func (m *Matrix) Len() int {
	return len(m.values)
}

// PairBonus is the art/commercial bonus a recognized genre pairing grants in
// place of the genres' individual base values.
type PairBonus struct {
	Com float64
	Art float64
}

// GenrePairs holds the sparse genre pairing table plus a partner index for
// the generator's second-genre picks.
type GenrePairs struct {
	bonuses  map[pairKey]PairBonus
	partners map[string][]string
}

// NewGenrePairs builds the table from a nested id->id->bonus mapping.
func NewGenrePairs(raw map[string]map[string]PairBonus) *GenrePairs {
	g := &GenrePairs{
		bonuses:  make(map[pairKey]PairBonus),
		partners: make(map[string][]string),
	}
	seen := make(map[pairKey]struct{})
	for a, row := range raw {
		for b, bonus := range row {
			key := keyFor(a, b)
			g.bonuses[key] = bonus
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				g.partners[a] = append(g.partners[a], b)
				g.partners[b] = append(g.partners[b], a)
			}
		}
	}
	for id := range g.partners {
		sort.Strings(g.partners[id])
	}
	return g
}

// Lookup returns the bonus for a genre pair in either order.
func (g *GenrePairs) Lookup(a, b string) (PairBonus, bool) {
	bonus, ok := g.bonuses[keyFor(a, b)]
	return bonus, ok
}

// Partners returns every genre known to pair with the given one, sorted by
// id. The returned slice is shared and must not be mutated.
func (g *GenrePairs) Partners(id string) []string {
	return g.partners[id]
}

// Len returns the number of known genre pairs.
func (g *GenrePairs) Len() int {
	return len(g.bonuses)
}
