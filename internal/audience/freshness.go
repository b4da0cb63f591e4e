package audience

// Tag freshness reflects how many movies released a given tag in the last
// 500 in-game days. Lower is fresher; overused tags depress interest.

// FreshnessWindowDays is the release window freshness counts cover.
const FreshnessWindowDays = 500

const (
	freshMax = 3
	staleMax = 5
)

// FreshnessStatus tiers a tag's recent usage.
type FreshnessStatus string

const (
	FreshnessFresh  FreshnessStatus = "fresh"
	FreshnessStale  FreshnessStatus = "stale"
	FreshnessRotten FreshnessStatus = "rotten"
)

// StatusForCount classifies a usage count: 0-3 fresh, 4-5 stale, 6+ rotten.
func StatusForCount(count int) FreshnessStatus {
	switch {
	case count <= freshMax:
		return FreshnessFresh
	case count <= staleMax:
		return FreshnessStale
	default:
		return FreshnessRotten
	}
}

// TagFreshness is one tag's usage count and tier.
type TagFreshness struct {
	Count  int             `json:"count"`
	Status FreshnessStatus `json:"status"`
}

// ClassifyFreshness tiers every tag in a usage-count map. Counting releases
// from save data is the caller's concern; this only classifies.
func ClassifyFreshness(counts map[string]int) map[string]TagFreshness {
	if len(counts) == 0 {
		return nil
	}
	out := make(map[string]TagFreshness, len(counts))
	for id, n := range counts {
		out[id] = TagFreshness{Count: n, Status: StatusForCount(n)}
	}
	return out
}
