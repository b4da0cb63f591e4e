package catalog

import "strings"

var namePrefixes = []string{
	"PROTAGONIST_", "ANTAGONIST_", "SUPPORTINGCHARACTER_",
	"THEME_", "EVENTS_", "FINALE_", "EVENT_",
}

// BeautifyTagName turns a raw tag id like PROTAGONIST_DARING_ADVENTURER into
// "Daring Adventurer". Localized names take precedence upstream; this is the
// fallback for ids missing from the name data.
func BeautifyTagName(rawID string) string {
	name := rawID
	for _, p := range namePrefixes {
		if strings.HasPrefix(name, p) {
			name = strings.TrimPrefix(name, p)
			break
		}
	}
	words := strings.Split(strings.ToLower(strings.ReplaceAll(name, "_", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// SearchEntry is one row of the prebuilt search index.
type SearchEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// SearchIndex is an explicit, caller-owned index over the catalog. Built once
// and passed around rather than hiding a memoized global.
type SearchIndex struct {
	entries []SearchEntry
}

// BuildSearchIndex creates a search index over every catalog tag.
func BuildSearchIndex(c *Catalog) *SearchIndex {
	tags := c.All()
	entries := make([]SearchEntry, 0, len(tags))
	for _, t := range tags {
		name := t.Name
		if name == "" {
			name = BeautifyTagName(t.ID)
		}
		entries = append(entries, SearchEntry{ID: t.ID, Name: name, Category: t.Category})
	}
	return &SearchIndex{entries: entries}
}

// Search returns entries whose name or category contains the query,
// case-insensitively.
func (idx *SearchIndex) Search(query string) []SearchEntry {
	q := strings.ToLower(query)
	var out []SearchEntry
	for _, e := range idx.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(string(e.Category)), q) {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns the full index contents.
func (idx *SearchIndex) Entries() []SearchEntry {
	return idx.entries
}
