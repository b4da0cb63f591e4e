package catalog

import "sort"

// Category is the closed set of narrative tag categories used by the game.
type Category string

const (
	CategoryGenre               Category = "Genre"
	CategorySetting             Category = "Setting"
	CategoryProtagonist         Category = "Protagonist"
	CategoryAntagonist          Category = "Antagonist"
	CategorySupportingCharacter Category = "Supporting Character"
	CategoryThemeEvent          Category = "Theme & Event"
	CategoryFinale              Category = "Finale"
)

// Categories lists every category in selector order.
var Categories = []Category{
	CategoryGenre,
	CategorySetting,
	CategoryProtagonist,
	CategoryAntagonist,
	CategorySupportingCharacter,
	CategoryThemeEvent,
	CategoryFinale,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGenre, CategorySetting, CategoryProtagonist, CategoryAntagonist,
		CategorySupportingCharacter, CategoryThemeEvent, CategoryFinale:
		return true
	}
	return false
}

// Scoring reports whether tags of this category count toward the scoring
// element total. Genre and Setting structure the script but do not raise its
// achievable cap.
func (c Category) Scoring() bool {
	return c != CategoryGenre && c != CategorySetting
}

// Demographic segment ids, matching the weight keys in the tag data.
const (
	DemoYoungMen   = "YM"
	DemoYoungWomen = "YF"
	DemoBoys       = "TM"
	DemoGirls      = "TF"
	DemoMen        = "AM"
	DemoWomen      = "AF"
)

// DemographicIDs lists the six segment ids in table order.
var DemographicIDs = []string{DemoYoungMen, DemoYoungWomen, DemoBoys, DemoGirls, DemoMen, DemoWomen}

// Tag is an immutable catalog entry. Weights map demographic ids to
// non-negative affinity values.
type Tag struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category Category           `json:"category"`
	Art      float64            `json:"art"`
	Com      float64            `json:"com"`
	Weights  map[string]float64 `json:"weights"`
}

// Catalog provides read-only access to the tag data loaded at startup.
type Catalog struct {
	tags       map[string]Tag
	byCategory map[Category][]Tag
	whitelist  map[string]struct{}
}

// New builds a catalog from tag records and the starter-profile whitelist.
// Per-category slices are sorted by id so random picks over them are
// reproducible under a seeded source.
func New(tags []Tag, starterWhitelist []string) *Catalog {
	c := &Catalog{
		tags:       make(map[string]Tag, len(tags)),
		byCategory: make(map[Category][]Tag),
		whitelist:  make(map[string]struct{}, len(starterWhitelist)),
	}
	for _, t := range tags {
		c.tags[t.ID] = t
		c.byCategory[t.Category] = append(c.byCategory[t.Category], t)
	}
	for cat := range c.byCategory {
		sort.Slice(c.byCategory[cat], func(i, j int) bool {
			return c.byCategory[cat][i].ID < c.byCategory[cat][j].ID
		})
	}
	for _, id := range starterWhitelist {
		c.whitelist[id] = struct{}{}
	}
	return c
}

// Get returns the tag with the given id.
func (c *Catalog) Get(id string) (Tag, bool) {
	t, ok := c.tags[id]
	return t, ok
}

// Name resolves a tag id to its display name, prettifying the raw id when the
// tag is unknown or unnamed.
func (c *Catalog) Name(id string) string {
	if t, ok := c.tags[id]; ok && t.Name != "" {
		return t.Name
	}
	return BeautifyTagName(id)
}

// ByCategory returns the tags in a category, sorted by id. The returned slice
// is shared and must not be mutated.
func (c *Catalog) ByCategory(cat Category) []Tag {
	return c.byCategory[cat]
}

// All returns every tag sorted by id.
func (c *Catalog) All() []Tag {
	out := make([]Tag, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of tags in the catalog.
func (c *Catalog) Len() int {
	return len(c.tags)
}

// StarterExclusions returns the ids of every tag a starter studio has not
// unlocked, i.e. the complement of the whitelist. Used to seed the
// generator's excluded set for starter profiles.
func (c *Catalog) StarterExclusions() []string {
	var out []string
	for _, t := range c.All() {
		if _, ok := c.whitelist[t.ID]; !ok {
			out = append(out, t.ID)
		}
	}
	return out
}
