package audience

import "github.com/tinseltown/scriptdoctor/internal/catalog"

// Demographic is one of the game's six audience segments with its static
// satisfaction weights. The decay triple ships with the game data but is
// unused by the release-window math.
type Demographic struct {
	ID    string
	Name  string
	BaseW float64
	ArtW  float64
	ComW  float64
	BaseD float64
	ArtD  float64
	ComD  float64
}

// Demographics lists the six segments in table order.
var Demographics = []Demographic{
	{ID: catalog.DemoYoungMen, Name: "Young Men", BaseW: 0.300, ArtW: 0.400, ComW: 0.250, BaseD: 0.100, ArtD: 0.050, ComD: 0.050},
	{ID: catalog.DemoYoungWomen, Name: "Young Women", BaseW: 0.300, ArtW: 0.300, ComW: 0.250, BaseD: 0.100, ArtD: 0.050, ComD: 0.050},
	{ID: catalog.DemoBoys, Name: "Boys", BaseW: 0.150, ArtW: 0.050, ComW: 0.200, BaseD: 0.100, ArtD: 0.050, ComD: 0.050},
	{ID: catalog.DemoGirls, Name: "Girls", BaseW: 0.150, ArtW: 0.050, ComW: 0.200, BaseD: 0.100, ArtD: 0.050, ComD: 0.050},
	{ID: catalog.DemoMen, Name: "Men", BaseW: 0.050, ArtW: 0.100, ComW: 0.100, BaseD: 0.100, ArtD: 0.050, ComD: 0.050},
	{ID: catalog.DemoWomen, Name: "Women", BaseW: 0.050, ArtW: 0.100, ComW: 0.100, BaseD: 0.100, ArtD: 0.050, ComD: 0.050},
}

func demographicName(id string) string {
	for _, d := range Demographics {
		if d.ID == id {
			return d.Name
		}
	}
	return id
}

// AgentType classifies an advertiser's specialization.
type AgentType int

const (
	AgentUniversal  AgentType = 0
	AgentArt        AgentType = 1
	AgentCommercial AgentType = 2
)

// AdAgent is an advertising agency with its target segments and tier level.
type AdAgent struct {
	Name    string    `json:"name"`
	Targets []string  `json:"targets"`
	Type    AgentType `json:"type"`
	Level   int       `json:"level"`
}

// AdAgents is the fixed in-game advertiser roster.
var AdAgents = []AdAgent{
	{Name: "NBG", Targets: []string{"AM", "AF"}, Type: AgentUniversal, Level: 3},
	{Name: "Ross&Ross Bros.", Targets: []string{"AM", "AF"}, Type: AgentUniversal, Level: 2},
	{Name: "Vien Pascal", Targets: []string{"TM", "TF", "AM", "AF"}, Type: AgentArt, Level: 2},
	{Name: "Spark", Targets: []string{"YM", "YF", "AM", "AF"}, Type: AgentCommercial, Level: 3},
	{Name: "Nate Sparrow Press", Targets: []string{"YM", "YF", "AM", "AF"}, Type: AgentUniversal, Level: 3},
	{Name: "Velvet Gloss", Targets: []string{"TF", "YF", "AF"}, Type: AgentCommercial, Level: 3},
	{Name: "Pierre Zola Company", Targets: []string{"TM", "YM", "AM"}, Type: AgentUniversal, Level: 2},
	{Name: "Spice Mice", Targets: []string{"TM", "TF", "YM", "YF"}, Type: AgentCommercial, Level: 2},
}

// Holiday is a release window with per-demographic attendance bonuses in
// percent.
type Holiday struct {
	Name    string         `json:"name"`
	Bonuses map[string]int `json:"bonuses"`
}

// Holidays is the fixed in-game release calendar.
var Holidays = []Holiday{
	{Name: "Valentine's Day", Bonuses: map[string]int{"TM": 7, "TF": 15, "YM": 12, "YF": 30, "AM": 15, "AF": 0}},
	{Name: "Halloween", Bonuses: map[string]int{"TM": 22, "TF": 22, "YM": 18, "YF": 18, "AM": 15, "AF": 15}},
	{Name: "Thanksgiving", Bonuses: map[string]int{"TM": 7, "TF": 7, "YM": 15, "YF": 15, "AM": 22, "AF": 22}},
	{Name: "Independence Day", Bonuses: map[string]int{"TM": 9, "TF": 0, "YM": 13, "YF": 5, "AM": 18, "AF": 7}},
	{Name: "Christmas", Bonuses: map[string]int{"TM": 15, "TF": 15, "YM": 15, "YF": 15, "AM": 10, "AF": 10}},
	{Name: "Memorial Day", Bonuses: map[string]int{"TM": 9, "TF": 0, "YM": 16, "YF": 5, "AM": 18, "AF": 7}},
}
