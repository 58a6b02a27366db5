package scoring

// RuleWeights scale each fundamental rule group's base deltas for a
// sector. A weight of zero silences the rule entirely.
type RuleWeights struct {
	PE     float64
	PEG    float64
	Debt   float64
	ROE    float64
	Growth float64
	Margin float64
}

// SectorProfile holds the valuation, debt, profitability and growth
// benchmark bands for one sector, plus the rule weights. Debt bands are
// debt-to-equity percentages; ROE, margin and growth bands are percents.
type SectorProfile struct {
	PELow      float64
	PEHigh     float64
	PEVeryHigh float64

	PEGGood       float64
	PEGAcceptable float64

	DebtLow      float64
	DebtModerate float64
	DebtHigh     float64

	ROEExcellent  float64
	ROEGood       float64
	ROEAcceptable float64

	GrowthStrong float64
	GrowthGood   float64

	MarginExcellent  float64
	MarginGood       float64
	MarginAcceptable float64

	Weights RuleWeights
}

// DefaultSector is the profile substituted for any unknown sector.
const DefaultSector = "Technology"

// ProfileRegistry resolves sector names to profiles. A lookup miss
// resolves to the DefaultSector profile, never to an error.
type ProfileRegistry struct {
	profiles map[string]SectorProfile
}

// NewProfileRegistry builds the registry with the built-in benchmark
// table covering the eleven GICS-style sectors.
func NewProfileRegistry() *ProfileRegistry {
	return &ProfileRegistry{profiles: sectorBenchmarks}
}

// Lookup returns the profile for sector, falling back to the default.
func (r *ProfileRegistry) Lookup(sector string) SectorProfile {
	if p, ok := r.profiles[sector]; ok {
		return p
	}
	return r.profiles[DefaultSector]
}

// Sectors lists all registered sector names.
func (r *ProfileRegistry) Sectors() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}

var sectorBenchmarks = map[string]SectorProfile{
	"Technology": {
		PELow: 20, PEHigh: 35, PEVeryHigh: 50,
		PEGGood: 1.5, PEGAcceptable: 2.5,
		DebtLow: 30, DebtModerate: 80, DebtHigh: 150,
		ROEExcellent: 18, ROEGood: 12, ROEAcceptable: 8,
		GrowthStrong: 12, GrowthGood: 6,
		MarginExcellent: 15, MarginGood: 8, MarginAcceptable: 3,
		Weights: RuleWeights{PE: 1.0, PEG: 2.5, Debt: 0.5, ROE: 2.0, Growth: 3.0, Margin: 3.0},
	},
	"Financial Services": {
		PELow: 12, PEHigh: 18, PEVeryHigh: 25,
		PEGGood: 1.0, PEGAcceptable: 1.8,
		DebtLow: 100, DebtModerate: 300, DebtHigh: 500,
		ROEExcellent: 15, ROEGood: 10, ROEAcceptable: 7,
		GrowthStrong: 8, GrowthGood: 4,
		MarginExcellent: 25, MarginGood: 15, MarginAcceptable: 10,
		Weights: RuleWeights{PE: 1.5, PEG: 0.5, Debt: 0.5, ROE: 4.0, Growth: 1.5, Margin: 4.0},
	},
	"Healthcare": {
		PELow: 15, PEHigh: 25, PEVeryHigh: 40,
		PEGGood: 1.2, PEGAcceptable: 2.0,
		DebtLow: 40, DebtModerate: 90, DebtHigh: 180,
		ROEExcellent: 20, ROEGood: 14, ROEAcceptable: 10,
		GrowthStrong: 10, GrowthGood: 5,
		MarginExcellent: 20, MarginGood: 12, MarginAcceptable: 6,
		Weights: RuleWeights{PE: 1.5, PEG: 1.5, Debt: 1.5, ROE: 2.5, Growth: 2.0, Margin: 3.0},
	},
	"Consumer Cyclical": {
		PELow: 12, PEHigh: 20, PEVeryHigh: 30,
		PEGGood: 1.0, PEGAcceptable: 1.8,
		DebtLow: 50, DebtModerate: 120, DebtHigh: 200,
		ROEExcellent: 18, ROEGood: 12, ROEAcceptable: 8,
		GrowthStrong: 10, GrowthGood: 5,
		MarginExcellent: 12, MarginGood: 7, MarginAcceptable: 3,
		Weights: RuleWeights{PE: 2.0, PEG: 1.5, Debt: 2.0, ROE: 2.0, Growth: 2.5, Margin: 2.0},
	},
	"Consumer Defensive": {
		PELow: 15, PEHigh: 22, PEVeryHigh: 30,
		PEGGood: 1.2, PEGAcceptable: 2.0,
		DebtLow: 50, DebtModerate: 100, DebtHigh: 180,
		ROEExcellent: 25, ROEGood: 18, ROEAcceptable: 12,
		GrowthStrong: 7, GrowthGood: 3,
		MarginExcellent: 15, MarginGood: 9, MarginAcceptable: 5,
		Weights: RuleWeights{PE: 1.5, PEG: 0.5, Debt: 2.0, ROE: 3.5, Growth: 1.0, Margin: 3.5},
	},
	"Energy": {
		PELow: 8, PEHigh: 15, PEVeryHigh: 25,
		PEGGood: 0.8, PEGAcceptable: 1.5,
		DebtLow: 40, DebtModerate: 100, DebtHigh: 180,
		ROEExcellent: 15, ROEGood: 10, ROEAcceptable: 5,
		GrowthStrong: 15, GrowthGood: 8,
		MarginExcellent: 15, MarginGood: 8, MarginAcceptable: 3,
		Weights: RuleWeights{PE: 1.0, PEG: 1.0, Debt: 2.5, ROE: 2.5, Growth: 2.0, Margin: 3.0},
	},
	"Industrials": {
		PELow: 12, PEHigh: 20, PEVeryHigh: 30,
		PEGGood: 1.2, PEGAcceptable: 2.0,
		DebtLow: 50, DebtModerate: 120, DebtHigh: 200,
		ROEExcellent: 16, ROEGood: 11, ROEAcceptable: 7,
		GrowthStrong: 10, GrowthGood: 5,
		MarginExcellent: 12, MarginGood: 7, MarginAcceptable: 3,
		Weights: RuleWeights{PE: 1.5, PEG: 1.5, Debt: 2.5, ROE: 2.5, Growth: 2.0, Margin: 2.0},
	},
	"Real Estate": {
		PELow: 15, PEHigh: 25, PEVeryHigh: 35,
		PEGGood: 1.5, PEGAcceptable: 2.5,
		DebtLow: 80, DebtModerate: 200, DebtHigh: 350,
		ROEExcellent: 12, ROEGood: 8, ROEAcceptable: 5,
		GrowthStrong: 8, GrowthGood: 4,
		MarginExcellent: 40, MarginGood: 25, MarginAcceptable: 15,
		Weights: RuleWeights{PE: 0.5, PEG: 0.5, Debt: 1.0, ROE: 2.5, Growth: 1.5, Margin: 6.0},
	},
	"Materials": {
		PELow: 10, PEHigh: 18, PEVeryHigh: 28,
		PEGGood: 1.0, PEGAcceptable: 1.8,
		DebtLow: 45, DebtModerate: 110, DebtHigh: 190,
		ROEExcellent: 14, ROEGood: 9, ROEAcceptable: 5,
		GrowthStrong: 12, GrowthGood: 6,
		MarginExcellent: 14, MarginGood: 8, MarginAcceptable: 3,
		Weights: RuleWeights{PE: 1.5, PEG: 1.0, Debt: 2.0, ROE: 2.5, Growth: 2.5, Margin: 2.5},
	},
	"Utilities": {
		PELow: 12, PEHigh: 20, PEVeryHigh: 28,
		PEGGood: 1.5, PEGAcceptable: 2.5,
		DebtLow: 100, DebtModerate: 250, DebtHigh: 400,
		ROEExcellent: 12, ROEGood: 8, ROEAcceptable: 5,
		GrowthStrong: 5, GrowthGood: 2,
		MarginExcellent: 20, MarginGood: 12, MarginAcceptable: 6,
		Weights: RuleWeights{PE: 1.5, PEG: 0.5, Debt: 1.5, ROE: 3.0, Growth: 0.5, Margin: 5.0},
	},
	"Communication Services": {
		PELow: 15, PEHigh: 25, PEVeryHigh: 40,
		PEGGood: 1.2, PEGAcceptable: 2.0,
		DebtLow: 50, DebtModerate: 130, DebtHigh: 220,
		ROEExcellent: 20, ROEGood: 13, ROEAcceptable: 8,
		GrowthStrong: 12, GrowthGood: 6,
		MarginExcellent: 18, MarginGood: 10, MarginAcceptable: 4,
		Weights: RuleWeights{PE: 1.5, PEG: 2.0, Debt: 1.5, ROE: 2.5, Growth: 2.5, Margin: 2.0},
	},
}
