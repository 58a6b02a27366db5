package scoring

// Zone is one of the five coarse geographic regions used to scale
// sector benchmarks.
type Zone string

const (
	ZoneUnitedStates Zone = "United States"
	ZoneEurope       Zone = "Europe"
	ZoneChina        Zone = "China"
	ZoneJapan        Zone = "Japan"
	ZoneEmerging     Zone = "Emerging Markets"
)

// GeoAdjustment scales valuation, debt and growth thresholds for a zone.
type GeoAdjustment struct {
	PEFactor     float64
	DebtFactor   float64
	GrowthFactor float64
}

var zoneAdjustments = map[Zone]GeoAdjustment{
	ZoneUnitedStates: {PEFactor: 1.0, DebtFactor: 1.0, GrowthFactor: 1.0},
	ZoneChina:        {PEFactor: 0.8, DebtFactor: 1.3, GrowthFactor: 1.3},
	ZoneEurope:       {PEFactor: 0.85, DebtFactor: 1.1, GrowthFactor: 0.9},
	ZoneJapan:        {PEFactor: 0.75, DebtFactor: 1.2, GrowthFactor: 0.8},
	ZoneEmerging:     {PEFactor: 0.7, DebtFactor: 1.4, GrowthFactor: 1.4},
}

var countryZones = map[string]Zone{
	"United States": ZoneUnitedStates,
	"USA":           ZoneUnitedStates,

	"France":         ZoneEurope,
	"Germany":        ZoneEurope,
	"United Kingdom": ZoneEurope,
	"Italy":          ZoneEurope,
	"Spain":          ZoneEurope,
	"Netherlands":    ZoneEurope,
	"Belgium":        ZoneEurope,
	"Switzerland":    ZoneEurope,
	"Sweden":         ZoneEurope,
	"Norway":         ZoneEurope,

	"China":     ZoneChina,
	"Hong Kong": ZoneChina,

	"Japan": ZoneJapan,

	"India":        ZoneEmerging,
	"Brazil":       ZoneEmerging,
	"Mexico":       ZoneEmerging,
	"South Africa": ZoneEmerging,
	"Indonesia":    ZoneEmerging,
	"Turkey":       ZoneEmerging,
	"Thailand":     ZoneEmerging,
	"Malaysia":     ZoneEmerging,
	"Philippines":  ZoneEmerging,
}

// CountryZone maps a country to its geographic zone. Unmapped countries
// classify as United States.
func CountryZone(country string) Zone {
	if z, ok := countryZones[country]; ok {
		return z
	}
	return ZoneUnitedStates
}

// ZoneAdjustment returns the adjustment factors for a zone, defaulting
// to the United States factors for anything unregistered.
func ZoneAdjustment(zone Zone) GeoAdjustment {
	if adj, ok := zoneAdjustments[zone]; ok {
		return adj
	}
	return zoneAdjustments[ZoneUnitedStates]
}
