package history

// Impact is a fixed catalog entry for a known historical impact event.
type Impact struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Location           string  `json:"location"`
	AgeYears           int64   `json:"age_years"`
	AgeDisplay         string  `json:"age_display"`
	CraterDiameterKm   float64 `json:"crater_diameter_km"`
	EnergyMt           float64 `json:"energy_mt"`
	EnergyDisplay      string  `json:"energy_display"`
	AsteroidDiameterKm float64 `json:"asteroid_diameter_km"`
	Description        string  `json:"description"`
	Effects            string  `json:"effects"`
	Emoji              string  `json:"emoji"`
}

// catalog holds famous impacts plus the Hiroshima bomb as an energy
// reference. Read-only after init; safe for concurrent access.
var catalog = []Impact{
	{
		ID:                 "chicxulub",
		Name:               "Chicxulub Impact",
		Location:           "Yucatan Peninsula, Mexico",
		AgeYears:           66_000_000,
		AgeDisplay:         "66 million years ago",
		CraterDiameterKm:   150,
		EnergyMt:           100_000_000_000,
		EnergyDisplay:      "100 Teratons",
		AsteroidDiameterKm: 10,
		Description:        "Mass extinction event that killed the dinosaurs",
		Effects:            "Global winter, 75% species extinction, mega-tsunamis",
		Emoji:              "🦕",
	},
	{
		ID:                 "vredefort",
		Name:               "Vredefort Crater",
		Location:           "South Africa",
		AgeYears:           2_023_000_000,
		AgeDisplay:         "2 billion years ago",
		CraterDiameterKm:   300,
		EnergyMt:           500_000_000_000,
		EnergyDisplay:      "500 Teratons",
		AsteroidDiameterKm: 15,
		Description:        "Largest verified impact crater on Earth",
		Effects:            "Massive global devastation",
		Emoji:              "💫",
	},
	{
		ID:                 "sudbury",
		Name:               "Sudbury Basin",
		Location:           "Ontario, Canada",
		AgeYears:           1_849_000_000,
		AgeDisplay:         "1.85 billion years ago",
		CraterDiameterKm:   130,
		EnergyMt:           60_000_000_000,
		EnergyDisplay:      "60 Teratons",
		AsteroidDiameterKm: 10,
		Description:        "One of the largest impact structures on Earth",
		Effects:            "Created major nickel deposits",
		Emoji:              "⛏️",
	},
	{
		ID:                 "popigai",
		Name:               "Popigai Crater",
		Location:           "Siberia, Russia",
		AgeYears:           35_700_000,
		AgeDisplay:         "35.7 million years ago",
		CraterDiameterKm:   100,
		EnergyMt:           30_000_000_000,
		EnergyDisplay:      "30 Teratons",
		AsteroidDiameterKm: 8,
		Description:        "Fourth largest verified crater, contains impact diamonds",
		Effects:            "Massive regional destruction, diamond formation",
		Emoji:              "💎",
	},
	{
		ID:                 "barringer",
		Name:               "Barringer Crater",
		Location:           "Arizona, USA",
		AgeYears:           50_000,
		AgeDisplay:         "50,000 years ago",
		CraterDiameterKm:   1.2,
		EnergyMt:           10,
		EnergyDisplay:      "10 Megatons",
		AsteroidDiameterKm: 0.05,
		Description:        "Best preserved impact crater on Earth",
		Effects:            "175m deep crater, everything within 4km destroyed",
		Emoji:              "🏜️",
	},
	{
		ID:                 "tunguska",
		Name:               "Tunguska Event",
		Location:           "Siberia, Russia",
		AgeYears:           116, // 1908
		AgeDisplay:         "1908",
		CraterDiameterKm:   0, // airburst
		EnergyMt:           15,
		EnergyDisplay:      "10-15 Megatons",
		AsteroidDiameterKm: 0.06,
		Description:        "Largest impact event in recorded history (airburst)",
		Effects:            "2,150 km² of forest flattened, no crater",
		Emoji:              "💥",
	},
	{
		ID:                 "chelyabinsk",
		Name:               "Chelyabinsk Meteor",
		Location:           "Chelyabinsk, Russia",
		AgeYears:           13, // 2013
		AgeDisplay:         "2013",
		CraterDiameterKm:   0, // airburst
		EnergyMt:           0.5,
		EnergyDisplay:      "500 Kilotons",
		AsteroidDiameterKm: 0.02,
		Description:        "Largest undetected asteroid to enter atmosphere",
		Effects:            "1,500 injuries, mostly from broken glass",
		Emoji:              "🌠",
	},
	{
		ID:                 "hiroshima",
		Name:               "Hiroshima Bomb (Reference)",
		Location:           "Hiroshima, Japan",
		AgeYears:           81, // 1945
		AgeDisplay:         "1945",
		CraterDiameterKm:   0,
		EnergyMt:           0.015,
		EnergyDisplay:      "15 Kilotons",
		AsteroidDiameterKm: 0,
		Description:        "Nuclear weapon reference for energy comparison",
		Effects:            "Destroyed 13 km² area",
		Emoji:              "☢️",
	},
}

// All returns the full historical impact catalog in its fixed order.
func All() []Impact {
	out := make([]Impact, len(catalog))
	copy(out, catalog)
	return out
}
