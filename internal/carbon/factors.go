package carbon

// Factor tables, in kg CO2 per activity unit.
//
// Sources: ISPRA / EEA national averages for transport and electricity,
// Poore & Nemecek (2018) for food, CONAI for recycling avoided emissions.
// Labels are the Italian display names used by the calculator screens.

// transitFactors are per passenger-km emissions of public transport.
var transitFactors = []EmissionFactor{
	{Key: CategoryBus, Label: "autobus", CO2PerUnit: 0.089, Unit: UnitKm},
	{Key: CategoryMetro, Label: "metropolitana", CO2PerUnit: 0.033, Unit: UnitKm},
	{Key: CategoryTrain, Label: "treno", CO2PerUnit: 0.041, Unit: UnitKm},
}

// energyFactors are electricity generation intensities per kWh.
var energyFactors = []EmissionFactor{
	{Key: CategoryGridMix, Label: "mix energetico nazionale", CO2PerUnit: 0.4, Unit: UnitKWh},
	{Key: CategoryCoal, Label: "carbone", CO2PerUnit: 0.9, Unit: UnitKWh},
	{Key: CategoryGas, Label: "gas naturale", CO2PerUnit: 0.5, Unit: UnitKWh},
	{Key: CategoryRenewable, Label: "rinnovabili", CO2PerUnit: 0.05, Unit: UnitKWh},
	{Key: CategoryNuclear, Label: "nucleare", CO2PerUnit: 0.06, Unit: UnitKWh},
}

// flightFactors are per passenger-km emissions by range tier.
var flightFactors = []EmissionFactor{
	{
		Key: CategoryShortHaul, Label: "corto raggio (<1500 km)", CO2PerUnit: 0.18, Unit: UnitKm,
		Equivalent: StaticEquivalent{Label: "autobus per 850 km", DistanceKm: 850},
	},
	{
		Key: CategoryMediumHaul, Label: "medio raggio (1500-4000 km)", CO2PerUnit: 0.15, Unit: UnitKm,
		Equivalent: StaticEquivalent{Label: "auto per 650 km", DistanceKm: 650},
	},
	{
		Key: CategoryLongHaul, Label: "lungo raggio (>4000 km)", CO2PerUnit: 0.12, Unit: UnitKm,
		Equivalent: StaticEquivalent{Label: "auto per 520 km", DistanceKm: 520},
	},
}

// foodFactors are emissions per portion by meal type.
var foodFactors = []EmissionFactor{
	{Key: CategoryBeef, Label: "bistecca di manzo", CO2PerUnit: 7.7, Unit: UnitPortion},
	{Key: CategoryPork, Label: "carne di maiale", CO2PerUnit: 3.5, Unit: UnitPortion},
	{Key: CategoryChicken, Label: "pollo", CO2PerUnit: 1.36, Unit: UnitPortion},
	{Key: CategoryFish, Label: "pesce", CO2PerUnit: 2.1, Unit: UnitPortion},
	{Key: CategoryVegetarian, Label: "pasto vegetariano", CO2PerUnit: 0.9, Unit: UnitPortion},
	{Key: CategoryVegan, Label: "pasto vegano", CO2PerUnit: 0.3, Unit: UnitPortion},
}

// recyclingFactors are avoided emissions per kg of recycled material.
var recyclingFactors = []EmissionFactor{
	{Key: CategoryPaper, Label: "carta e cartone", CO2PerUnit: 3.3, Unit: UnitKgWaste, TreesPerUnit: 0.015},
	{Key: CategoryPlastic, Label: "plastica", CO2PerUnit: 2.0, Unit: UnitKgWaste, TreesPerUnit: 0.01},
	{Key: CategoryGlass, Label: "vetro", CO2PerUnit: 0.5, Unit: UnitKgWaste, TreesPerUnit: 0.003},
	{Key: CategoryMetal, Label: "metalli", CO2PerUnit: 6.0, Unit: UnitKgWaste, TreesPerUnit: 0.025},
	{Key: CategoryOrganic, Label: "organico (compost)", CO2PerUnit: 0.8, Unit: UnitKgWaste, TreesPerUnit: 0.004},
}

// shoppingFactors are spend-based emissions per euro.
var shoppingFactors = []EmissionFactor{
	{Key: CategoryClothing, Label: "abbigliamento e scarpe", CO2PerUnit: 0.25, Unit: UnitEuro},
	{Key: CategoryElectronics, Label: "elettronica e tecnologia", CO2PerUnit: 0.35, Unit: UnitEuro},
	{Key: CategoryFurniture, Label: "mobili e arredamento", CO2PerUnit: 0.15, Unit: UnitEuro},
	{Key: CategoryBeauty, Label: "cosmetici e cura persona", CO2PerUnit: 0.20, Unit: UnitEuro},
	{Key: CategoryBooks, Label: "libri e media", CO2PerUnit: 0.10, Unit: UnitEuro},
	{Key: CategoryGeneral, Label: "acquisti generali", CO2PerUnit: 0.18, Unit: UnitEuro},
}

// plasticFactors are avoided emissions per single-use item not bought.
var plasticFactors = []EmissionFactor{
	{Key: CategoryBottle, Label: "bottiglie di plastica", CO2PerUnit: 0.82, Unit: UnitItem, ItemUnit: "bottiglia"},
	{Key: CategoryBag, Label: "sacchetti di plastica", CO2PerUnit: 0.033, Unit: UnitItem, ItemUnit: "sacchetto"},
	{Key: CategoryCup, Label: "bicchieri di plastica", CO2PerUnit: 0.056, Unit: UnitItem, ItemUnit: "bicchiere"},
	{Key: CategoryStraw, Label: "cannucce di plastica", CO2PerUnit: 0.005, Unit: UnitItem, ItemUnit: "cannuccia"},
}

// Single-factor activities.
var (
	bikeFactor = EmissionFactor{
		Label: "auto privata evitata", CO2PerUnit: CarBaselineKgPerKm, Unit: UnitKm,
	}
	remoteWorkFactor = EmissionFactor{
		Label: "pendolarismo in auto evitato", CO2PerUnit: CarBaselineKgPerKm * RoundTripMultiplier, Unit: UnitCommuteKm,
	}
	dietFactor = EmissionFactor{
		Label: "pasto senza carne", CO2PerUnit: MeatFreeDaySavingsKg, Unit: UnitDay,
	}
)

// factorTables maps the activities with sub-types to their tables.
var factorTables = map[Activity][]EmissionFactor{
	ActivityTransit:   transitFactors,
	ActivityEnergy:    energyFactors,
	ActivityFlight:    flightFactors,
	ActivityFood:      foodFactors,
	ActivityRecycling: recyclingFactors,
	ActivityShopping:  shoppingFactors,
	ActivityPlastic:   plasticFactors,
}

// baseFactors holds the factor of activities without sub-types.
var baseFactors = map[Activity]EmissionFactor{
	ActivityBike:       bikeFactor,
	ActivityRemoteWork: remoteWorkFactor,
	ActivityDiet:       dietFactor,
}

// HasCategories reports whether the activity requires a category.
func HasCategories(activity Activity) bool {
	_, ok := factorTables[activity]
	return ok
}

// Factors returns a copy of the activity's factor table in display order.
// Single-factor activities return their one factor with an empty Key.
// Unknown activities return nil.
func Factors(activity Activity) []EmissionFactor {
	if table, ok := factorTables[activity]; ok {
		out := make([]EmissionFactor, len(table))
		copy(out, table)
		return out
	}
	if f, ok := baseFactors[activity]; ok {
		return []EmissionFactor{f}
	}
	return nil
}

// Categories returns the valid category tags of the activity in display order.
func Categories(activity Activity) []Category {
	table := factorTables[activity]
	out := make([]Category, 0, len(table))
	for _, f := range table {
		out = append(out, f.Key)
	}
	return out
}

// LookupFactor returns the factor for key in the activity's table.
// Returns (EmissionFactor{}, false) if the activity has no such category.
func LookupFactor(activity Activity, key Category) (EmissionFactor, bool) {
	for _, f := range factorTables[activity] {
		if f.Key == key {
			return f, true
		}
	}
	return EmissionFactor{}, false
}

// ClassifyFlightRange suggests the range tier for a flight distance:
// short below 1500 km, medium up to 4000 km, long beyond.
func ClassifyFlightRange(km float64) Category {
	switch {
	case km < ShortHaulMaxKm:
		return CategoryShortHaul
	case km <= MediumHaulMaxKm:
		return CategoryMediumHaul
	default:
		return CategoryLongHaul
	}
}
