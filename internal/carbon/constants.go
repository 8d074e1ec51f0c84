// Package carbon provides CO2 savings and emission estimates for everyday
// activities using fixed, published per-unit emission factors.
package carbon

const (
	// CarBaselineKgPerKm is the emission of an average private car in kg CO2 per km.
	// It is the reference for every "km by car" comparison and for the
	// activities whose savings are measured against driving.
	CarBaselineKgPerKm = 0.21

	// RoundTripMultiplier turns a one-way commute distance into a round trip.
	RoundTripMultiplier = 2.0

	// MeatFreeDaySavingsKg is the CO2 saved by replacing one meat main meal
	// (~6.6 kg) with a vegetable/legume meal (~0.9 kg).
	MeatFreeDaySavingsKg = 5.7

	// UnitKg is the unit of every Result value.
	UnitKg = "kg"
)

// Flight range boundaries in km used by ClassifyFlightRange.
const (
	ShortHaulMaxKm  = 1500.0
	MediumHaulMaxKm = 4000.0
)

// Units of the activity quantities.
const (
	UnitKm      = "km"
	UnitDay     = "day"
	UnitKWh     = "kWh"
	UnitPortion = "portion"
	UnitKgWaste = "kg"
	UnitEuro    = "€"
	UnitItem    = "item"

	// UnitCommuteKm is the unit of the remote work factor: one km of one-way
	// commute distance for one day, driven twice.
	UnitCommuteKm = "km (one-way, per day)"
)
