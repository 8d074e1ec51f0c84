package carbon

// Calculator computes the CO2 result of one activity type.
//
// Compute is a pure function of its input: identical inputs give identical
// results. It returns an *InvalidInputError when the quantity is not
// positive or a required category is missing or unknown.
type Calculator interface {
	// Activity returns the activity the calculator handles.
	Activity() Activity

	// Compute calculates the result for the given input.
	Compute(in Input) (Result, error)
}

// calculators holds one calculator per activity.
var calculators = map[Activity]Calculator{
	ActivityBike:       NewBikeCalculator(),
	ActivityTransit:    NewTransitCalculator(),
	ActivityRemoteWork: NewRemoteWorkCalculator(),
	ActivityDiet:       NewDietCalculator(),
	ActivityPlastic:    NewPlasticCalculator(),
	ActivityEnergy:     NewEnergyCalculator(),
	ActivityFlight:     NewFlightCalculator(),
	ActivityRecycling:  NewRecyclingCalculator(),
	ActivityShopping:   NewShoppingCalculator(),
	ActivityFood:       NewFoodCalculator(),
}

// Calculators returns one calculator per activity in menu order.
func Calculators() []Calculator {
	out := make([]Calculator, 0, len(activityOrder))
	for _, a := range activityOrder {
		out = append(out, calculators[a])
	}
	return out
}

// ForActivity returns the calculator of an activity.
func ForActivity(activity Activity) (Calculator, bool) {
	c, ok := calculators[activity]
	return c, ok
}

// Compute runs the calculator of the given activity.
func Compute(activity Activity, in Input) (Result, error) {
	c, ok := calculators[activity]
	if !ok {
		return Result{}, invalidInput(activity, "activity", "unknown activity")
	}
	return c.Compute(in)
}

// newResult fills the fields shared by every calculator.
func newResult(activity Activity, impact Impact, value, quantity float64, f EmissionFactor) Result {
	return Result{
		Activity:        activity,
		Impact:          impact,
		Value:           value,
		Unit:            UnitKg,
		Quantity:        quantity,
		BasisKey:        f.Key,
		BasisLabel:      f.Label,
		FactorKgPerUnit: f.CO2PerUnit,
	}
}
