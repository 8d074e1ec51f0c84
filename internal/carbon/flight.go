package carbon

// FlightCalculator estimates per-passenger CO2 emitted by a flight.
type FlightCalculator struct{}

// NewFlightCalculator creates a new flight calculator.
func NewFlightCalculator() *FlightCalculator {
	return &FlightCalculator{}
}

// Activity returns ActivityFlight.
func (c *FlightCalculator) Activity() Activity { return ActivityFlight }

// Compute calculates emissions = km × factor[range].
//
// The comparison attached to the result is the fixed equivalent of the range
// tier; it does not depend on the distance flown.
func (c *FlightCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityFlight, "distance", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityFlight, in.Category)
	if err != nil {
		return Result{}, err
	}

	emissions := in.Quantity * f.CO2PerUnit

	result := newResult(ActivityFlight, ImpactEmissions, emissions, in.Quantity, f)
	if f.HasEquivalent() {
		result.Comparisons = []Comparison{staticComparison(f.Equivalent)}
	}
	return result, nil
}

// Emissions is a convenience method that takes the flight distance and range tier.
func (c *FlightCalculator) Emissions(km float64, flightRange Category) (Result, error) {
	return c.Compute(Input{Quantity: km, Category: flightRange})
}
