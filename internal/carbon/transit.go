package carbon

// TransitCalculator estimates CO2 saved by taking public transport instead
// of a private car.
type TransitCalculator struct{}

// NewTransitCalculator creates a new public transit calculator.
func NewTransitCalculator() *TransitCalculator {
	return &TransitCalculator{}
}

// Activity returns ActivityTransit.
func (c *TransitCalculator) Activity() Activity { return ActivityTransit }

// Compute calculates the difference between driving and the transit mode:
//
//	savings = max(0, km × 0.21 − km × factor[mode])
//
// Savings are floored at zero.
func (c *TransitCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityTransit, "distance", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityTransit, in.Category)
	if err != nil {
		return Result{}, err
	}

	carEmissions := in.Quantity * CarBaselineKgPerKm
	transitEmissions := in.Quantity * f.CO2PerUnit
	savings := nonNegative(carEmissions - transitEmissions)

	return newResult(ActivityTransit, ImpactSavings, savings, in.Quantity, f), nil
}

// Savings is a convenience method that takes the distance and transit mode.
func (c *TransitCalculator) Savings(km float64, mode Category) (Result, error) {
	return c.Compute(Input{Quantity: km, Category: mode})
}
