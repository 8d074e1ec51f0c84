package carbon

// BikeCalculator estimates CO2 saved by cycling instead of driving.
// Cycling is treated as zero-emission, so the whole car trip is avoided.
type BikeCalculator struct{}

// NewBikeCalculator creates a new bike calculator.
func NewBikeCalculator() *BikeCalculator {
	return &BikeCalculator{}
}

// Activity returns ActivityBike.
func (c *BikeCalculator) Activity() Activity { return ActivityBike }

// Compute calculates savings = km × 0.21. Input.Category is ignored.
func (c *BikeCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityBike, "distance", in.Quantity); err != nil {
		return Result{}, err
	}

	savings := in.Quantity * CarBaselineKgPerKm

	return newResult(ActivityBike, ImpactSavings, savings, in.Quantity, bikeFactor), nil
}

// Savings is a convenience method that takes the distance cycled in km.
func (c *BikeCalculator) Savings(km float64) (Result, error) {
	return c.Compute(Input{Quantity: km})
}
