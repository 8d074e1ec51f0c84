package carbon

// FoodCalculator estimates CO2 emitted by meal portions.
type FoodCalculator struct{}

// NewFoodCalculator creates a new food calculator.
func NewFoodCalculator() *FoodCalculator {
	return &FoodCalculator{}
}

// Activity returns ActivityFood.
func (c *FoodCalculator) Activity() Activity { return ActivityFood }

// Compute calculates emissions = portions × factor[meal] with a car_km comparison.
func (c *FoodCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityFood, "portions", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityFood, in.Category)
	if err != nil {
		return Result{}, err
	}

	emissions := in.Quantity * f.CO2PerUnit

	result := newResult(ActivityFood, ImpactEmissions, emissions, in.Quantity, f)
	result.Comparisons = []Comparison{carKmComparison(emissions)}
	return result, nil
}

// Emissions is a convenience method that takes the portion count and meal type.
func (c *FoodCalculator) Emissions(portions float64, meal Category) (Result, error) {
	return c.Compute(Input{Quantity: portions, Category: meal})
}
