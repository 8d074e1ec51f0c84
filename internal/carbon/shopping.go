package carbon

// ShoppingCalculator estimates CO2 emitted by spending, using spend-based factors.
type ShoppingCalculator struct{}

// NewShoppingCalculator creates a new shopping calculator.
func NewShoppingCalculator() *ShoppingCalculator {
	return &ShoppingCalculator{}
}

// Activity returns ActivityShopping.
func (c *ShoppingCalculator) Activity() Activity { return ActivityShopping }

// Compute calculates emissions = euros × factor[category] with a car_km comparison.
func (c *ShoppingCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityShopping, "amount", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityShopping, in.Category)
	if err != nil {
		return Result{}, err
	}

	emissions := in.Quantity * f.CO2PerUnit

	result := newResult(ActivityShopping, ImpactEmissions, emissions, in.Quantity, f)
	result.Comparisons = []Comparison{carKmComparison(emissions)}
	return result, nil
}

// Emissions is a convenience method that takes the euros spent and the category.
func (c *ShoppingCalculator) Emissions(euros float64, category Category) (Result, error) {
	return c.Compute(Input{Quantity: euros, Category: category})
}
