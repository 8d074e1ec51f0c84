package carbon

// RecyclingCalculator estimates CO2 avoided by recycling material instead of
// producing it new.
type RecyclingCalculator struct{}

// NewRecyclingCalculator creates a new recycling calculator.
func NewRecyclingCalculator() *RecyclingCalculator {
	return &RecyclingCalculator{}
}

// Activity returns ActivityRecycling.
func (c *RecyclingCalculator) Activity() Activity { return ActivityRecycling }

// Compute calculates savings = kg × factor[material] and attaches two comparisons:
//   - trees: kg × treeFactor[material]
//   - car_km: savings / 0.21
func (c *RecyclingCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityRecycling, "weight", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityRecycling, in.Category)
	if err != nil {
		return Result{}, err
	}

	savings := in.Quantity * f.CO2PerUnit
	trees := in.Quantity * f.TreesPerUnit

	result := newResult(ActivityRecycling, ImpactSavings, savings, in.Quantity, f)
	result.Comparisons = []Comparison{
		{Kind: ComparisonTrees, Value: trees, TemplateKey: TemplateTrees},
		carKmComparison(savings),
	}
	return result, nil
}

// Savings is a convenience method that takes kg recycled and the material.
func (c *RecyclingCalculator) Savings(kg float64, material Category) (Result, error) {
	return c.Compute(Input{Quantity: kg, Category: material})
}
