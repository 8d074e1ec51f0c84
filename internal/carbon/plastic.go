package carbon

// PlasticCalculator estimates CO2 avoided by not using single-use plastic items.
type PlasticCalculator struct{}

// NewPlasticCalculator creates a new single-use plastic calculator.
func NewPlasticCalculator() *PlasticCalculator {
	return &PlasticCalculator{}
}

// Activity returns ActivityPlastic.
func (c *PlasticCalculator) Activity() Activity { return ActivityPlastic }

// Compute calculates savings = quantity × factor[item].
func (c *PlasticCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityPlastic, "quantity", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityPlastic, in.Category)
	if err != nil {
		return Result{}, err
	}

	savings := in.Quantity * f.CO2PerUnit

	return newResult(ActivityPlastic, ImpactSavings, savings, in.Quantity, f), nil
}

// Savings is a convenience method that takes the item count and item type.
func (c *PlasticCalculator) Savings(quantity float64, item Category) (Result, error) {
	return c.Compute(Input{Quantity: quantity, Category: item})
}
