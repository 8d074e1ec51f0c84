package carbon

// DietCalculator estimates CO2 saved by meat-free days, assuming one main
// meal per day is replaced.
type DietCalculator struct{}

// NewDietCalculator creates a new meat-free diet calculator.
func NewDietCalculator() *DietCalculator {
	return &DietCalculator{}
}

// Activity returns ActivityDiet.
func (c *DietCalculator) Activity() Activity { return ActivityDiet }

// Compute calculates savings = days × 5.7. Input.Category is ignored.
func (c *DietCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityDiet, "days", in.Quantity); err != nil {
		return Result{}, err
	}

	savings := in.Quantity * MeatFreeDaySavingsKg

	return newResult(ActivityDiet, ImpactSavings, savings, in.Quantity, dietFactor), nil
}

// Savings is a convenience method that takes the number of meat-free days.
func (c *DietCalculator) Savings(days float64) (Result, error) {
	return c.Compute(Input{Quantity: days})
}
