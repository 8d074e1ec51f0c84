package carbon

// EnergyCalculator estimates CO2 emitted by electricity consumption.
type EnergyCalculator struct{}

// NewEnergyCalculator creates a new energy calculator.
func NewEnergyCalculator() *EnergyCalculator {
	return &EnergyCalculator{}
}

// Activity returns ActivityEnergy.
func (c *EnergyCalculator) Activity() Activity { return ActivityEnergy }

// Compute calculates emissions = kWh × factor[source].
func (c *EnergyCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityEnergy, "consumption", in.Quantity); err != nil {
		return Result{}, err
	}
	f, err := requireFactor(ActivityEnergy, in.Category)
	if err != nil {
		return Result{}, err
	}

	emissions := in.Quantity * f.CO2PerUnit

	return newResult(ActivityEnergy, ImpactEmissions, emissions, in.Quantity, f), nil
}

// Emissions is a convenience method that takes kWh consumed and the energy source.
func (c *EnergyCalculator) Emissions(kWh float64, source Category) (Result, error) {
	return c.Compute(Input{Quantity: kWh, Category: source})
}
