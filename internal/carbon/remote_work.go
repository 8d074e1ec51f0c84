package carbon

// RemoteWorkCalculator estimates CO2 saved by working from home instead of
// driving to the office.
type RemoteWorkCalculator struct{}

// NewRemoteWorkCalculator creates a new remote work calculator.
func NewRemoteWorkCalculator() *RemoteWorkCalculator {
	return &RemoteWorkCalculator{}
}

// Activity returns ActivityRemoteWork.
func (c *RemoteWorkCalculator) Activity() Activity { return ActivityRemoteWork }

// Compute calculates the avoided round-trip commute:
//
//	savings = days × distance_one_way × 2 × 0.21
//
// Input.Quantity is the number of days, Input.DistanceKm the one-way distance.
// The result carries the total km not driven as a distance_km comparison.
func (c *RemoteWorkCalculator) Compute(in Input) (Result, error) {
	if err := validateQuantity(ActivityRemoteWork, "days", in.Quantity); err != nil {
		return Result{}, err
	}
	if err := validateQuantity(ActivityRemoteWork, "distance", in.DistanceKm); err != nil {
		return Result{}, err
	}

	totalKm := in.Quantity * in.DistanceKm * RoundTripMultiplier
	savings := totalKm * CarBaselineKgPerKm

	result := newResult(ActivityRemoteWork, ImpactSavings, savings, in.Quantity, remoteWorkFactor)
	result.FactorKgPerUnit = in.DistanceKm * RoundTripMultiplier * CarBaselineKgPerKm
	result.Comparisons = []Comparison{{
		Kind:        ComparisonDistanceKm,
		Value:       totalKm,
		TemplateKey: TemplateDistanceKm,
	}}
	return result, nil
}

// Savings is a convenience method that takes days worked from home and the
// one-way commute distance in km.
func (c *RemoteWorkCalculator) Savings(days, distanceOneWayKm float64) (Result, error) {
	return c.Compute(Input{Quantity: days, DistanceKm: distanceOneWayKm})
}
