package carbon

// CarKmEquivalent converts a CO2 mass in kg to the km an average car would
// drive to emit it.
func CarKmEquivalent(kg float64) float64 {
	return kg / CarBaselineKgPerKm
}

// carKmComparison builds the "km by car" comparison of a result value.
func carKmComparison(kg float64) Comparison {
	return Comparison{
		Kind:        ComparisonCarKm,
		Value:       CarKmEquivalent(kg),
		TemplateKey: TemplateCarKm,
	}
}

// staticComparison copies the fixed equivalent of a factor.
func staticComparison(eq StaticEquivalent) Comparison {
	return Comparison{
		Kind:        ComparisonStatic,
		Value:       eq.DistanceKm,
		TemplateKey: TemplateStatic,
		Label:       eq.Label,
	}
}
