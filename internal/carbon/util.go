package carbon

import (
	"math"
	"strconv"
)

// validateQuantity rejects zero, negative, NaN and infinite quantities.
func validateQuantity(activity Activity, field string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return invalidInput(activity, field, "must be a finite number")
	case v <= 0:
		return invalidInput(activity, field, "must be greater than zero, got "+formatFloat(v))
	}
	return nil
}

// requireFactor resolves the category of a multi-factor activity.
func requireFactor(activity Activity, key Category) (EmissionFactor, error) {
	if key == "" {
		return EmissionFactor{}, invalidInput(activity, "category", "is required")
	}
	f, ok := LookupFactor(activity, key)
	if !ok {
		return EmissionFactor{}, invalidInput(activity, "category", "unknown value "+strconv.Quote(string(key)))
	}
	return f, nil
}

// nonNegative clamps v at zero.
func nonNegative(v float64) float64 {
	return math.Max(0, v)
}

// formatFloat formats a float for messages.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
