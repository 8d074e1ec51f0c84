package format

import "github.com/rshade/ecocalc/internal/carbon"

// Display precisions of the calculator result screens.
const (
	defaultValueDigits = 2
	treesDigits        = 2
	carKmDigits        = 0
	distanceKmDigits   = 1
)

// valueDigits maps each activity to the fractional digits of its headline value.
var valueDigits = map[carbon.Activity]int{
	carbon.ActivityBike:       2,
	carbon.ActivityTransit:    2,
	carbon.ActivityRemoteWork: 2,
	carbon.ActivityDiet:       1,
	carbon.ActivityPlastic:    3,
	carbon.ActivityEnergy:     2,
	carbon.ActivityFlight:     1,
	carbon.ActivityRecycling:  1,
	carbon.ActivityShopping:   1,
	carbon.ActivityFood:       1,
}

// ValueDigits returns the display precision of an activity's result value.
func ValueDigits(activity carbon.Activity) int {
	if d, ok := valueDigits[activity]; ok {
		return d
	}
	return defaultValueDigits
}

// Value formats a result value with its activity's precision.
func Value(r carbon.Result) string {
	return ToFixed(r.Value, ValueDigits(r.Activity))
}

// ComparisonValue formats the number of a comparison.
//
// Shopping car-km are rounded with Round; every other car-km figure and
// the static flight distances use ToFixed with no decimals.
func ComparisonValue(activity carbon.Activity, c carbon.Comparison) string {
	switch c.Kind {
	case carbon.ComparisonTrees:
		return ToFixed(c.Value, treesDigits)
	case carbon.ComparisonDistanceKm:
		return ToFixed(c.Value, distanceKmDigits)
	case carbon.ComparisonCarKm:
		if activity == carbon.ActivityShopping {
			return RoundString(c.Value)
		}
		return ToFixed(c.Value, carKmDigits)
	default:
		return ToFixed(c.Value, carKmDigits)
	}
}
