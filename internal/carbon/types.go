package carbon

import (
	"fmt"
	"strings"
)

// Activity identifies one of the supported activity types.
type Activity string

const (
	ActivityBike       Activity = "bike"
	ActivityTransit    Activity = "transit"
	ActivityRemoteWork Activity = "remote-work"
	ActivityDiet       Activity = "diet"
	ActivityPlastic    Activity = "plastic"
	ActivityEnergy     Activity = "energy"
	ActivityFlight     Activity = "flight"
	ActivityRecycling  Activity = "recycling"
	ActivityShopping   Activity = "shopping"
	ActivityFood       Activity = "food"
)

// activityOrder is the menu order of the activities.
var activityOrder = []Activity{
	ActivityBike,
	ActivityTransit,
	ActivityRemoteWork,
	ActivityDiet,
	ActivityPlastic,
	ActivityEnergy,
	ActivityFlight,
	ActivityRecycling,
	ActivityShopping,
	ActivityFood,
}

// activityAliases maps the screen ids of the web calculator to activities.
var activityAliases = map[string]Activity{
	"transport":   ActivityTransit,
	"home":        ActivityRemoteWork,
	"remote":      ActivityRemoteWork,
	"sustainable": ActivityPlastic,
	"recycle":     ActivityRecycling,
}

// Activities returns all activities in menu order.
func Activities() []Activity {
	out := make([]Activity, len(activityOrder))
	copy(out, activityOrder)
	return out
}

// ParseActivity resolves a canonical activity name or a known alias.
// Matching is case-insensitive.
func ParseActivity(s string) (Activity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, a := range activityOrder {
		if string(a) == name {
			return a, nil
		}
	}
	if a, ok := activityAliases[name]; ok {
		return a, nil
	}
	return "", fmt.Errorf("unknown activity %q", s)
}

func (a Activity) String() string { return string(a) }

// Impact tells whether a result is CO2 avoided or CO2 emitted.
type Impact string

const (
	ImpactSavings   Impact = "savings"
	ImpactEmissions Impact = "emissions"
)

// Category is a key of a factor table (e.g. "bus", "renewable", "beef").
type Category string

// Transit modes.
const (
	CategoryBus   Category = "bus"
	CategoryMetro Category = "metro"
	CategoryTrain Category = "train"
)

// Energy sources.
const (
	CategoryGridMix   Category = "mix"
	CategoryCoal      Category = "coal"
	CategoryGas       Category = "gas"
	CategoryRenewable Category = "renewable"
	CategoryNuclear   Category = "nuclear"
)

// Flight ranges.
const (
	CategoryShortHaul  Category = "short"
	CategoryMediumHaul Category = "medium"
	CategoryLongHaul   Category = "long"
)

// Meal types.
const (
	CategoryBeef       Category = "beef"
	CategoryPork       Category = "pork"
	CategoryChicken    Category = "chicken"
	CategoryFish       Category = "fish"
	CategoryVegetarian Category = "vegetarian"
	CategoryVegan      Category = "vegan"
)

// Recycled materials.
const (
	CategoryPaper   Category = "paper"
	CategoryPlastic Category = "plastic"
	CategoryGlass   Category = "glass"
	CategoryMetal   Category = "metal"
	CategoryOrganic Category = "organic"
)

// Shopping categories.
const (
	CategoryClothing    Category = "clothing"
	CategoryElectronics Category = "electronics"
	CategoryFurniture   Category = "furniture"
	CategoryBeauty      Category = "beauty"
	CategoryBooks       Category = "books"
	CategoryGeneral     Category = "general"
)

// Single-use plastic items.
const (
	CategoryBottle Category = "bottle"
	CategoryBag    Category = "bag"
	CategoryCup    Category = "cup"
	CategoryStraw  Category = "straw"
)

// StaticEquivalent is a fixed comparison attached to a factor. It is not
// derived from the computed value.
type StaticEquivalent struct {
	// Label is the display phrase (e.g. "auto per 650 km").
	Label string

	// DistanceKm is the distance named in the phrase.
	DistanceKm float64
}

// EmissionFactor is the kg CO2 emitted or saved per unit of an activity.
type EmissionFactor struct {
	// Key is the category tag of the factor.
	Key Category

	// Label is the human-readable name shown next to a result.
	Label string

	// CO2PerUnit is kg CO2 per one unit of activity. Never negative.
	CO2PerUnit float64

	// Unit is the activity unit the factor applies to (km, kWh, portion, ...).
	Unit string

	// TreesPerUnit is the tree equivalent per unit (recycling only).
	TreesPerUnit float64

	// ItemUnit is the singular item noun (single-use plastic only).
	ItemUnit string

	// Equivalent is the fixed comparison for the factor (flight only).
	Equivalent StaticEquivalent
}

// HasEquivalent reports whether the factor carries a static comparison.
func (f EmissionFactor) HasEquivalent() bool {
	return f.Equivalent.Label != ""
}

// Input is the user-supplied data for a calculation.
type Input struct {
	// Quantity is the activity amount (km, days, kWh, portions, kg, €, items).
	Quantity float64

	// Category selects the factor for activities with sub-types.
	Category Category

	// DistanceKm is the one-way commute distance (remote work only).
	DistanceKm float64
}

// ComparisonKind identifies how a Comparison was obtained.
type ComparisonKind string

const (
	// ComparisonCarKm is the result divided by the car baseline.
	ComparisonCarKm ComparisonKind = "car_km"

	// ComparisonTrees is the tree equivalent of recycled material.
	ComparisonTrees ComparisonKind = "trees"

	// ComparisonDistanceKm is the total distance not driven.
	ComparisonDistanceKm ComparisonKind = "distance_km"

	// ComparisonStatic is a fixed annotation copied from the factor.
	ComparisonStatic ComparisonKind = "static"
)

// Template keys used by formatters to render comparisons.
const (
	TemplateCarKm      = "car_km"
	TemplateTrees      = "trees"
	TemplateDistanceKm = "distance_km"
	TemplateStatic     = "static"
)

// Comparison is a structured equivalence of a result. Formatters turn it
// into text using TemplateKey; the engine never renders phrases itself.
type Comparison struct {
	Kind        ComparisonKind `json:"kind" yaml:"kind"`
	Value       float64        `json:"value" yaml:"value"`
	TemplateKey string         `json:"template_key" yaml:"template_key"`

	// Label is set for static comparisons only.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Result is the outcome of a single calculation.
type Result struct {
	Activity Activity `json:"activity" yaml:"activity"`
	Impact   Impact   `json:"impact" yaml:"impact"`

	// Value is the CO2 mass in kg.
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`

	// Quantity echoes the activity amount the result was computed from.
	Quantity float64 `json:"quantity" yaml:"quantity"`

	// BasisKey is empty for single-factor activities.
	BasisKey   Category `json:"basis_key,omitempty" yaml:"basis_key,omitempty"`
	BasisLabel string   `json:"basis_label" yaml:"basis_label"`

	// FactorKgPerUnit is the factor applied per unit of Quantity.
	FactorKgPerUnit float64 `json:"factor_kg_per_unit" yaml:"factor_kg_per_unit"`

	Comparisons []Comparison `json:"comparisons,omitempty" yaml:"comparisons,omitempty"`
}

// Comparison returns the first comparison of the given kind.
func (r Result) Comparison(kind ComparisonKind) (Comparison, bool) {
	for _, c := range r.Comparisons {
		if c.Kind == kind {
			return c, true
		}
	}
	return Comparison{}, false
}
