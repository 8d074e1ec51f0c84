package format

import (
	"fmt"
	"strconv"

	"github.com/rshade/ecocalc/internal/carbon"
)

// Comparison phrase templates keyed by carbon template key.
const (
	carKmTemplate      = "%s km in auto"
	treesTemplate      = "%s alberi"
	distanceKmTemplate = "%s km evitati"
)

// energyTipThresholdKg is the emission level above which the energy result
// suggests switching to renewables.
const energyTipThresholdKg = 10

// Notes shown below energy and plastic results.
const (
	energyTipHigh     = "Considera il passaggio a fonti rinnovabili"
	energyTipLow      = "Ottimo consumo energetico"
	energyFamilyNote  = "Una famiglia italiana media consuma circa 12 kWh al giorno"
	plasticImpactNote = "Impatto: %s kg CO₂ per %s"
	savingsCaption    = "di CO₂ risparmiata"
	emissionsCaption  = "di CO₂ emessa"
)

// Comparison renders the phrase of a comparison, e.g. "37 km in auto".
// Static comparisons render their label as is.
func Comparison(activity carbon.Activity, c carbon.Comparison) string {
	switch c.TemplateKey {
	case carbon.TemplateCarKm:
		return fmt.Sprintf(carKmTemplate, ComparisonValue(activity, c))
	case carbon.TemplateTrees:
		return fmt.Sprintf(treesTemplate, ComparisonValue(activity, c))
	case carbon.TemplateDistanceKm:
		return fmt.Sprintf(distanceKmTemplate, ComparisonValue(activity, c))
	default:
		return c.Label
	}
}

// ComparisonView is a display-ready comparison.
type ComparisonView struct {
	Kind    carbon.ComparisonKind `json:"kind" yaml:"kind"`
	Value   float64               `json:"value" yaml:"value"`
	Display string                `json:"display" yaml:"display"`
	Text    string                `json:"text" yaml:"text"`
}

// View is a serialisable, display-ready rendering of a result.
type View struct {
	Activity     carbon.Activity  `json:"activity" yaml:"activity"`
	Title        string           `json:"title" yaml:"title"`
	Impact       carbon.Impact    `json:"impact" yaml:"impact"`
	Value        float64          `json:"value" yaml:"value"`
	DisplayValue string           `json:"display_value" yaml:"display_value"`
	Unit         string           `json:"unit" yaml:"unit"`
	Caption      string           `json:"caption" yaml:"caption"`
	Quantity     float64          `json:"quantity" yaml:"quantity"`
	QuantityUnit string           `json:"quantity_unit" yaml:"quantity_unit"`
	BasisKey     carbon.Category  `json:"basis_key,omitempty" yaml:"basis_key,omitempty"`
	BasisLabel   string           `json:"basis_label" yaml:"basis_label"`
	Comparisons  []ComparisonView `json:"comparisons,omitempty" yaml:"comparisons,omitempty"`
	Notes        []string         `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewView renders a result for display.
func NewView(r carbon.Result) View {
	v := View{
		Activity:     r.Activity,
		Impact:       r.Impact,
		Value:        r.Value,
		DisplayValue: Value(r),
		Unit:         r.Unit,
		Caption:      caption(r.Impact),
		Quantity:     r.Quantity,
		BasisKey:     r.BasisKey,
		BasisLabel:   r.BasisLabel,
		Notes:        notes(r),
	}
	if info, ok := carbon.Describe(r.Activity); ok {
		v.Title = info.Title
		v.QuantityUnit = info.QuantityUnit
	}

	if len(r.Comparisons) > 0 {
		v.Comparisons = make([]ComparisonView, 0, len(r.Comparisons))
		for _, c := range r.Comparisons {
			v.Comparisons = append(v.Comparisons, ComparisonView{
				Kind:    c.Kind,
				Value:   c.Value,
				Display: ComparisonValue(r.Activity, c),
				Text:    Comparison(r.Activity, c),
			})
		}
	}
	return v
}

func caption(impact carbon.Impact) string {
	if impact == carbon.ImpactEmissions {
		return emissionsCaption
	}
	return savingsCaption
}

// notes returns the activity-specific hints of a result.
func notes(r carbon.Result) []string {
	switch r.Activity {
	case carbon.ActivityEnergy:
		tip := energyTipLow
		if r.Value > energyTipThresholdKg {
			tip = energyTipHigh
		}
		return []string{tip, energyFamilyNote}
	case carbon.ActivityPlastic:
		f, ok := carbon.LookupFactor(carbon.ActivityPlastic, r.BasisKey)
		if !ok {
			return nil
		}
		perItem := strconv.FormatFloat(f.CO2PerUnit, 'f', -1, 64)
		return []string{fmt.Sprintf(plasticImpactNote, perItem, f.ItemUnit)}
	default:
		return nil
	}
}
