package carbon

// ActivityInfo describes an activity for listing and help output.
type ActivityInfo struct {
	Activity    Activity `json:"activity" yaml:"activity"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`

	// QuantityLabel names the quantity the user enters.
	QuantityLabel string `json:"quantity_label" yaml:"quantity_label"`
	QuantityUnit  string `json:"quantity_unit" yaml:"quantity_unit"`

	Impact        Impact `json:"impact" yaml:"impact"`
	HasCategories bool   `json:"has_categories" yaml:"has_categories"`
}

var activityInfo = map[Activity]ActivityInfo{
	ActivityBike: {
		Title:         "Bicicletta",
		Description:   "Calcola il CO₂ risparmiato pedalando",
		QuantityLabel: "Chilometri percorsi in bici",
		QuantityUnit:  UnitKm,
		Impact:        ImpactSavings,
	},
	ActivityTransit: {
		Title:         "Trasporto Pubblico",
		Description:   "Risparmio usando bus, metro o treno",
		QuantityLabel: "Chilometri percorsi",
		QuantityUnit:  UnitKm,
		Impact:        ImpactSavings,
	},
	ActivityRemoteWork: {
		Title:         "Lavoro da Casa",
		Description:   "CO₂ risparmiata evitando spostamenti",
		QuantityLabel: "Giorni di smart working",
		QuantityUnit:  UnitDay,
		Impact:        ImpactSavings,
	},
	ActivityDiet: {
		Title:         "Giorni Senza Carne",
		Description:   "Impatto della dieta vegetariana",
		QuantityLabel: "Giorni senza carne",
		QuantityUnit:  UnitDay,
		Impact:        ImpactSavings,
	},
	ActivityPlastic: {
		Title:         "Borraccia / No Plastica",
		Description:   "Riduzione plastica monouso",
		QuantityLabel: "Quantità evitata",
		QuantityUnit:  UnitItem,
		Impact:        ImpactSavings,
	},
	ActivityEnergy: {
		Title:         "Energia Domestica",
		Description:   "Emissioni del consumo elettrico",
		QuantityLabel: "Consumo elettrico (kWh)",
		QuantityUnit:  UnitKWh,
		Impact:        ImpactEmissions,
	},
	ActivityFlight: {
		Title:         "Volo Aereo",
		Description:   "Emissioni di un volo per passeggero",
		QuantityLabel: "Distanza del volo (km)",
		QuantityUnit:  UnitKm,
		Impact:        ImpactEmissions,
	},
	ActivityRecycling: {
		Title:         "Riciclo Rifiuti",
		Description:   "CO₂ evitata riciclando i materiali",
		QuantityLabel: "Peso riciclato (kg)",
		QuantityUnit:  UnitKgWaste,
		Impact:        ImpactSavings,
	},
	ActivityShopping: {
		Title:         "Acquisti & Spese",
		Description:   "Emissioni stimate dalla spesa",
		QuantityLabel: "Importo speso (€)",
		QuantityUnit:  UnitEuro,
		Impact:        ImpactEmissions,
	},
	ActivityFood: {
		Title:         "Impatto Alimentare",
		Description:   "Emissioni dei pasti per porzione",
		QuantityLabel: "Numero di porzioni",
		QuantityUnit:  UnitPortion,
		Impact:        ImpactEmissions,
	},
}

// Describe returns the display metadata of an activity.
// Returns (ActivityInfo{}, false) for unknown activities.
func Describe(activity Activity) (ActivityInfo, bool) {
	info, ok := activityInfo[activity]
	if !ok {
		return ActivityInfo{}, false
	}
	info.Activity = activity
	info.HasCategories = HasCategories(activity)
	return info, true
}
