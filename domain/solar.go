package domain

// PanelConfiguration is one candidate array layout for a rooftop.
type PanelConfiguration struct {
	PanelsCount       int     `json:"panelsCount"`
	YearlyEnergyDcKwh float64 `json:"yearlyEnergyDcKwh"`
}

type SiteParameters struct {
	PanelCapacityWatts        float64 `json:"panelCapacityWatts"`
	InstallationLifeSpanYears int     `json:"installationLifeSpanYears"`
}

type HouseholdInputs struct {
	MonthlyBillAmount float64 `json:"monthlyBill"`
	CostPerKwh        float64 `json:"costPerKwh"`
}

type EconomicConstants struct {
	CostIncreaseFactor           float64 `json:"costIncreaseFactor"`
	DcToAcDerate                 float64 `json:"dcToAcDerate"`
	DiscountRate                 float64 `json:"discountRate"`
	EfficiencyDepreciationFactor float64 `json:"efficiencyDepreciationFactor"`
	Incentives                   float64 `json:"incentives"`
	InstallationCostPerKw        float64 `json:"installationCostPerKw"`
	DcToRatedSizeFactor          float64 `json:"dcToRatedSizeFactor"`
	// ClampNegativeResidual floors yearly residual consumption at zero.
	// When false, surplus production is billed as a credit.
	ClampNegativeResidual        bool    `json:"clampNegativeResidual"`
}

func DefaultEconomicConstants() EconomicConstants {
	return EconomicConstants{
		CostIncreaseFactor:           1.05,
		DcToAcDerate:                 0.85,
		DiscountRate:                 1.04,
		EfficiencyDepreciationFactor: 0.995,
		Incentives:                   1000,
		InstallationCostPerKw:        1400,
		DcToRatedSizeFactor:          1.6,
	}
}

type EvaluationResult struct {
	InstallationCost             float64 `json:"installationCost"`
	RemainingLifetimeUtilityBill float64 `json:"remainingLifetimeUtilityBill"`
	TotalCostWithSolar           float64 `json:"totalCostWithSolar"`
	LifetimeBillWithoutSolar     float64 `json:"lifetimeBillWithoutSolar"`
	Savings                      float64 `json:"savings"`
}

// ConfigEvaluation pairs a catalog entry, by index, with its derived figures.
type ConfigEvaluation struct {
	Index  int                `json:"index"`
	Config PanelConfiguration `json:"config"`
	Result EvaluationResult   `json:"result"`
}
