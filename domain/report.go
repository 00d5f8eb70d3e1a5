package domain

type SavingsInput struct {
	Household HouseholdInputs
	Site      SolarSite
}

type Selection struct {
	SelectedIndex               int     `json:"selectedIndex"`
	EstimatedYearlyEnergyDemand float64 `json:"estimatedYearlyEnergyDemand"`
}

type SavingsReport struct {
	ReportID                    string             `json:"reportId"`
	ImageryDate                 string             `json:"imageryDate,omitempty"`
	EstimatedYearlyEnergyDemand float64            `json:"estimatedYearlyEnergyDemand"`
	SelectedIndex               int                `json:"selectedIndex"`
	Selected                    ConfigEvaluation   `json:"selected"`
	Evaluations                 []ConfigEvaluation `json:"evaluations"`
}
