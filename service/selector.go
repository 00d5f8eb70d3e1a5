package service

import (
	"math"

	"solar-agent/domain"
)

// EstimatedYearlyEnergyDemand derives the household's annual kWh demand from
// its bill.
func EstimatedYearlyEnergyDemand(household domain.HouseholdInputs) (float64, error) {
	return AnnualConsumptionKWh(household.MonthlyBillAmount, household.CostPerKwh)
}

// SelectMostSuitableConfig returns the index of the configuration whose rated
// yearly output is closest to demand. Ties go to the lowest index.
func SelectMostSuitableConfig(demand float64, catalog []domain.PanelConfiguration) (int, error) {
	if len(catalog) == 0 {
		return 0, ErrEmptyCatalog
	}

	closest := 0
	minDifference := math.Abs(catalog[0].YearlyEnergyDcKwh - demand)

	for i := 1; i < len(catalog); i++ {
		difference := math.Abs(catalog[i].YearlyEnergyDcKwh - demand)
		// Estrictamente menor: conserva el primer mínimo
		if difference < minDifference {
			closest = i
			minDifference = difference
		}
	}

	return closest, nil
}
