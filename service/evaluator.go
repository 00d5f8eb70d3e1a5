package service

import (
	"solar-agent/domain"
)

// Evaluate computes installation cost, residual bill and net lifetime savings
// for one panel configuration. It reads only its arguments and is safe to call
// concurrently.
func Evaluate(
	config domain.PanelConfiguration,
	site domain.SiteParameters,
	household domain.HouseholdInputs,
	constants domain.EconomicConstants,
) (domain.EvaluationResult, error) {

	// Validar entrada
	if err := validateHousehold(household); err != nil {
		return domain.EvaluationResult{}, err
	}
	if err := validateSite(site); err != nil {
		return domain.EvaluationResult{}, err
	}
	if err := validatePanelConfiguration(config); err != nil {
		return domain.EvaluationResult{}, err
	}
	if err := ValidateConstants(constants); err != nil {
		return domain.EvaluationResult{}, err
	}

	initialAcKwhPerYear := config.YearlyEnergyDcKwh * constants.DcToAcDerate

	annualConsumption, err := AnnualConsumptionKWh(household.MonthlyBillAmount, household.CostPerKwh)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	remainingBill, err := RemainingLifetimeUtilityBill(
		annualConsumption,
		initialAcKwhPerYear,
		site.InstallationLifeSpanYears,
		household.CostPerKwh,
		constants,
	)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	cost, err := InstallationCost(
		config.PanelsCount,
		site.PanelCapacityWatts,
		constants.DcToRatedSizeFactor,
		constants.InstallationCostPerKw,
	)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	totalCostWithSolar := cost + remainingBill - constants.Incentives

	lifetimeBill, err := LifetimeBillWithoutSolar(
		household.MonthlyBillAmount,
		site.InstallationLifeSpanYears,
		constants,
	)
	if err != nil {
		return domain.EvaluationResult{}, err
	}

	return domain.EvaluationResult{
		InstallationCost:             cost,
		RemainingLifetimeUtilityBill: remainingBill,
		TotalCostWithSolar:           totalCostWithSolar,
		LifetimeBillWithoutSolar:     lifetimeBill,
		Savings:                      lifetimeBill - totalCostWithSolar,
	}, nil
}
