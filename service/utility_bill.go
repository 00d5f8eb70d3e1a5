package service

import (
	"fmt"
	"math"

	"solar-agent/domain"
)

func BillCost(kWh, costPerKwh float64) float64 {
	return kWh * costPerKwh
}

// residualLowerBound is -Inf unless clamping is requested: surplus
// production is billed as a negative cost (a credit) for that year.
func residualLowerBound(clamp bool) float64 {
	if clamp {
		return 0
	}
	return math.Inf(-1)
}

// AnnualUtilityBillEstimate is the present value of the residual bill paid in
// the given year. Inflation and discounting share the exponent.
func AnnualUtilityBillEstimate(
	annualKWhConsumption float64,
	initialAcKwhPerYear float64,
	year int,
	costPerKwh float64,
	constants domain.EconomicConstants,
) float64 {
	production := AnnualProductionKWh(initialAcKwhPerYear, year, constants.EfficiencyDepreciationFactor)
	residual := math.Max(annualKWhConsumption-production, residualLowerBound(constants.ClampNegativeResidual))
	y := float64(year)

	return BillCost(residual, costPerKwh) *
		math.Pow(constants.CostIncreaseFactor, y) /
		math.Pow(constants.DiscountRate, y)
}

// RemainingLifetimeUtilityBill sums the discounted residual bill over the
// installation's service life.
func RemainingLifetimeUtilityBill(
	annualKWhConsumption float64,
	initialAcKwhPerYear float64,
	lifeSpanYears int,
	costPerKwh float64,
	constants domain.EconomicConstants,
) (float64, error) {
	if lifeSpanYears <= 0 {
		return 0, fmt.Errorf("%w: installation lifespan must be > 0", ErrInvalidInput)
	}
	if !(constants.DiscountRate > 0) {
		return 0, fmt.Errorf("%w: discount rate must be > 0", ErrInvalidInput)
	}

	total := 0.0
	for year := 0; year < lifeSpanYears; year++ {
		total += AnnualUtilityBillEstimate(
			annualKWhConsumption,
			initialAcKwhPerYear,
			year,
			costPerKwh,
			constants,
		)
	}
	return total, nil
}
