package service

import (
	"fmt"
	"math"

	"solar-agent/domain"
)

// LifetimeBillWithoutSolar is the discounted bill over the service life with
// no installation, as the closed form of sum(annual * r^y) for y < lifeSpan.
func LifetimeBillWithoutSolar(
	monthlyBill float64,
	lifeSpanYears int,
	constants domain.EconomicConstants,
) (float64, error) {
	if lifeSpanYears <= 0 {
		return 0, fmt.Errorf("%w: installation lifespan must be > 0", ErrInvalidInput)
	}
	if !(constants.DiscountRate > 0) {
		return 0, fmt.Errorf("%w: discount rate must be > 0", ErrInvalidInput)
	}

	annualBill := monthlyBill * monthsPerYear
	r := constants.CostIncreaseFactor / constants.DiscountRate
	n := float64(lifeSpanYears)

	// Límite de la serie geométrica cuando r = 1
	if r == 1 {
		return annualBill * n, nil
	}

	// (r^n - 1) / (r - 1) via Expm1/Log1p: stays accurate when r is close to 1
	d := r - 1
	return annualBill * math.Expm1(n*math.Log1p(d)) / d, nil
}
