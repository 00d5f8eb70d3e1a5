package service

import "math"

// AnnualProductionKWh is the AC output in the given year after panel
// degradation. Year 0 is the first year of service.
func AnnualProductionKWh(initialAcKwhPerYear float64, year int, efficiencyDepreciationFactor float64) float64 {
	return initialAcKwhPerYear * math.Pow(efficiencyDepreciationFactor, float64(year))
}
