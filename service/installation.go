package service

import "fmt"

// InstallationSizeKw converts a panel count into the oversized DC array size.
func InstallationSizeKw(panelsCount int, panelCapacityWatts, dcToRatedSizeFactor float64) float64 {
	return float64(panelsCount) * (panelCapacityWatts * dcToRatedSizeFactor) / wattsPerKilowatt
}

func InstallationCost(
	panelsCount int,
	panelCapacityWatts float64,
	dcToRatedSizeFactor float64,
	installationCostPerKw float64,
) (float64, error) {
	if panelsCount < 0 {
		return 0, fmt.Errorf("%w: panels count must be >= 0", ErrInvalidInput)
	}
	if panelCapacityWatts < 0 || dcToRatedSizeFactor < 0 || installationCostPerKw < 0 {
		return 0, fmt.Errorf("%w: installation cost parameters must be >= 0", ErrInvalidInput)
	}
	return InstallationSizeKw(panelsCount, panelCapacityWatts, dcToRatedSizeFactor) * installationCostPerKw, nil
}
