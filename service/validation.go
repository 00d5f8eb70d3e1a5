package service

import (
	"fmt"

	"solar-agent/domain"
)

func validateHousehold(h domain.HouseholdInputs) error {
	if !(h.MonthlyBillAmount >= MinMonthlyBill && h.MonthlyBillAmount <= MaxMonthlyBill) {
		return fmt.Errorf("%w: monthly bill must be between %.0f and %.0f", ErrInvalidInput, MinMonthlyBill, MaxMonthlyBill)
	}
	if !(h.CostPerKwh >= MinCostPerKwh && h.CostPerKwh <= MaxCostPerKwh) {
		return fmt.Errorf("%w: cost per kWh must be between %.1f and %.1f", ErrInvalidInput, MinCostPerKwh, MaxCostPerKwh)
	}
	return nil
}

func validateSite(s domain.SiteParameters) error {
	if !(s.PanelCapacityWatts > 0) {
		return fmt.Errorf("%w: panel capacity must be > 0", ErrInvalidInput)
	}
	if s.InstallationLifeSpanYears <= 0 {
		return fmt.Errorf("%w: installation lifespan must be > 0", ErrInvalidInput)
	}
	return nil
}

// validateSiteLimits applies request-size limits on top of validateSite. Only
// the service and payload boundaries use it; Evaluate accepts any lifespan > 0.
func validateSiteLimits(s domain.SiteParameters) error {
	if err := validateSite(s); err != nil {
		return err
	}
	if s.InstallationLifeSpanYears > MaxInstallationLifeSpanYears {
		return fmt.Errorf("%w: installation lifespan must be <= %d years", ErrInvalidInput, MaxInstallationLifeSpanYears)
	}
	return nil
}

func validatePanelConfiguration(c domain.PanelConfiguration) error {
	if c.PanelsCount < 0 {
		return fmt.Errorf("%w: panels count must be >= 0", ErrInvalidInput)
	}
	if !(c.YearlyEnergyDcKwh >= 0) {
		return fmt.Errorf("%w: yearly DC energy must be >= 0", ErrInvalidInput)
	}
	return nil
}

func validateCatalog(catalog []domain.PanelConfiguration) error {
	if len(catalog) == 0 {
		return ErrEmptyCatalog
	}
	if len(catalog) > MaxCatalogSize {
		return fmt.Errorf("%w: catalog size must be <= %d", ErrInvalidInput, MaxCatalogSize)
	}
	for i, c := range catalog {
		if err := validatePanelConfiguration(c); err != nil {
			return fmt.Errorf("config %d: %w", i, err)
		}
	}
	return nil
}

// ValidateConstants rejects parameter sets the model cannot be evaluated with.
func ValidateConstants(c domain.EconomicConstants) error {
	if !(c.DiscountRate > 0) {
		return fmt.Errorf("%w: discount rate must be > 0", ErrInvalidInput)
	}
	if !(c.CostIncreaseFactor > 0) {
		return fmt.Errorf("%w: cost increase factor must be > 0", ErrInvalidInput)
	}
	if !(c.DcToAcDerate >= 0 && c.DcToAcDerate <= 1) {
		return fmt.Errorf("%w: dc to ac derate must be between 0 and 1", ErrInvalidInput)
	}
	if !(c.EfficiencyDepreciationFactor > 0) {
		return fmt.Errorf("%w: efficiency depreciation factor must be > 0", ErrInvalidInput)
	}
	if !(c.Incentives >= 0) {
		return fmt.Errorf("%w: incentives must be >= 0", ErrInvalidInput)
	}
	if !(c.InstallationCostPerKw >= 0) {
		return fmt.Errorf("%w: installation cost per kW must be >= 0", ErrInvalidInput)
	}
	if !(c.DcToRatedSizeFactor > 0) {
		return fmt.Errorf("%w: dc to rated size factor must be > 0", ErrInvalidInput)
	}
	return nil
}
