package service

import (
	"encoding/json"
	"fmt"

	"solar-agent/domain"
)

// ParseBuildingInsights decodes a building insights payload and converts the
// fields the engine consumes into typed records.
func ParseBuildingInsights(raw []byte) (domain.SolarSite, error) {
	var payload domain.BuildingInsights
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.SolarSite{}, fmt.Errorf("%w: malformed building insights: %v", ErrInvalidInput, err)
	}
	return BuildingInsightsToSite(payload)
}

func BuildingInsightsToSite(payload domain.BuildingInsights) (domain.SolarSite, error) {
	potential := payload.SolarPotential
	if potential == nil {
		return domain.SolarSite{}, fmt.Errorf("%w: solarPotential is required", ErrInvalidInput)
	}
	if potential.PanelCapacityWatts == nil {
		return domain.SolarSite{}, fmt.Errorf("%w: solarPotential.panelCapacityWatts is required", ErrInvalidInput)
	}
	if potential.PanelLifetimeYears == nil {
		return domain.SolarSite{}, fmt.Errorf("%w: solarPotential.panelLifetimeYears is required", ErrInvalidInput)
	}

	site := domain.SiteParameters{
		PanelCapacityWatts:        *potential.PanelCapacityWatts,
		InstallationLifeSpanYears: *potential.PanelLifetimeYears,
	}
	if err := validateSiteLimits(site); err != nil {
		return domain.SolarSite{}, err
	}

	if len(potential.SolarPanelConfigs) == 0 {
		return domain.SolarSite{}, ErrEmptyCatalog
	}

	catalog := make([]domain.PanelConfiguration, 0, len(potential.SolarPanelConfigs))
	for i, rc := range potential.SolarPanelConfigs {
		if rc.PanelsCount == nil || rc.YearlyEnergyDcKwh == nil {
			return domain.SolarSite{}, fmt.Errorf("%w: solarPanelConfigs[%d] is missing panelsCount or yearlyEnergyDcKwh", ErrInvalidInput, i)
		}
		catalog = append(catalog, domain.PanelConfiguration{
			PanelsCount:       *rc.PanelsCount,
			YearlyEnergyDcKwh: *rc.YearlyEnergyDcKwh,
		})
	}
	if err := validateCatalog(catalog); err != nil {
		return domain.SolarSite{}, err
	}

	var imagery domain.ImageryDate
	if payload.ImageryDate != nil {
		imagery = *payload.ImageryDate
	}

	return domain.SolarSite{
		Site:        site,
		Catalog:     catalog,
		ImageryDate: imagery,
	}, nil
}
