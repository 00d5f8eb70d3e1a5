package domain

import (
	"fmt"
	"time"
)

// BuildingInsights mirrors the subset of the geospatial API payload that the
// savings engine consumes. Everything else in the payload is ignored.
type BuildingInsights struct {
	ImageryDate    *ImageryDate    `json:"imageryDate"`
	SolarPotential *SolarPotential `json:"solarPotential"`
}

type SolarPotential struct {
	PanelCapacityWatts *float64                `json:"panelCapacityWatts"`
	PanelLifetimeYears *int                    `json:"panelLifetimeYears"`
	SolarPanelConfigs  []RawPanelConfiguration `json:"solarPanelConfigs"`
}

type RawPanelConfiguration struct {
	PanelsCount       *int     `json:"panelsCount"`
	YearlyEnergyDcKwh *float64 `json:"yearlyEnergyDcKwh"`
}

type ImageryDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d ImageryDate) valid() bool {
	if d.Year <= 0 || d.Month < 1 || d.Month > 12 {
		return false
	}
	t := time.Date(d.Year, time.Month(d.Month), max(d.Day, 1), 0, 0, 0, 0, time.UTC)
	return t.Month() == time.Month(d.Month)
}

// Format renders the date as "January 2024". Invalid dates render as "".
func (d ImageryDate) Format() string {
	if !d.valid() {
		return ""
	}
	return fmt.Sprintf("%s %d", time.Month(d.Month), d.Year)
}

// SolarSite is a validated building insights payload.
type SolarSite struct {
	Site        SiteParameters       `json:"site"`
	Catalog     []PanelConfiguration `json:"solarPanelConfigs"`
	ImageryDate ImageryDate          `json:"imageryDate"`
}
