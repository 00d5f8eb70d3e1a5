package service

import "fmt"

// MonthlyConsumptionKWh estimates monthly energy use from the bill amount.
func MonthlyConsumptionKWh(monthlyBill, costPerKwh float64) (float64, error) {
	if costPerKwh <= 0 {
		return 0, fmt.Errorf("%w: cost per kWh must be > 0", ErrInvalidInput)
	}
	return monthlyBill / costPerKwh, nil
}

// AnnualConsumptionKWh is the monthly estimate scaled to a year.
func AnnualConsumptionKWh(monthlyBill, costPerKwh float64) (float64, error) {
	monthly, err := MonthlyConsumptionKWh(monthlyBill, costPerKwh)
	if err != nil {
		return 0, err
	}
	return monthly * monthsPerYear, nil
}
