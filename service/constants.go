package service

const (
	MinMonthlyBill = 20.0
	MaxMonthlyBill = 2000.0
	MinCostPerKwh  = 0.1
	MaxCostPerKwh  = 1.0

	MaxInstallationLifeSpanYears = 100 // límite por solicitud, no aplica a Evaluate
	MaxCatalogSize               = 500 // configuraciones por solicitud

	monthsPerYear    = 12
	wattsPerKilowatt = 1000.0
)
