package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-agent/domain"
)

func TestMonthlyConsumptionKWh(t *testing.T) {
	got, err := MonthlyConsumptionKWh(500, 0.4627)
	require.NoError(t, err)
	assert.InDelta(t, 500/0.4627, got, 1e-12)
	assert.InDelta(t, 1080.61, got, 0.01)
}

func TestMonthlyConsumptionKWh_RejectsNonPositiveCost(t *testing.T) {
	for _, cost := range []float64{0, -0.2} {
		_, err := MonthlyConsumptionKWh(500, cost)
		assert.ErrorIs(t, err, ErrInvalidInput, "cost per kWh %v", cost)
	}
}

func TestAnnualProductionKWh(t *testing.T) {
	assert.Equal(t, 1000.0, AnnualProductionKWh(1000, 0, 0.995))
	assert.InDelta(t, 904.61, AnnualProductionKWh(1000, 20, 0.995), 0.01)

	prev := AnnualProductionKWh(1000, 0, 0.995)
	for year := 1; year < 30; year++ {
		cur := AnnualProductionKWh(1000, year, 0.995)
		assert.LessOrEqual(t, cur, prev, "year %d", year)
		prev = cur
	}

	// sin estado oculto
	assert.Equal(t, AnnualProductionKWh(4574.66, 7, 0.995), AnnualProductionKWh(4574.66, 7, 0.995))
}

func TestInstallationCost(t *testing.T) {
	cost, err := InstallationCost(23, 250, 1.6, 1400)
	require.NoError(t, err)
	assert.InDelta(t, 12880, cost, 1e-6)

	cost, err = InstallationCost(0, 250, 1.6, 1400)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)

	assert.InDelta(t, 9.2, InstallationSizeKw(23, 250, 1.6), 1e-9)
}

func TestInstallationCost_RejectsNegativeInputs(t *testing.T) {
	_, err := InstallationCost(-1, 250, 1.6, 1400)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = InstallationCost(10, -250, 1.6, 1400)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func yearByYearBaseline(monthlyBill float64, lifeSpan int, c domain.EconomicConstants) float64 {
	r := c.CostIncreaseFactor / c.DiscountRate
	total := 0.0
	for y := 0; y < lifeSpan; y++ {
		total += monthlyBill * 12 * math.Pow(r, float64(y))
	}
	return total
}

func TestLifetimeBillWithoutSolar_MatchesGeometricSum(t *testing.T) {
	factors := []struct {
		costIncrease float64
		discount     float64
	}{
		{1.05, 1.04},
		{1.02, 1.06},
		{1.0, 1.03},
		{1.08, 1.01},
	}
	bills := []float64{20, 120, 750.5, 2000}
	lifeSpans := []int{1, 2, 5, 20, 25, 40}

	for _, f := range factors {
		for _, bill := range bills {
			for _, n := range lifeSpans {
				c := domain.DefaultEconomicConstants()
				c.CostIncreaseFactor = f.costIncrease
				c.DiscountRate = f.discount

				got, err := LifetimeBillWithoutSolar(bill, n, c)
				require.NoError(t, err)
				assert.InEpsilon(t, yearByYearBaseline(bill, n, c), got, 1e-9,
					"bill=%v lifespan=%d factors=%+v", bill, n, f)
			}
		}
	}
}

func TestLifetimeBillWithoutSolar_NearDegenerateRatio(t *testing.T) {
	offsets := []float64{1e-12, 479e-12, 1e-10, 1e-9, -3e-9, 1e-8, 1e-7, -1e-6}
	lifeSpans := []int{2, 5, 20, 25, 40}

	for _, costIncrease := range []float64{1.0, 1.03, 1.05} {
		for _, offset := range offsets {
			for _, n := range lifeSpans {
				c := domain.DefaultEconomicConstants()
				c.CostIncreaseFactor = costIncrease
				c.DiscountRate = costIncrease + offset

				got, err := LifetimeBillWithoutSolar(120, n, c)
				require.NoError(t, err)
				assert.InEpsilon(t, yearByYearBaseline(120, n, c), got, 1e-9,
					"costIncrease=%v discount=%.15f lifespan=%d", costIncrease, c.DiscountRate, n)
			}
		}
	}
}

func TestLifetimeBillWithoutSolar_DegenerateRatio(t *testing.T) {
	c := domain.DefaultEconomicConstants()
	c.CostIncreaseFactor = 1.03
	c.DiscountRate = 1.03

	got, err := LifetimeBillWithoutSolar(120, 20, c)
	require.NoError(t, err)
	assert.Equal(t, 120.0*12*20, got)
	assert.False(t, math.IsNaN(got))
}

func TestLifetimeBillWithoutSolar_InvalidLifeSpan(t *testing.T) {
	_, err := LifetimeBillWithoutSolar(120, 0, domain.DefaultEconomicConstants())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemainingLifetimeUtilityBill_NoProductionEqualsBaseline(t *testing.T) {
	c := domain.DefaultEconomicConstants()
	annual := 120 / 0.4627 * 12

	remaining, err := RemainingLifetimeUtilityBill(annual, 0, 20, 0.4627, c)
	require.NoError(t, err)

	baseline, err := LifetimeBillWithoutSolar(120, 20, c)
	require.NoError(t, err)
	assert.InEpsilon(t, baseline, remaining, 1e-9)
}

func TestRemainingLifetimeUtilityBill_MatchesExplicitSum(t *testing.T) {
	c := domain.DefaultEconomicConstants()
	annual := 9000.0
	initial := 4000.0

	expected := 0.0
	for y := 0; y < 25; y++ {
		residual := annual - initial*math.Pow(c.EfficiencyDepreciationFactor, float64(y))
		expected += residual * 0.3 * math.Pow(c.CostIncreaseFactor, float64(y)) / math.Pow(c.DiscountRate, float64(y))
	}

	got, err := RemainingLifetimeUtilityBill(annual, initial, 25, 0.3, c)
	require.NoError(t, err)
	assert.InEpsilon(t, expected, got, 1e-12)
}

func TestRemainingLifetimeUtilityBill_NegativeResidualIsCredited(t *testing.T) {
	c := domain.DefaultEconomicConstants()
	c.CostIncreaseFactor = 1
	c.DiscountRate = 1
	c.EfficiencyDepreciationFactor = 1

	got, err := RemainingLifetimeUtilityBill(1000, 5000, 10, 0.5, c)
	require.NoError(t, err)
	assert.Equal(t, -20000.0, got)

	c.ClampNegativeResidual = true
	got, err = RemainingLifetimeUtilityBill(1000, 5000, 10, 0.5, c)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestRemainingLifetimeUtilityBill_InvalidLifeSpan(t *testing.T) {
	_, err := RemainingLifetimeUtilityBill(1000, 500, 0, 0.5, domain.DefaultEconomicConstants())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
