package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecast/internal/domain"
)

func testRateEngine() *Engine {
	creditRates := domain.NewCreditRateTable(map[domain.CreditTier]decimal.Decimal{
		domain.CreditExcellent: decimal.RequireFromString("0.0600"),
		domain.CreditGood:      decimal.RequireFromString("0.0650"),
		domain.CreditFair:      decimal.RequireFromString("0.0700"),
		domain.CreditPoor:      decimal.RequireFromString("0.0800"),
		domain.CreditVeryPoor:  decimal.RequireFromString("0.0900"),
	})
	return &Engine{CreditRates: creditRates}
}

func TestResolveRates_LTVAdjustment(t *testing.T) {
	engine := testRateEngine()

	cases := []struct {
		name       string
		depositPct string
		expected   string
	}{
		{"20 percent down earns the discount", "0.20", "0.0625"},
		{"25 percent down earns the discount", "0.25", "0.0625"},
		{"10 percent down is unadjusted", "0.10", "0.0650"},
		{"15 percent down is unadjusted", "0.15", "0.0650"},
		{"5 percent down pays a quarter point", "0.05", "0.0675"},
		{"3 percent down pays a half point", "0.03", "0.0700"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := engine.ResolveRates(domain.CreditGood, nil, decimal.RequireFromString(tc.depositPct))
			require.NoError(t, err)
			assert.True(t, quote.AnnualInterestRate.Equal(decimal.RequireFromString(tc.expected)),
				"Expected %s, got %s", tc.expected, quote.AnnualInterestRate)
		})
	}
}

func TestResolveRates_CustomTierBypassesTable(t *testing.T) {
	engine := testRateEngine()
	customRate := decimal.RequireFromString("0.0425")

	quote, err := engine.ResolveRates(domain.CreditCustom, &customRate, decimal.RequireFromString("0.03"))
	require.NoError(t, err)

	// No LTV adjustment on custom rates, even at 3% down.
	assert.True(t, quote.AnnualInterestRate.Equal(customRate),
		"Custom rate should pass through unmodified, got %s", quote.AnnualInterestRate)
}

func TestResolveRates_CustomTierRequiresRate(t *testing.T) {
	engine := testRateEngine()

	_, err := engine.ResolveRates(domain.CreditCustom, nil, decimal.RequireFromString("0.10"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom_rate")
}

func TestResolveRates_InvalidPercentage(t *testing.T) {
	engine := testRateEngine()

	_, err := engine.ResolveRates(domain.CreditGood, nil, decimal.RequireFromString("-0.05"))
	assert.ErrorIs(t, err, domain.ErrInvalidPercentage)

	_, err = engine.ResolveRates(domain.CreditGood, nil, decimal.RequireFromString("1.5"))
	assert.ErrorIs(t, err, domain.ErrInvalidPercentage)
}

func TestMortgageInsuranceRate_Boundaries(t *testing.T) {
	// Pinned at 1.86% at or below 3% down.
	assert.True(t, MortgageInsuranceRate(decimal.RequireFromString("0.03")).Equal(decimal.RequireFromString("0.0186")))
	assert.True(t, MortgageInsuranceRate(decimal.RequireFromString("0.01")).Equal(decimal.RequireFromString("0.0186")))
	assert.True(t, MortgageInsuranceRate(decimal.Zero).Equal(decimal.RequireFromString("0.0186")))

	// Exactly zero at and above the 19% threshold.
	assert.True(t, MortgageInsuranceRate(decimal.RequireFromString("0.19")).IsZero())
	assert.True(t, MortgageInsuranceRate(decimal.RequireFromString("0.20")).IsZero())
	assert.True(t, MortgageInsuranceRate(decimal.RequireFromString("0.50")).IsZero())
}

func TestMortgageInsuranceRate_Interpolation(t *testing.T) {
	// Slope is (0.0058-0.0186)/(0.19-0.03) = -0.08 per unit of deposit.
	// At 11% down: 0.0186 - 0.08*(0.11-0.03) = 0.0122.
	rate := MortgageInsuranceRate(decimal.RequireFromString("0.11"))
	assert.True(t, rate.Equal(decimal.RequireFromString("0.0122")), "Expected 0.0122, got %s", rate)

	// At 10% down: 0.0186 - 0.08*0.07 = 0.0130.
	rate = MortgageInsuranceRate(decimal.RequireFromString("0.10"))
	assert.True(t, rate.Equal(decimal.RequireFromString("0.0130")), "Expected 0.0130, got %s", rate)
}

func TestMortgageInsuranceRate_MonotonicallyNonIncreasing(t *testing.T) {
	steps := []string{"0.00", "0.02", "0.03", "0.05", "0.08", "0.10", "0.13", "0.16", "0.1899", "0.19", "0.25", "1.00"}

	previous := MortgageInsuranceRate(decimal.RequireFromString(steps[0]))
	for _, step := range steps[1:] {
		current := MortgageInsuranceRate(decimal.RequireFromString(step))
		assert.True(t, current.LessThanOrEqual(previous),
			"Rate at %s down (%s) should not exceed rate at smaller deposit (%s)", step, current, previous)
		previous = current
	}
}
