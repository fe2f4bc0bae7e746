package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecast/internal/domain"
)

func TestDefaultReferenceData(t *testing.T) {
	ref, err := DefaultReferenceData()
	require.NoError(t, err)

	assert.NotEmpty(t, ref.PriceProjections)
	assert.NotEmpty(t, ref.RegionTaxRates)
	assert.Len(t, ref.CreditTierRates, 5, "All table tiers priced; custom never is")

	prices, taxRates, creditRates, err := ref.Tables()
	require.NoError(t, err)

	assert.True(t, prices.HasLocation("Springfield, IL"))
	assert.False(t, taxRates.RateForLocation("Springfield, IL").IsZero())

	rate, ok := creditRates.BaseRate(domain.CreditExcellent)
	assert.True(t, ok)
	assert.True(t, rate.IsPositive())

	// Tier ordering: worse credit never prices below better credit.
	ordered := []domain.CreditTier{
		domain.CreditExcellent, domain.CreditGood, domain.CreditFair,
		domain.CreditPoor, domain.CreditVeryPoor,
	}
	previous := decimal.Zero
	for _, tier := range ordered {
		tierRate, ok := creditRates.BaseRate(tier)
		require.True(t, ok, "tier %s must be priced", tier)
		assert.True(t, tierRate.GreaterThanOrEqual(previous), "tier %s must not price below the better tier", tier)
		previous = tierRate
	}
}

func TestLoadReferenceData_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := `
price_projections:
  "Madison, WI":
    2027: 315000
    2031: 348000
region_tax_rates:
  WI: 0.0168
credit_tier_rates:
  good: 0.065
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ref, err := LoadReferenceData(path)
	require.NoError(t, err)

	prices, taxRates, _, err := ref.Tables()
	require.NoError(t, err)

	price, err := prices.Lookup("Madison, WI", 2027)
	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.NewFromInt(315000)))

	assert.True(t, taxRates.RateForLocation("Madison, WI").Equal(decimal.RequireFromString("0.0168")))

	// default_tax_rate omitted: unmapped regions take the standard default.
	assert.True(t, taxRates.RateForLocation("Elsewhere, XX").Equal(domain.DefaultRegionTaxRate))
}

func TestLoadReferenceData_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		errorHas string
	}{
		{
			name:     "empty projections",
			content:  "price_projections: {}",
			errorHas: "must not be empty",
		},
		{
			name: "non-positive price",
			content: `
price_projections:
  "Madison, WI":
    2027: 0
`,
			errorHas: "must be positive",
		},
		{
			name: "location without years",
			content: `
price_projections:
  "Madison, WI": {}
`,
			errorHas: "no projection years",
		},
		{
			name: "tax rate out of range",
			content: `
price_projections:
  "Madison, WI":
    2027: 315000
region_tax_rates:
  WI: 1.5
`,
			errorHas: "tax rate",
		},
		{
			name: "custom tier in rate table",
			content: `
price_projections:
  "Madison, WI":
    2027: 315000
credit_tier_rates:
  custom: 0.05
`,
			errorHas: "custom",
		},
		{
			name: "unknown tier in rate table",
			content: `
price_projections:
  "Madison, WI":
    2027: 315000
credit_tier_rates:
  platinum: 0.05
`,
			errorHas: "credit tier",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "reference.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			_, err := LoadReferenceData(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorHas)
		})
	}
}
