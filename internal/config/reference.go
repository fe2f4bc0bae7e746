package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"homecast/internal/domain"
)

//go:embed defaults.yaml
var defaultReferenceYAML []byte

// ReferenceData is the raw form of the three read-only tables the engine
// consumes: price projections, region tax rates, and credit-tier rates.
type ReferenceData struct {
	PriceProjections map[string]map[int]decimal.Decimal    `yaml:"price_projections"`
	RegionTaxRates   map[string]decimal.Decimal            `yaml:"region_tax_rates"`
	DefaultTaxRate   decimal.Decimal                       `yaml:"default_tax_rate"`
	CreditTierRates  map[domain.CreditTier]decimal.Decimal `yaml:"credit_tier_rates"`
}

// LoadReferenceData loads reference tables from a YAML file.
func LoadReferenceData(filename string) (*ReferenceData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return parseReferenceData(data)
}

// DefaultReferenceData returns the reference tables compiled into the binary.
func DefaultReferenceData() (*ReferenceData, error) {
	return parseReferenceData(defaultReferenceYAML)
}

func parseReferenceData(data []byte) (*ReferenceData, error) {
	var ref ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse reference YAML: %w", err)
	}
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("reference data validation failed: %w", err)
	}
	return &ref, nil
}

// Validate checks reference-table invariants: positive prices and sane rates.
func (rd *ReferenceData) Validate() error {
	if len(rd.PriceProjections) == 0 {
		return fmt.Errorf("price_projections must not be empty")
	}
	for location, byYear := range rd.PriceProjections {
		if len(byYear) == 0 {
			return fmt.Errorf("location %q has no projection years", location)
		}
		for year, price := range byYear {
			if !price.IsPositive() {
				return fmt.Errorf("price for %q in %d must be positive, got %s", location, year, price)
			}
		}
	}
	one := decimal.NewFromInt(1)
	for region, rate := range rd.RegionTaxRates {
		if rate.IsNegative() || rate.GreaterThan(one) {
			return fmt.Errorf("tax rate for region %q must be within [0, 1], got %s", region, rate)
		}
	}
	for tier, rate := range rd.CreditTierRates {
		if _, err := domain.ParseCreditTier(string(tier)); err != nil {
			return err
		}
		if tier == domain.CreditCustom {
			return fmt.Errorf("credit tier %q takes its rate from the request, not the table", tier)
		}
		if rate.IsNegative() || rate.GreaterThan(one) {
			return fmt.Errorf("rate for credit tier %q must be within [0, 1], got %s", tier, rate)
		}
	}
	return nil
}

// Tables builds the immutable lookup tables the engine is constructed with.
func (rd *ReferenceData) Tables() (*domain.PriceTable, *domain.RegionTaxTable, *domain.CreditRateTable, error) {
	prices, err := domain.NewPriceTable(rd.PriceProjections)
	if err != nil {
		return nil, nil, nil, err
	}
	taxRates := domain.NewRegionTaxTable(rd.RegionTaxRates, rd.DefaultTaxRate)
	creditRates := domain.NewCreditRateTable(rd.CreditTierRates)
	return prices, taxRates, creditRates, nil
}
