package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultRegionTaxRate is the annual property-tax-plus-insurance rate applied
// when the location's region is not in the tax table.
var DefaultRegionTaxRate = decimal.RequireFromString("0.01235")

// PriceTable is the projected starter-home price indexed by location and
// year. Years are sparse. The table is built once at startup and never
// mutated, so it is safe for concurrent readers.
type PriceTable struct {
	prices map[string]map[int]decimal.Decimal
	years  map[string][]int
}

// NewPriceTable builds an immutable price table from raw projection data.
// Entries with non-positive prices are rejected.
func NewPriceTable(data map[string]map[int]decimal.Decimal) (*PriceTable, error) {
	pt := &PriceTable{
		prices: make(map[string]map[int]decimal.Decimal, len(data)),
		years:  make(map[string][]int, len(data)),
	}
	for location, byYear := range data {
		prices := make(map[int]decimal.Decimal, len(byYear))
		years := make([]int, 0, len(byYear))
		for year, price := range byYear {
			if !price.IsPositive() {
				return nil, fmt.Errorf("price for %s in %d must be positive, got %s", location, year, price)
			}
			prices[year] = price
			years = append(years, year)
		}
		sort.Ints(years)
		pt.prices[location] = prices
		pt.years[location] = years
	}
	return pt, nil
}

// Lookup returns the projected price for a location and year.
func (pt *PriceTable) Lookup(location string, year int) (decimal.Decimal, error) {
	byYear, ok := pt.prices[location]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	price, ok := byYear[year]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s in %d", ErrNoProjectionForYear, location, year)
	}
	return price, nil
}

// Years returns the available projection years for a location, ascending.
func (pt *PriceTable) Years(location string) ([]int, error) {
	years, ok := pt.years[location]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	out := make([]int, len(years))
	copy(out, years)
	return out, nil
}

// Locations returns every known location key, sorted.
func (pt *PriceTable) Locations() []string {
	locations := make([]string, 0, len(pt.prices))
	for location := range pt.prices {
		locations = append(locations, location)
	}
	sort.Strings(locations)
	return locations
}

// HasLocation reports whether the location key is present.
func (pt *PriceTable) HasLocation(location string) bool {
	_, ok := pt.prices[location]
	return ok
}

// RegionOf extracts the region code from a "City, RegionCode" location key.
// Returns empty for keys with no region suffix.
func RegionOf(location string) string {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(location[idx+1:])
}

// RegionTaxTable maps region codes to annual property-tax-plus-insurance
// rates, expressed as a fraction of the purchase price.
type RegionTaxTable struct {
	rates       map[string]decimal.Decimal
	defaultRate decimal.Decimal
}

// NewRegionTaxTable builds an immutable tax table. A zero defaultRate falls
// back to DefaultRegionTaxRate.
func NewRegionTaxTable(rates map[string]decimal.Decimal, defaultRate decimal.Decimal) *RegionTaxTable {
	if defaultRate.IsZero() {
		defaultRate = DefaultRegionTaxRate
	}
	copied := make(map[string]decimal.Decimal, len(rates))
	for region, rate := range rates {
		copied[region] = rate
	}
	return &RegionTaxTable{rates: copied, defaultRate: defaultRate}
}

// RateForLocation resolves the annual tax rate for a location key, falling
// back to the default rate when the region is unrecognized.
func (tt *RegionTaxTable) RateForLocation(location string) decimal.Decimal {
	if rate, ok := tt.rates[RegionOf(location)]; ok {
		return rate
	}
	return tt.defaultRate
}

// CreditRateTable maps credit tiers to base annual interest rates.
type CreditRateTable struct {
	rates map[CreditTier]decimal.Decimal
}

// NewCreditRateTable builds an immutable credit-tier rate table.
func NewCreditRateTable(rates map[CreditTier]decimal.Decimal) *CreditRateTable {
	copied := make(map[CreditTier]decimal.Decimal, len(rates))
	for tier, rate := range rates {
		copied[tier] = rate
	}
	return &CreditRateTable{rates: copied}
}

// BaseRate returns the base annual rate for a tier. CreditCustom has no
// table entry; the caller supplies its own rate.
func (ct *CreditRateTable) BaseRate(tier CreditTier) (decimal.Decimal, bool) {
	rate, ok := ct.rates[tier]
	return rate, ok
}
