package calculation

import (
	"time"

	"homecast/internal/domain"
)

// Engine runs affordability projections against a fixed set of reference
// tables. The tables are read-only after construction, so a single Engine is
// safe for concurrent use.
type Engine struct {
	Prices      *domain.PriceTable
	TaxRates    *domain.RegionTaxTable
	CreditRates *domain.CreditRateTable

	// BaseYear anchors age arithmetic and the savings search. Defaults to
	// the current calendar year; tests pin it for determinism.
	BaseYear int
}

// NewEngine creates an affordability engine over the given reference tables.
func NewEngine(prices *domain.PriceTable, taxRates *domain.RegionTaxTable, creditRates *domain.CreditRateTable) *Engine {
	return &Engine{
		Prices:      prices,
		TaxRates:    taxRates,
		CreditRates: creditRates,
		BaseYear:    time.Now().Year(),
	}
}
