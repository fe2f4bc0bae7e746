package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"homecast/internal/domain"
)

// Loan-to-value adjustment steps, in percentage points added to the base
// rate. Larger down payments price better.
var (
	ltvDiscount20 = decimal.RequireFromString("-0.0025") // >= 20% down
	ltvSurcharge5 = decimal.RequireFromString("0.0025")  // 5% to <10% down
	ltvSurcharge0 = decimal.RequireFromString("0.0050")  // < 5% down

	depositPct20 = decimal.RequireFromString("0.20")
	depositPct10 = decimal.RequireFromString("0.10")
	depositPct5  = decimal.RequireFromString("0.05")
)

// Mortgage-insurance curve endpoints: 1.86%/yr at 3% down sloping toward
// 0.58%/yr approaching 19% down, zero at 19% and above.
var (
	pmiMinPct  = decimal.RequireFromString("0.03")
	pmiMaxPct  = decimal.RequireFromString("0.19")
	pmiMaxRate = decimal.RequireFromString("0.0186")
	pmiMinRate = decimal.RequireFromString("0.0058")
)

// RateQuote is the pair of annual rates applied to a loan.
type RateQuote struct {
	AnnualInterestRate  decimal.Decimal `json:"annual_interest_rate"`
	AnnualInsuranceRate decimal.Decimal `json:"annual_insurance_rate"`
}

// ResolveRates maps a credit tier (or custom rate) and down-payment
// percentage to an effective annual interest rate and an annual
// mortgage-insurance rate.
func (e *Engine) ResolveRates(tier domain.CreditTier, customRate *decimal.Decimal, depositPct decimal.Decimal) (RateQuote, error) {
	if err := validatePercent("deposit_percent", depositPct); err != nil {
		return RateQuote{}, err
	}

	insuranceRate := MortgageInsuranceRate(depositPct)

	if tier == domain.CreditCustom {
		if customRate == nil {
			return RateQuote{}, fmt.Errorf("credit tier %q requires custom_rate", tier)
		}
		if err := validatePercent("custom_rate", *customRate); err != nil {
			return RateQuote{}, err
		}
		// Custom rates are taken as-is, no LTV adjustment.
		return RateQuote{AnnualInterestRate: *customRate, AnnualInsuranceRate: insuranceRate}, nil
	}

	baseRate, ok := e.CreditRates.BaseRate(tier)
	if !ok {
		return RateQuote{}, fmt.Errorf("no base rate for credit tier %q", tier)
	}

	return RateQuote{
		AnnualInterestRate:  baseRate.Add(ltvAdjustment(depositPct)),
		AnnualInsuranceRate: insuranceRate,
	}, nil
}

// ltvAdjustment is a step function of down-payment percentage.
func ltvAdjustment(depositPct decimal.Decimal) decimal.Decimal {
	switch {
	case depositPct.GreaterThanOrEqual(depositPct20):
		return ltvDiscount20
	case depositPct.GreaterThanOrEqual(depositPct10):
		return decimal.Zero
	case depositPct.GreaterThanOrEqual(depositPct5):
		return ltvSurcharge5
	default:
		return ltvSurcharge0
	}
}

// MortgageInsuranceRate computes the annual PMI rate by linear interpolation
// over the down-payment percentage. At or below 3% down the rate is pinned at
// 1.86%; at or above 19% no insurance is charged.
func MortgageInsuranceRate(depositPct decimal.Decimal) decimal.Decimal {
	if depositPct.GreaterThanOrEqual(pmiMaxPct) {
		return decimal.Zero
	}
	if depositPct.LessThanOrEqual(pmiMinPct) {
		return pmiMaxRate
	}
	slope := pmiMinRate.Sub(pmiMaxRate).Div(pmiMaxPct.Sub(pmiMinPct))
	return pmiMaxRate.Add(slope.Mul(depositPct.Sub(pmiMinPct)))
}

func validatePercent(field string, pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s must be within [0, 1], got %s", domain.ErrInvalidPercentage, field, pct)
	}
	return nil
}
