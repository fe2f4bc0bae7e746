package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"homecast/internal/domain"
)

// Gross-income affordability rule: total housing cost should not exceed 28%
// of gross monthly income. The qualifying income is based on the full cost
// (principal+interest, PMI, tax/insurance), the stricter basis.
var affordabilityRatio = decimal.RequireFromString("0.28")

// Project runs the full affordability computation for one request. Any
// validation or lookup failure aborts the whole computation; no partial
// result is ever returned.
func (e *Engine) Project(in *domain.AffordabilityInput) (*domain.AffordabilityResult, error) {
	if !in.DepositPercent.IsPositive() || in.DepositPercent.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: deposit_percent must be within (0, 1], got %s", domain.ErrInvalidPercentage, in.DepositPercent)
	}
	if !e.Prices.HasLocation(in.Location) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocation, in.Location)
	}

	targetYear, err := e.ResolveTargetYear(in)
	if err != nil {
		return nil, err
	}

	price, err := e.Prices.Lookup(in.Location, targetYear)
	if err != nil {
		return nil, err
	}

	depositRequired := price.Mul(in.DepositPercent)
	depositGap := depositRequired.Sub(in.CurrentSavings)
	funded := !depositGap.IsPositive()

	result := &domain.AffordabilityResult{
		Location:        in.Location,
		TargetYear:      targetYear,
		ProjectedPrice:  price,
		DepositRequired: depositRequired,
		DepositGap:      depositGap,
		DepositFunded:   funded,
	}

	if in.HasTargetAge() {
		savingsNeeded := decimal.Zero
		if !funded {
			monthsToTarget := decimal.NewFromInt(int64(*in.TargetAge-in.CurrentAge) * 12)
			savingsNeeded = depositGap.Div(monthsToTarget)
		}
		result.MonthlySavingsNeeded = &savingsNeeded
	} else {
		monthsToSave := 0
		if !funded {
			monthsToSave = int(depositGap.Div(*in.MonthlySavingsCapacity).Ceil().IntPart())
		}
		result.MonthsToSave = &monthsToSave
	}

	result.LoanPrincipal = price.Sub(depositRequired)

	quote, err := e.ResolveRates(in.CreditTier, in.CustomRate, in.DepositPercent)
	if err != nil {
		return nil, err
	}
	result.AnnualInterestRate = quote.AnnualInterestRate
	result.AnnualInsuranceRate = quote.AnnualInsuranceRate

	payment, err := MonthlyPayment(result.LoanPrincipal, quote.AnnualInterestRate, in.MortgageTermYears)
	if err != nil {
		return nil, err
	}
	result.MonthlyMortgagePayment = payment

	result.MonthlyMortgageInsurance = result.LoanPrincipal.Mul(quote.AnnualInsuranceRate).Div(monthsPerYear)
	result.MonthlyTaxInsurance = price.Mul(e.TaxRates.RateForLocation(in.Location)).Div(monthsPerYear)
	result.TotalMonthlyHousingCost = result.MonthlyMortgagePayment.
		Add(result.MonthlyMortgageInsurance).
		Add(result.MonthlyTaxInsurance)
	result.MinimumAnnualIncome = result.TotalMonthlyHousingCost.Mul(monthsPerYear).Div(affordabilityRatio)

	return result, nil
}
