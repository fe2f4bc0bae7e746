package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"homecast/internal/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyPayment computes the level monthly payment that amortizes principal
// over termYears at the given annual rate:
//
//	r = annualRate/12; n = termYears*12
//	payment = principal * r*(1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to principal / n.
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: principal must be non-negative, got %s", domain.ErrInvalidAmortizationInput, principal)
	}
	if termYears <= 0 {
		return decimal.Zero, fmt.Errorf("%w: term must be positive, got %d years", domain.ErrInvalidAmortizationInput, termYears)
	}
	if annualRate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: rate must be non-negative, got %s", domain.ErrInvalidAmortizationInput, annualRate)
	}

	payments := decimal.NewFromInt(int64(termYears)).Mul(monthsPerYear)
	if annualRate.IsZero() {
		return principal.Div(payments), nil
	}

	monthlyRate := annualRate.Div(monthsPerYear)
	compound := decimal.NewFromInt(1).Add(monthlyRate).Pow(payments)
	return principal.Mul(monthlyRate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1))), nil
}
