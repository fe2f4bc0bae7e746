package calculation

import (
	"fmt"

	"homecast/internal/domain"
)

// ResolveTargetYear determines the calendar year at which affordability is
// evaluated. With a target age the year is fixed arithmetic; with a monthly
// savings capacity it is a bounded forward search anchored on the earliest
// projection year's price. The search deliberately does not re-solve for the
// moving target price as savings accumulate; one pass trades precision for
// determinism.
func (e *Engine) ResolveTargetYear(in *domain.AffordabilityInput) (int, error) {
	switch {
	case in.HasTargetAge() && in.HasMonthlySavings():
		return 0, fmt.Errorf("%w: both target_age and monthly_savings_capacity supplied", domain.ErrConflictingInputs)
	case !in.HasTargetAge() && !in.HasMonthlySavings():
		return 0, fmt.Errorf("%w: one of target_age or monthly_savings_capacity is required", domain.ErrConflictingInputs)
	}

	if in.HasTargetAge() {
		if *in.TargetAge <= in.CurrentAge {
			return 0, fmt.Errorf("%w: target_age %d must exceed current_age %d", domain.ErrConflictingInputs, *in.TargetAge, in.CurrentAge)
		}
		return e.BaseYear + (*in.TargetAge - in.CurrentAge), nil
	}

	if !in.MonthlySavingsCapacity.IsPositive() {
		return 0, fmt.Errorf("%w: monthly_savings_capacity must be positive, got %s", domain.ErrConflictingInputs, in.MonthlySavingsCapacity)
	}

	years, err := e.Prices.Years(in.Location)
	if err != nil {
		return 0, err
	}
	if len(years) == 0 {
		return 0, fmt.Errorf("%w: %q has no projection years", domain.ErrNoProjectionAvailable, in.Location)
	}

	anchorYear := years[0]
	anchorPrice, err := e.Prices.Lookup(in.Location, anchorYear)
	if err != nil {
		return 0, err
	}

	depositRequired := anchorPrice.Mul(in.DepositPercent)
	depositGap := depositRequired.Sub(in.CurrentSavings)

	yearsToSave := 0
	if depositGap.IsPositive() {
		monthsToSave := depositGap.Div(*in.MonthlySavingsCapacity).Ceil().IntPart()
		yearsToSave = int((monthsToSave + 11) / 12)
	}

	target := e.BaseYear + yearsToSave

	// Sparse table: land on the next available year, clamping to the latest.
	latest := years[len(years)-1]
	if target >= latest {
		return latest, nil
	}
	for _, year := range years {
		if year >= target {
			return year, nil
		}
	}
	return latest, nil
}
