package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CreditTier is the buyer's credit standing, used to resolve a base annual
// interest rate. CreditCustom bypasses the rate table entirely and uses the
// caller-supplied rate.
type CreditTier string

const (
	CreditExcellent CreditTier = "excellent"
	CreditGood      CreditTier = "good"
	CreditFair      CreditTier = "fair"
	CreditPoor      CreditTier = "poor"
	CreditVeryPoor  CreditTier = "verypoor"
	CreditCustom    CreditTier = "custom"
)

// ParseCreditTier converts a string to a CreditTier
func ParseCreditTier(s string) (CreditTier, error) {
	switch CreditTier(s) {
	case CreditExcellent, CreditGood, CreditFair, CreditPoor, CreditVeryPoor, CreditCustom:
		return CreditTier(s), nil
	}
	return "", fmt.Errorf("unrecognized credit tier %q", s)
}

// AffordabilityInput is a single projection request. Exactly one of
// TargetAge and MonthlySavingsCapacity must be supplied; which one is set
// selects the target-year resolution mode.
type AffordabilityInput struct {
	Location               string           `yaml:"location" json:"location"`
	CurrentAge             int              `yaml:"current_age" json:"current_age"`
	TargetAge              *int             `yaml:"target_age,omitempty" json:"target_age,omitempty"`
	MonthlySavingsCapacity *decimal.Decimal `yaml:"monthly_savings_capacity,omitempty" json:"monthly_savings_capacity,omitempty"`
	CurrentSavings         decimal.Decimal  `yaml:"current_savings" json:"current_savings"`
	DepositPercent         decimal.Decimal  `yaml:"deposit_percent" json:"deposit_percent"`
	MortgageTermYears      int              `yaml:"mortgage_term_years" json:"mortgage_term_years"`
	CreditTier             CreditTier       `yaml:"credit_tier" json:"credit_tier"`
	CustomRate             *decimal.Decimal `yaml:"custom_rate,omitempty" json:"custom_rate,omitempty"`
}

// HasTargetAge reports whether the request resolves its target year from a
// target age.
func (in *AffordabilityInput) HasTargetAge() bool {
	return in.TargetAge != nil
}

// HasMonthlySavings reports whether the request resolves its target year by
// searching forward on a monthly savings plan.
func (in *AffordabilityInput) HasMonthlySavings() bool {
	return in.MonthlySavingsCapacity != nil
}
