package domain

import "github.com/shopspring/decimal"

// AffordabilityResult is the full projection report for one request. All
// fields are derived; the struct is built once and never mutated.
// MonthlySavingsNeeded is populated only in target-age mode, MonthsToSave
// only in monthly-savings mode.
type AffordabilityResult struct {
	Location                 string           `yaml:"location" json:"location"`
	TargetYear               int              `yaml:"target_year" json:"target_year"`
	ProjectedPrice           decimal.Decimal  `yaml:"projected_price" json:"projected_price"`
	DepositRequired          decimal.Decimal  `yaml:"deposit_required" json:"deposit_required"`
	DepositGap               decimal.Decimal  `yaml:"deposit_gap" json:"deposit_gap"`
	DepositFunded            bool             `yaml:"deposit_funded" json:"deposit_funded"`
	MonthlySavingsNeeded     *decimal.Decimal `yaml:"monthly_savings_needed,omitempty" json:"monthly_savings_needed,omitempty"`
	MonthsToSave             *int             `yaml:"months_to_save,omitempty" json:"months_to_save,omitempty"`
	LoanPrincipal            decimal.Decimal  `yaml:"loan_principal" json:"loan_principal"`
	AnnualInterestRate       decimal.Decimal  `yaml:"annual_interest_rate" json:"annual_interest_rate"`
	AnnualInsuranceRate      decimal.Decimal  `yaml:"annual_insurance_rate" json:"annual_insurance_rate"`
	MonthlyMortgagePayment   decimal.Decimal  `yaml:"monthly_mortgage_payment" json:"monthly_mortgage_payment"`
	MonthlyMortgageInsurance decimal.Decimal  `yaml:"monthly_mortgage_insurance" json:"monthly_mortgage_insurance"`
	MonthlyTaxInsurance      decimal.Decimal  `yaml:"monthly_tax_insurance" json:"monthly_tax_insurance"`
	TotalMonthlyHousingCost  decimal.Decimal  `yaml:"total_monthly_housing_cost" json:"total_monthly_housing_cost"`
	MinimumAnnualIncome      decimal.Decimal  `yaml:"minimum_annual_income" json:"minimum_annual_income"`
}
