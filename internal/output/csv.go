package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"homecast/internal/domain"
)

// CSVFormatter renders the result as a two-row CSV (header plus values)
type CSVFormatter struct{}

// Name returns the formatter name
func (cf *CSVFormatter) Name() string { return "csv" }

// Format renders the result as CSV
func (cf *CSVFormatter) Format(result *domain.AffordabilityResult) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	header := []string{
		"location", "target_year", "projected_price", "deposit_required",
		"deposit_gap", "deposit_funded", "monthly_savings_needed", "months_to_save",
		"loan_principal", "annual_interest_rate", "annual_insurance_rate",
		"monthly_mortgage_payment", "monthly_mortgage_insurance",
		"monthly_tax_insurance", "total_monthly_housing_cost", "minimum_annual_income",
	}

	savingsNeeded := ""
	if result.MonthlySavingsNeeded != nil {
		savingsNeeded = result.MonthlySavingsNeeded.StringFixed(2)
	}
	monthsToSave := ""
	if result.MonthsToSave != nil {
		monthsToSave = strconv.Itoa(*result.MonthsToSave)
	}

	row := []string{
		result.Location,
		strconv.Itoa(result.TargetYear),
		result.ProjectedPrice.StringFixed(2),
		result.DepositRequired.StringFixed(2),
		result.DepositGap.StringFixed(2),
		strconv.FormatBool(result.DepositFunded),
		savingsNeeded,
		monthsToSave,
		result.LoanPrincipal.StringFixed(2),
		result.AnnualInterestRate.StringFixed(4),
		result.AnnualInsuranceRate.StringFixed(4),
		result.MonthlyMortgagePayment.StringFixed(2),
		result.MonthlyMortgageInsurance.StringFixed(2),
		result.MonthlyTaxInsurance.StringFixed(2),
		result.TotalMonthlyHousingCost.StringFixed(2),
		result.MinimumAnnualIncome.StringFixed(2),
	}

	if err := w.Write(header); err != nil {
		return "", err
	}
	if err := w.Write(row); err != nil {
		return "", err
	}
	w.Flush()
	return buf.String(), w.Error()
}
