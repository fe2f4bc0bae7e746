package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"homecast/internal/domain"
)

// Formatter renders an affordability result in one output format
type Formatter interface {
	Format(result *domain.AffordabilityResult) (string, error)
	Name() string
}

// GetFormatterByName returns the formatter for a format name, or nil if the
// name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return &ConsoleFormatter{}
	case "json":
		return &JSONFormatter{}
	case "csv":
		return &CSVFormatter{}
	default:
		return nil
	}
}

// ConsoleFormatter renders a human-readable report
type ConsoleFormatter struct{}

// Name returns the formatter name
func (cf *ConsoleFormatter) Name() string { return "console" }

// Format renders the result as a console report
func (cf *ConsoleFormatter) Format(result *domain.AffordabilityResult) (string, error) {
	var buf strings.Builder

	fmt.Fprintln(&buf, "==================================================================")
	fmt.Fprintf(&buf, "HOME AFFORDABILITY PROJECTION: %s\n", result.Location)
	fmt.Fprintln(&buf, "==================================================================")
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Projected House Price (%d): %s\n", result.TargetYear, FormatCurrency(result.ProjectedPrice))
	fmt.Fprintf(&buf, "Required Down Payment:      %s\n", FormatCurrency(result.DepositRequired))
	if result.DepositFunded {
		fmt.Fprintln(&buf, "Down Payment Gap:           fully funded by current savings")
	} else {
		fmt.Fprintf(&buf, "Down Payment Gap:           %s\n", FormatCurrency(result.DepositGap))
	}
	if result.MonthlySavingsNeeded != nil {
		fmt.Fprintf(&buf, "Monthly Savings Needed:     %s\n", FormatCurrency(*result.MonthlySavingsNeeded))
	}
	if result.MonthsToSave != nil {
		fmt.Fprintf(&buf, "Months To Save:             %d\n", *result.MonthsToSave)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MORTGAGE")
	fmt.Fprintln(&buf, "--------")
	fmt.Fprintf(&buf, "Loan Principal:             %s\n", FormatCurrency(result.LoanPrincipal))
	fmt.Fprintf(&buf, "Annual Interest Rate:       %s\n", FormatPercentage(result.AnnualInterestRate))
	fmt.Fprintf(&buf, "Annual Insurance Rate:      %s\n", FormatPercentage(result.AnnualInsuranceRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MONTHLY HOUSING COST")
	fmt.Fprintln(&buf, "--------------------")
	fmt.Fprintf(&buf, "Principal & Interest:       %s\n", FormatCurrency(result.MonthlyMortgagePayment))
	fmt.Fprintf(&buf, "Mortgage Insurance:         %s\n", FormatCurrency(result.MonthlyMortgageInsurance))
	fmt.Fprintf(&buf, "Property Tax & Insurance:   %s\n", FormatCurrency(result.MonthlyTaxInsurance))
	fmt.Fprintf(&buf, "Total:                      %s\n", FormatCurrency(result.TotalMonthlyHousingCost))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "Minimum Qualifying Income:  %s per year\n", FormatCurrency(result.MinimumAnnualIncome))

	return buf.String(), nil
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercentage formats a fractional rate as a percentage
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
