package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecast/internal/domain"
)

func sampleResult() *domain.AffordabilityResult {
	savingsNeeded := decimal.RequireFromString("416.67")
	return &domain.AffordabilityResult{
		Location:                 "Springfield, IL",
		TargetYear:               2030,
		ProjectedPrice:           decimal.NewFromInt(300000),
		DepositRequired:          decimal.NewFromInt(30000),
		DepositGap:               decimal.NewFromInt(25000),
		MonthlySavingsNeeded:     &savingsNeeded,
		LoanPrincipal:            decimal.NewFromInt(270000),
		AnnualInterestRate:       decimal.RequireFromString("0.06"),
		AnnualInsuranceRate:      decimal.RequireFromString("0.0130"),
		MonthlyMortgagePayment:   decimal.RequireFromString("1618.79"),
		MonthlyMortgageInsurance: decimal.RequireFromString("292.50"),
		MonthlyTaxInsurance:      decimal.RequireFromString("537.50"),
		TotalMonthlyHousingCost:  decimal.RequireFromString("2448.79"),
		MinimumAnnualIncome:      decimal.RequireFromString("104948.14"),
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "json", "csv"} {
		formatter := GetFormatterByName(name)
		require.NotNil(t, formatter, "Formatter %s should exist", name)
		assert.Equal(t, name, formatter.Name())
	}

	assert.Nil(t, GetFormatterByName("html"), "Unknown formats return nil")
}

func TestConsoleFormatter(t *testing.T) {
	text, err := (&ConsoleFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	assert.Contains(t, text, "Springfield, IL")
	assert.Contains(t, text, "Projected House Price (2030): $300000.00")
	assert.Contains(t, text, "Monthly Savings Needed:     $416.67")
	assert.Contains(t, text, "Annual Interest Rate:       6.00%")
	assert.Contains(t, text, "Minimum Qualifying Income:  $104948.14 per year")
	assert.NotContains(t, text, "Months To Save", "Savings-mode field is omitted in age mode")
}

func TestConsoleFormatter_FundedDeposit(t *testing.T) {
	result := sampleResult()
	result.DepositFunded = true
	result.DepositGap = decimal.NewFromInt(-5000)

	text, err := (&ConsoleFormatter{}).Format(result)
	require.NoError(t, err)
	assert.Contains(t, text, "fully funded")
}

func TestJSONFormatter(t *testing.T) {
	text, err := (&JSONFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	var decoded domain.AffordabilityResult
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))

	assert.Equal(t, "Springfield, IL", decoded.Location)
	assert.Equal(t, 2030, decoded.TargetYear)
	assert.True(t, decoded.LoanPrincipal.Equal(decimal.NewFromInt(270000)))
	assert.Nil(t, decoded.MonthsToSave)
}

func TestCSVFormatter(t *testing.T) {
	text, err := (&CSVFormatter{}).Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "Header plus one value row")

	header, row := records[0], records[1]
	require.Equal(t, len(header), len(row))

	byColumn := make(map[string]string, len(header))
	for i, name := range header {
		byColumn[name] = row[i]
	}
	assert.Equal(t, "Springfield, IL", byColumn["location"])
	assert.Equal(t, "2030", byColumn["target_year"])
	assert.Equal(t, "270000.00", byColumn["loan_principal"])
	assert.Equal(t, "", byColumn["months_to_save"], "Age-mode rows leave savings-mode columns empty")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "6.25%", FormatPercentage(decimal.RequireFromString("0.0625")))
}
