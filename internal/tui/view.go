package tui

import (
	"fmt"
	"strings"

	"homecast/internal/domain"
	"homecast/internal/output"
)

// View renders the form and, when available, the projection results
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Homecast — home affordability projection"))
	b.WriteString("\n")

	for f := field(0); f < fieldCount; f++ {
		if !m.isActive(f) {
			continue
		}
		b.WriteString(m.renderRow(f))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	if m.result != nil {
		b.WriteString(m.renderResult(m.result))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/↑↓ move · ←→ change selection · enter project · esc quit"))
	return b.String()
}

func (m Model) renderRow(f field) string {
	label := fieldLabel(f)
	style := labelStyle
	if f == m.focus {
		style = focusedLabelStyle
	}

	var value string
	switch f {
	case fieldLocation:
		if len(m.locations) == 0 {
			value = "(none)"
		} else {
			value = selectorValue(m.locations[m.locIndex], f == m.focus)
		}
	case fieldMode:
		mode := "by target age"
		if !m.byAge {
			mode = "by monthly savings"
		}
		value = selectorValue(mode, f == m.focus)
	case fieldCreditTier:
		value = selectorValue(string(creditTiers[m.tierIndex]), f == m.focus)
	default:
		value = m.inputs[f].View()
	}

	return style.Render(label) + value
}

func selectorValue(value string, focused bool) string {
	if focused {
		return selectorStyle.Render("◀ " + value + " ▶")
	}
	return selectorStyle.Render(value)
}

func fieldLabel(f field) string {
	switch f {
	case fieldLocation:
		return "Location"
	case fieldMode:
		return "Planning mode"
	case fieldCurrentAge:
		return "Current age"
	case fieldTargetAge:
		return "Target purchase age"
	case fieldMonthlySavings:
		return "Monthly savings"
	case fieldCurrentSavings:
		return "Current savings"
	case fieldDepositPercent:
		return "Down payment (0-1)"
	case fieldTermYears:
		return "Mortgage term (years)"
	case fieldCreditTier:
		return "Credit tier"
	case fieldCustomRate:
		return "Custom rate (0-1)"
	default:
		return ""
	}
}

func (m Model) renderResult(r *domain.AffordabilityResult) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(resultLabelStyle.Render(label))
		b.WriteString(resultValueStyle.Render(value))
		b.WriteString("\n")
	}

	row(fmt.Sprintf("Projected price (%d)", r.TargetYear), output.FormatCurrency(r.ProjectedPrice))
	row("Required down payment", output.FormatCurrency(r.DepositRequired))
	if r.DepositFunded {
		row("Down payment gap", "fully funded")
	} else {
		row("Down payment gap", output.FormatCurrency(r.DepositGap))
	}
	if r.MonthlySavingsNeeded != nil {
		row("Monthly savings needed", output.FormatCurrency(*r.MonthlySavingsNeeded))
	}
	if r.MonthsToSave != nil {
		row("Months to save", fmt.Sprintf("%d", *r.MonthsToSave))
	}
	row("Loan principal", output.FormatCurrency(r.LoanPrincipal))
	row("Interest rate", output.FormatPercentage(r.AnnualInterestRate))
	row("Monthly P&I", output.FormatCurrency(r.MonthlyMortgagePayment))
	row("Monthly PMI", output.FormatCurrency(r.MonthlyMortgageInsurance))
	row("Monthly tax/insurance", output.FormatCurrency(r.MonthlyTaxInsurance))
	row("Total monthly cost", output.FormatCurrency(r.TotalMonthlyHousingCost))
	row("Minimum annual income", output.FormatCurrency(r.MinimumAnnualIncome))

	return resultPanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
