package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"homecast/internal/calculation"
	"homecast/internal/config"
	"homecast/internal/domain"
)

// field identifies one row of the projection form. Selector fields cycle
// with left/right; the rest are free-text inputs.
type field int

const (
	fieldLocation field = iota
	fieldMode
	fieldCurrentAge
	fieldTargetAge
	fieldMonthlySavings
	fieldCurrentSavings
	fieldDepositPercent
	fieldTermYears
	fieldCreditTier
	fieldCustomRate
	fieldCount
)

var creditTiers = []domain.CreditTier{
	domain.CreditExcellent,
	domain.CreditGood,
	domain.CreditFair,
	domain.CreditPoor,
	domain.CreditVeryPoor,
	domain.CreditCustom,
}

// Model is the interactive projection form state
type Model struct {
	engine *calculation.Engine
	parser *config.InputParser

	locations []string
	locIndex  int
	byAge     bool
	tierIndex int

	inputs map[field]textinput.Model
	focus  field

	result *domain.AffordabilityResult
	err    error

	width  int
	height int
}

// NewModel creates the form model over a ready engine
func NewModel(engine *calculation.Engine) Model {
	m := Model{
		engine:    engine,
		parser:    config.NewInputParser(),
		locations: engine.Prices.Locations(),
		byAge:     true,
		inputs:    make(map[field]textinput.Model),
		focus:     fieldLocation,
	}

	defaults := map[field]string{
		fieldCurrentAge:     "30",
		fieldTargetAge:      "35",
		fieldMonthlySavings: "500",
		fieldCurrentSavings: "10000",
		fieldDepositPercent: "0.10",
		fieldTermYears:      "30",
		fieldCustomRate:     "0.065",
	}
	for f, value := range defaults {
		ti := textinput.New()
		ti.SetValue(value)
		ti.CharLimit = 12
		ti.Width = 12
		m.inputs[f] = ti
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// isSelector reports whether a field cycles instead of taking text.
func isSelector(f field) bool {
	return f == fieldLocation || f == fieldMode || f == fieldCreditTier
}

// isActive reports whether a field participates given the current mode and
// tier selections.
func (m Model) isActive(f field) bool {
	switch f {
	case fieldTargetAge:
		return m.byAge
	case fieldMonthlySavings:
		return !m.byAge
	case fieldCustomRate:
		return creditTiers[m.tierIndex] == domain.CreditCustom
	default:
		return true
	}
}

// buildInput assembles the request from the form's current values.
func (m Model) buildInput() (*domain.AffordabilityInput, error) {
	if len(m.locations) == 0 {
		return nil, fmt.Errorf("no locations available")
	}

	in := &domain.AffordabilityInput{
		Location:   m.locations[m.locIndex],
		CreditTier: creditTiers[m.tierIndex],
	}

	var err error
	if in.CurrentAge, err = m.intField(fieldCurrentAge, "current age"); err != nil {
		return nil, err
	}
	if m.byAge {
		targetAge, err := m.intField(fieldTargetAge, "target age")
		if err != nil {
			return nil, err
		}
		in.TargetAge = &targetAge
	} else {
		capacity, err := m.decimalField(fieldMonthlySavings, "monthly savings")
		if err != nil {
			return nil, err
		}
		in.MonthlySavingsCapacity = &capacity
	}
	if in.CurrentSavings, err = m.decimalField(fieldCurrentSavings, "current savings"); err != nil {
		return nil, err
	}
	if in.DepositPercent, err = m.decimalField(fieldDepositPercent, "deposit percent"); err != nil {
		return nil, err
	}
	if in.MortgageTermYears, err = m.intField(fieldTermYears, "mortgage term"); err != nil {
		return nil, err
	}
	if in.CreditTier == domain.CreditCustom {
		rate, err := m.decimalField(fieldCustomRate, "custom rate")
		if err != nil {
			return nil, err
		}
		in.CustomRate = &rate
	}

	if err := m.parser.ValidateInput(in); err != nil {
		return nil, err
	}
	return in, nil
}

func (m Model) intField(f field, label string) (int, error) {
	raw := strings.TrimSpace(m.inputs[f].Value())
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a whole number", label, raw)
	}
	return value, nil
}

func (m Model) decimalField(f field, label string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(m.inputs[f].Value())
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a number", label, raw)
	}
	return value, nil
}

// Run starts the interactive form over a ready engine.
func Run(engine *calculation.Engine) error {
	p := tea.NewProgram(NewModel(engine), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
