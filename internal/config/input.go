package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"homecast/internal/domain"
)

// InputParser handles parsing of affordability request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an affordability request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.AffordabilityInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.AffordabilityInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &input, nil
}

// ValidateInput checks the edge invariants of a request before it reaches
// the engine.
func (ip *InputParser) ValidateInput(input *domain.AffordabilityInput) error {
	if input.Location == "" {
		return fmt.Errorf("location is required")
	}
	if input.CurrentAge <= 0 {
		return fmt.Errorf("current_age must be positive, got %d", input.CurrentAge)
	}

	switch {
	case input.HasTargetAge() && input.HasMonthlySavings():
		return fmt.Errorf("%w: set either target_age or monthly_savings_capacity, not both", domain.ErrConflictingInputs)
	case !input.HasTargetAge() && !input.HasMonthlySavings():
		return fmt.Errorf("%w: one of target_age or monthly_savings_capacity is required", domain.ErrConflictingInputs)
	}

	if input.HasTargetAge() && *input.TargetAge <= input.CurrentAge {
		return fmt.Errorf("target_age (%d) must be greater than current_age (%d)", *input.TargetAge, input.CurrentAge)
	}
	if input.HasMonthlySavings() && !input.MonthlySavingsCapacity.IsPositive() {
		return fmt.Errorf("monthly_savings_capacity must be positive, got %s", input.MonthlySavingsCapacity)
	}

	if input.CurrentSavings.IsNegative() {
		return fmt.Errorf("current_savings must be non-negative, got %s", input.CurrentSavings)
	}
	if !input.DepositPercent.IsPositive() || input.DepositPercent.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: deposit_percent must be within (0, 1], got %s", domain.ErrInvalidPercentage, input.DepositPercent)
	}
	if input.MortgageTermYears <= 0 {
		return fmt.Errorf("mortgage_term_years must be positive, got %d", input.MortgageTermYears)
	}

	if _, err := domain.ParseCreditTier(string(input.CreditTier)); err != nil {
		return err
	}
	if input.CreditTier == domain.CreditCustom && input.CustomRate == nil {
		return fmt.Errorf("credit_tier %q requires custom_rate", input.CreditTier)
	}
	if input.CreditTier != domain.CreditCustom && input.CustomRate != nil {
		return fmt.Errorf("custom_rate is only valid with credit_tier %q", domain.CreditCustom)
	}
	if input.CustomRate != nil && (input.CustomRate.IsNegative() || input.CustomRate.GreaterThan(decimal.NewFromInt(1))) {
		return fmt.Errorf("%w: custom_rate must be within [0, 1], got %s", domain.ErrInvalidPercentage, input.CustomRate)
	}

	return nil
}
