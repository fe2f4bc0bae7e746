package output

import (
	"encoding/json"
	"fmt"

	"homecast/internal/domain"
)

// JSONFormatter renders the result as indented JSON
type JSONFormatter struct{}

// Name returns the formatter name
func (jf *JSONFormatter) Name() string { return "json" }

// Format renders the result as JSON
func (jf *JSONFormatter) Format(result *domain.AffordabilityResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data) + "\n", nil
}
