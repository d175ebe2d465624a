package ui

import (
	"fmt"
	"strconv"
	"strings"

	"perspective-tool/internal/viz"
)

// parsePositiveArea parses an area entry. Non-numeric and non-positive
// values are InvalidInput; the message is shown to the user verbatim.
func parsePositiveArea(s, fieldName string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("please enter a numeric %s value: %w", fieldName, viz.ErrInvalidInput)
	}
	if val <= 0 {
		return 0, fmt.Errorf("please enter a positive %s value: %w", fieldName, viz.ErrInvalidInput)
	}
	return val, nil
}
